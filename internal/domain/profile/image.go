package profile

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxAvatarBytes - предельный размер исходного файла аватара
const MaxAvatarBytes = 2 << 20

// EncodeImage читает изображение и возвращает data URL вида data:image/png;base64,....
// Чтение идет в отдельной горутине. При отмене ctx функция возвращается сразу,
// а горутина останавливается на следующем вызове Read.
func EncodeImage(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		uri string
		err error
	}

	done := make(chan result, 1)
	go func() {
		uri, err := encodeImage(ctxReader{ctx: ctx, r: r})
		done <- result{uri: uri, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.uri, res.err
	}
}

// ctxReader перестает читать r после отмены ctx
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func encodeImage(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxAvatarBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxAvatarBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrImageTooLarge, MaxAvatarBytes)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrNotImage)
	}

	mt := mimetype.Detect(data)
	mime, _, _ := strings.Cut(mt.String(), ";")
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
