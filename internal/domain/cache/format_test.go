package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		decimals int
		want     string
	}{
		{"zero", 0, 2, "0 Bytes"},
		{"negative", -10, 2, "0 Bytes"},
		{"bytes", 512, 2, "512 Bytes"},
		{"exact kilobyte", 1024, 2, "1 KB"},
		{"fractional kilobyte", 1536, 2, "1.5 KB"},
		{"rounded", 1234567, 2, "1.18 MB"},
		{"no decimals", 1536, 0, "2 KB"},
		{"negative decimals", 1536, -3, "2 KB"},
		{"gigabytes", 3 << 30, 2, "3 GB"},
		{"clamped to gigabytes", 2 << 40, 2, "2048 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes, tt.decimals))
		})
	}
}
