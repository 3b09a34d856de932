// Package client - окружение CLI: собранное приложение и вывод в терминал
package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"resepnusantara/internal/app"
	"resepnusantara/internal/domain/recipe"
)

var ErrNoSession = errors.New("приложение не инициализировано")

// Session - то, что получает каждая команда CLI
type Session struct {
	*app.App
	Out *Printer
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func FromContext(ctx context.Context) (*Session, error) {
	if ctx == nil {
		return nil, ErrNoSession
	}
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}

// ParseRefArgs принимает "<type> <id>" или составной ключ "makanan_3"
func ParseRefArgs(args []string) (recipe.Ref, error) {
	switch len(args) {
	case 1:
		return recipe.ParseRef(args[0])
	case 2:
		t, err := recipe.ParseType(args[0])
		if err != nil {
			return recipe.Ref{}, err
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return recipe.Ref{}, fmt.Errorf("%w: %q", recipe.ErrInvalidID, args[1])
		}
		ref := recipe.Ref{ID: id, Type: t}
		return ref, ref.Validate()
	default:
		return recipe.Ref{}, fmt.Errorf("%w: ожидается <type> <id> или type_id", recipe.ErrInvalidRef)
	}
}
