package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

type Recipe struct {
	ID          int      `json:"id" yaml:"id"`
	Type        Type     `json:"type" yaml:"-"`
	Name        string   `json:"name" yaml:"name"`
	ImageURL    string   `json:"image_url,omitempty" yaml:"image_url"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	Steps       []string `json:"steps" yaml:"steps"`
}

func (r Recipe) Ref() Ref {
	return Ref{ID: r.ID, Type: r.Type}
}

// Ref идентифицирует рецепт: id уникален только внутри категории
type Ref struct {
	ID   int  `json:"id"`
	Type Type `json:"type"`
}

// Key - составной ключ вида "makanan_3"
func (r Ref) Key() string {
	return fmt.Sprintf("%s_%d", r.Type, r.ID)
}

func (r Ref) String() string {
	return r.Key()
}

func (r Ref) Validate() error {
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if r.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, r.ID)
	}
	return nil
}

// ParseRef разбирает составной ключ вида "makanan_3"
func ParseRef(key string) (Ref, error) {
	i := strings.LastIndex(key, "_")
	if i < 0 {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, key)
	}

	t, err := ParseType(key[:i])
	if err != nil {
		return Ref{}, err
	}
	id, err := strconv.Atoi(key[i+1:])
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, key)
	}

	ref := Ref{ID: id, Type: t}
	return ref, ref.Validate()
}
