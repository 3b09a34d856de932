package recipe

import (
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type Type string

const (
	TypeMakanan Type = "makanan"
	TypeMinuman Type = "minuman"
)

// Types - все категории каталога в порядке отображения
var Types = []Type{TypeMakanan, TypeMinuman}

func (Type) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: "string",
		Enum: []any{
			string(TypeMakanan),
			string(TypeMinuman),
		},
		Description: "Категория рецепта: makanan (блюдо) или minuman (напиток)",
		Examples:    []any{TypeMakanan},
	}
}

// Validate проверяет, что категория известна каталогу.
func (t Type) Validate() error {
	switch t {
	case TypeMakanan, TypeMinuman:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidType, t)
}

// ParseType разбирает категорию без учета регистра
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// String возвращает строковое представление типа.
func (t Type) String() string {
	return string(t)
}

// DisplayName возвращает человекочитаемое название типа.
func (t Type) DisplayName() string {
	switch t {
	case TypeMakanan:
		return "Makanan"
	case TypeMinuman:
		return "Minuman"
	default:
		return "Tidak diketahui"
	}
}
