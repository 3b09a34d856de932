package recipe

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog - неизменяемый список рецептов, разбитый по категориям
type Catalog struct {
	byType map[Type][]Recipe
}

type catalogFile struct {
	Makanan []Recipe `yaml:"makanan"`
	Minuman []Recipe `yaml:"minuman"`
}

// LoadCatalog разбирает YAML-каталог. Порядок рецептов сохраняется.
func LoadCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{byType: make(map[Type][]Recipe, len(Types))}
	for t, items := range map[Type][]Recipe{TypeMakanan: f.Makanan, TypeMinuman: f.Minuman} {
		seen := make(map[int]struct{}, len(items))
		list := make([]Recipe, 0, len(items))
		for _, r := range items {
			r.Type = t
			if err := r.Ref().Validate(); err != nil {
				return nil, fmt.Errorf("catalog %s: %w", t, err)
			}
			if _, dup := seen[r.ID]; dup {
				return nil, fmt.Errorf("catalog %s: duplicate id %d", t, r.ID)
			}
			seen[r.ID] = struct{}{}
			list = append(list, r)
		}
		c.byType[t] = list
	}

	return c, nil
}

// DefaultCatalog возвращает встроенный каталог
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// List возвращает копию рецептов категории
func (c *Catalog) List(t Type) []Recipe {
	return append([]Recipe(nil), c.byType[t]...)
}

func (c *Catalog) Get(ref Ref) (Recipe, error) {
	for _, r := range c.byType[ref.Type] {
		if r.ID == ref.ID {
			return r, nil
		}
	}
	return Recipe{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Search ищет по подстроке в названии без учета регистра; пустой запрос возвращает всё
func (c *Catalog) Search(t Type, query string) []Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.List(t)
	}

	found := make([]Recipe, 0)
	for _, r := range c.byType[t] {
		if strings.Contains(strings.ToLower(r.Name), q) {
			found = append(found, r)
		}
	}
	return found
}
