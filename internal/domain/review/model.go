package review

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const AnonymousName = "Anonymous"

// ID - идентификатор отзыва. Новые отзывы получают UUID, а документы,
// записанные раньше, хранят числовую метку времени; она читается как
// десятичная строка.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("review id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

type Review struct {
	ID        ID        `json:"id"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}

// Draft - пользовательский ввод для нового отзыва
type Draft struct {
	UserName  string     `json:"userName" validate:"max=64"`
	Rating    int        `json:"rating" validate:"required,min=1,max=5"`
	Comment   string     `json:"comment" validate:"required,max=1000"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Map - все отзывы, сгруппированные по составному ключу рецепта ("makanan_3")
type Map map[string][]Review

// Summary - агрегаты по отзывам одного рецепта
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}
