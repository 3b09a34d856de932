package review

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Service хранит отзывы всех рецептов в одном документе и считает по ним агрегаты
type Service struct {
	store    *keyed.Store
	key      string
	newID    func() string
	now      func() time.Time
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(store *keyed.Store, key string, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		key:      key,
		newID:    uuid.NewString,
		now:      time.Now,
		validate: newValidator(),
		log:      log.With("component", "review_service"),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// All возвращает все отзывы; при отсутствии или порче документа - пустую карту
func (s *Service) All(ctx context.Context) keyed.Result[Map] {
	return keyed.Read(ctx, s.store, s.key, Map{})
}

// Reviews возвращает отзывы рецепта в порядке добавления
func (s *Service) Reviews(ctx context.Context, ref recipe.Ref) keyed.Result[[]Review] {
	return forRecipe(s.All(ctx), ref)
}

// Validate нормализует черновик и проверяет его
func (s *Service) Validate(d Draft) (Draft, error) {
	d.UserName = strings.TrimSpace(d.UserName)
	d.Comment = strings.TrimSpace(d.Comment)

	if err := s.validate.Struct(d); err != nil {
		return d, newValidationError(err)
	}
	return d, nil
}

// Add проверяет черновик, присваивает отзыву идентификатор и сохраняет его.
// Ошибка возвращается только для некорректного ввода; сбои хранилища
// отражаются в статусе результата.
func (s *Service) Add(ctx context.Context, ref recipe.Ref, d Draft) (keyed.Result[[]Review], error) {
	if err := ref.Validate(); err != nil {
		return keyed.Result[[]Review]{}, fmt.Errorf("add review: %w", err)
	}

	d, err := s.Validate(d)
	if err != nil {
		return keyed.Result[[]Review]{}, err
	}

	rv := Review{
		ID:        ID(s.newID()),
		UserName:  d.UserName,
		Rating:    d.Rating,
		Comment:   d.Comment,
		Timestamp: s.now().UTC(),
	}
	if rv.UserName == "" {
		rv.UserName = AnonymousName
	}
	if d.Timestamp != nil && !d.Timestamp.IsZero() {
		rv.Timestamp = d.Timestamp.UTC()
	}

	key := ref.Key()
	res := keyed.Update(ctx, s.store, s.key, Map{}, func(m Map) (Map, bool) {
		if m == nil {
			m = Map{}
		}
		m[key] = append(m[key], rv)
		return m, true
	})

	if res.Failed() {
		s.log.Error("failed to add review", "recipe", key, "status", res.Status.String(), "error", res.Err)
	} else {
		s.log.Debug("review added", "recipe", key, "review_id", rv.ID, "rating", rv.Rating)
	}

	return forRecipe(res, ref), nil
}

// Count - число отзывов рецепта
func (s *Service) Count(ctx context.Context, ref recipe.Ref) int {
	return len(s.Reviews(ctx, ref).Value)
}

// Average - средняя оценка, округленная до одного знака; 0, если отзывов нет
func (s *Service) Average(ctx context.Context, ref recipe.Ref) float64 {
	return average(s.Reviews(ctx, ref).Value)
}

func (s *Service) Summary(ctx context.Context, ref recipe.Ref) Summary {
	return Summarize(s.Reviews(ctx, ref).Value)
}

// Summaries считает агрегаты для всех рецептов с отзывами за одно чтение
func (s *Service) Summaries(ctx context.Context) map[string]Summary {
	all := s.All(ctx).Value
	out := make(map[string]Summary, len(all))
	for key, reviews := range all {
		out[key] = Summarize(reviews)
	}
	return out
}

// Clear удаляет все отзывы
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, s.key)
}

func forRecipe(res keyed.Result[Map], ref recipe.Ref) keyed.Result[[]Review] {
	reviews := res.Value[ref.Key()]
	if reviews == nil {
		reviews = []Review{}
	}
	return keyed.Result[[]Review]{Value: reviews, Status: res.Status, Err: res.Err}
}

// Summarize считает число отзывов и среднюю оценку
func Summarize(reviews []Review) Summary {
	return Summary{Count: len(reviews), Average: average(reviews)}
}

func average(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
