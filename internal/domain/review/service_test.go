package review

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/recipe"
	"resepnusantara/internal/infrastructure/storage/memory"
	"resepnusantara/internal/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewsKey = "resep-nusantara-reviews"

var (
	rendang = recipe.Ref{ID: 1, Type: recipe.TypeMakanan}
	cendol  = recipe.Ref{ID: 1, Type: recipe.TypeMinuman}
	fixedAt = time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
)

func newTestService(t *testing.T) (*Service, *memory.Storage) {
	t.Helper()
	medium := memory.New(0)
	svc := NewService(keyed.NewStore(medium, logger.Discard()), reviewsKey, logger.Discard())
	svc.now = func() time.Time { return fixedAt }
	return svc, medium
}

func addRatings(t *testing.T, svc *Service, ref recipe.Ref, ratings ...int) {
	t.Helper()
	for _, r := range ratings {
		_, err := svc.Add(context.Background(), ref, Draft{Rating: r, Comment: "Enak sekali"})
		require.NoError(t, err)
	}
}

func TestService_Average(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "no reviews", ratings: nil, want: 0},
		{name: "three reviews", ratings: []int{3, 4, 5}, want: 4.0},
		{name: "single review", ratings: []int{5}, want: 5.0},
		{name: "rounds down to one decimal", ratings: []int{4, 4, 5}, want: 4.3},
		{name: "rounds up to one decimal", ratings: []int{1, 2, 2}, want: 1.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			addRatings(t, svc, rendang, tt.ratings...)

			assert.Equal(t, tt.want, svc.Average(context.Background(), rendang))
		})
	}
}

func TestService_Count(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	addRatings(t, svc, rendang, 5, 4, 3)

	assert.Equal(t, 3, svc.Count(ctx, rendang))
	assert.Equal(t, 0, svc.Count(ctx, cendol))
	assert.Empty(t, svc.Reviews(ctx, cendol).Value)
	assert.Equal(t, Summary{Count: 3, Average: 4}, svc.Summary(ctx, rendang))
}

func TestService_Add_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.Add(ctx, rendang, Draft{UserName: "   ", Rating: 5, Comment: "  Mantap!  "})
	require.NoError(t, err)

	require.Equal(t, keyed.StatusOK, res.Status)
	require.Len(t, res.Value, 1)
	rv := res.Value[0]
	assert.Equal(t, AnonymousName, rv.UserName)
	assert.Equal(t, "Mantap!", rv.Comment)
	assert.Equal(t, fixedAt, rv.Timestamp)
	_, err = uuid.Parse(string(rv.ID))
	assert.NoError(t, err)
}

func TestService_Add_KeepsGivenTimestamp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	at := time.Date(2023, 12, 31, 23, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	res, err := svc.Add(ctx, rendang, Draft{UserName: "Siti", Rating: 4, Comment: "Gurih", Timestamp: &at})
	require.NoError(t, err)

	assert.Equal(t, "Siti", res.Value[0].UserName)
	assert.True(t, at.Equal(res.Value[0].Timestamp))
}

func TestService_Add_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Одинаковое время создания не приводит к коллизии идентификаторов
	addRatings(t, svc, rendang, 5, 5, 5, 5, 5)

	seen := make(map[ID]struct{})
	for _, rv := range svc.Reviews(ctx, rendang).Value {
		seen[rv.ID] = struct{}{}
	}
	assert.Len(t, seen, 5)
}

func TestService_Add_Validation(t *testing.T) {
	tests := []struct {
		name      string
		ref       recipe.Ref
		draft     Draft
		wantField string
	}{
		{name: "rating zero", ref: rendang, draft: Draft{Rating: 0, Comment: "ok"}, wantField: "rating"},
		{name: "rating above five", ref: rendang, draft: Draft{Rating: 6, Comment: "ok"}, wantField: "rating"},
		{name: "negative rating", ref: rendang, draft: Draft{Rating: -1, Comment: "ok"}, wantField: "rating"},
		{name: "blank comment", ref: rendang, draft: Draft{Rating: 3, Comment: "   "}, wantField: "comment"},
		{name: "long user name", ref: rendang, draft: Draft{Rating: 3, Comment: "ok", UserName: fmt.Sprintf("%065d", 0)}, wantField: "userName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, medium := newTestService(t)

			_, err := svc.Add(context.Background(), tt.ref, tt.draft)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidReview)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.wantField)

			// Некорректный ввод не доходит до хранилища
			_, getErr := medium.Get(context.Background(), reviewsKey)
			assert.Error(t, getErr)
		})
	}
}

func TestService_Add_InvalidRef(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), recipe.Ref{ID: 1, Type: "kue"}, Draft{Rating: 5, Comment: "ok"})

	assert.ErrorIs(t, err, recipe.ErrInvalidType)
}

func TestService_StoredFormat(t *testing.T) {
	ctx := context.Background()
	svc, medium := newTestService(t)
	svc.newID = func() string { return "review-1" }

	_, err := svc.Add(ctx, cendol, Draft{UserName: "Budi", Rating: 4, Comment: "Segar"})
	require.NoError(t, err)

	raw, err := medium.Get(ctx, reviewsKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"minuman_1":[{
		"id":"review-1",
		"userName":"Budi",
		"rating":4,
		"comment":"Segar",
		"timestamp":"2024-03-01T08:30:00Z"
	}]}`, string(raw))
}

func TestService_NumericIDs(t *testing.T) {
	ctx := context.Background()
	svc, medium := newTestService(t)
	require.NoError(t, medium.Set(ctx, reviewsKey, []byte(`{
		"makanan_1":[{"id":1718000000000,"userName":"Siti","rating":4,"comment":"Enak","timestamp":"2024-06-10T06:13:20.000Z"}],
		"minuman_1":[{"id":1718000000001,"userName":"Anonymous","rating":2,"comment":"Terlalu manis","timestamp":"2024-06-10T06:13:20.001Z"}]
	}`)))

	res := svc.Reviews(ctx, rendang)
	require.Equal(t, keyed.StatusOK, res.Status)
	require.Len(t, res.Value, 1)
	assert.Equal(t, ID("1718000000000"), res.Value[0].ID)
	assert.Equal(t, 4, res.Value[0].Rating)

	_, err := svc.Add(ctx, rendang, Draft{Rating: 5, Comment: "Mantap"})
	require.NoError(t, err)

	assert.Equal(t, 2, svc.Count(ctx, rendang))
	assert.Equal(t, 1, svc.Count(ctx, cendol))
	assert.Equal(t, ID("1718000000001"), svc.Reviews(ctx, cendol).Value[0].ID)
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{name: "uuid string", in: `"3f1c2b9e-8d4a-4c55-9a0b-0c6f7e2d1a10"`, want: "3f1c2b9e-8d4a-4c55-9a0b-0c6f7e2d1a10"},
		{name: "millis number", in: `1718000000000`, want: "1718000000000"},
		{name: "null", in: `null`, want: ""},
		{name: "object", in: `{"x":1}`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := id.UnmarshalJSON([]byte(tt.in))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestService_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	svc, medium := newTestService(t)
	require.NoError(t, medium.Set(ctx, reviewsKey, []byte(`["not","a","map"]`)))

	res := svc.Reviews(ctx, rendang)

	assert.Equal(t, keyed.StatusCorrupt, res.Status)
	assert.Empty(t, res.Value)
	assert.Equal(t, float64(0), svc.Average(ctx, rendang))
}

func TestService_WriteFailed(t *testing.T) {
	ctx := context.Background()
	medium := memory.New(200)
	svc := NewService(keyed.NewStore(medium, logger.Discard()), reviewsKey, logger.Discard())

	first, err := svc.Add(ctx, rendang, Draft{Rating: 5, Comment: "ok"})
	require.NoError(t, err)
	require.True(t, first.OK())

	long := Draft{Rating: 1, Comment: fmt.Sprintf("%0200d", 0)}
	res, err := svc.Add(ctx, rendang, long)

	require.NoError(t, err)
	assert.Equal(t, keyed.StatusWriteFailed, res.Status)
	assert.Len(t, res.Value, 1)
	assert.Equal(t, 1, svc.Count(ctx, rendang))
}

func TestService_Summaries(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	addRatings(t, svc, rendang, 4, 5)
	addRatings(t, svc, cendol, 3)

	got := svc.Summaries(ctx)

	assert.Equal(t, map[string]Summary{
		"makanan_1": {Count: 2, Average: 4.5},
		"minuman_1": {Count: 1, Average: 3},
	}, got)

	require.NoError(t, svc.Clear(ctx))
	assert.Empty(t, svc.Summaries(ctx))
}
