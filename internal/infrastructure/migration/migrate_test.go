package migration

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMigrator - мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotSource, gotURL string
	engine := func(source, db string) (Migrator, error) {
		gotSource, gotURL = source, db
		return mockM, nil
	}

	mg := NewMigration(SourceSQLite, SQLiteURL("/tmp/resep.db"), engine)
	err := mg.Up()

	assert.NoError(t, err)
	assert.Equal(t, SourceSQLite, gotSource)
	assert.Equal(t, "sqlite3:///tmp/resep.db", gotURL)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(SourcePostgres, "", engine).Up()

	assert.NoError(t, err)
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(SourceSQLite, "", engine).Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_Up_CloseErrors(t *testing.T) {
	upErr := errors.New("dirty database")
	mockM := new(MockMigrator)
	mockM.On("Up").Return(upErr)
	mockM.On("Close").Return(errors.New("source closed"), errors.New("db closed"))

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(SourceSQLite, "", engine).Up()

	require.Error(t, err)
	assert.ErrorIs(t, err, upErr)
	assert.Contains(t, err.Error(), "source closed")
	assert.Contains(t, err.Error(), "db closed")
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{SourceSQLite, SourcePostgres} {
		entries, err := fs.ReadDir(migrations, dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2, dir)
	}
}

func TestPostgresURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "postgres://u:p@localhost:5432/resep", want: "pgx5://u:p@localhost:5432/resep"},
		{in: "postgresql://localhost/resep?sslmode=disable", want: "pgx5://localhost/resep?sslmode=disable"},
		{in: "pgx5://localhost/resep", want: "pgx5://localhost/resep"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PostgresURL(tt.in))
		})
	}
}
