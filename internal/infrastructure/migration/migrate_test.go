package migration

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMigrator мок для интерфейса Migrator
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

	var gotURL string
	engine := func(src source.Driver, db string) (Migrator, error) {
		assert.NotNil(t, src)
		gotURL = db
		return mockM, nil
	}

	err := NewMigration("sqlite3://client.db", engine).Up()

	assert.NoError(t, err)
	assert.Equal(t, "sqlite3://client.db", gotURL)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source.Driver, string) (Migrator, error) {
		return mockM, nil
	}

	assert.NoError(t, NewMigration("", engine).Up())
}

func TestMigration_Up_CloseErrorReported(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, errors.New("db locked"))

	engine := func(source.Driver, string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration("", engine).Up()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db locked")
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(source.Driver, string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration("", engine).Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_Up_RealSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")
	mg := NewMigration(SQLiteURL(path), DefaultEngine)

	require.NoError(t, mg.Up())
	require.NoError(t, mg.Up(), "повторный прогон не должен падать")
}
