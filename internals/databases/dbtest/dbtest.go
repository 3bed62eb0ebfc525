// Package dbtest menyiapkan SQLite in-memory per test.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	database "rentbook_backend/internals/databases"
	"rentbook_backend/internals/helpers/dbtime"
)

var nameCleaner = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// New membuka database terisolasi yang sudah dimigrasi.
func New(t testing.TB, clock dbtime.Clock) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", nameCleaner.Replace(t.Name()), uuid.NewString()[:8])
	db, err := database.Open(sqlite.Open(dsn), zap.NewNop(), clock, 0)
	require.NoError(t, err)
	require.NoError(t, database.TunePool(db, 1, 1, 0))
	require.NoError(t, database.Migrate(context.Background(), db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
