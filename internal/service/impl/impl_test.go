package impl

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"neoauth/internal/notify"
	"neoauth/internal/observability/metrics"
	"neoauth/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	metrics.MustRegister("auth-test")
	os.Exit(m.Run())
}

// openTestStore gives each test its own named in-memory database. A single
// pooled connection keeps the database alive and serializes writers, so
// sqlite never reports a busy error under concurrent access.
func openTestStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(db)
}

type sentNotification struct {
	kind notify.Kind
	to   string
	data map[string]string
}

// recordingSender captures notifications. Sends arrive from the dispatch
// goroutine, so tests read through the channel.
type recordingSender struct {
	ch chan sentNotification
}

func newRecordingSender() *recordingSender {
	return &recordingSender{ch: make(chan sentNotification, 16)}
}

func (r *recordingSender) Send(_ context.Context, kind notify.Kind, to string, data map[string]string) error {
	r.ch <- sentNotification{kind: kind, to: to, data: data}
	return nil
}
