package protocal

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"gamelink-finder/configs"
	"gamelink-finder/internal/application"
	"gamelink-finder/internal/domain"
	"gamelink-finder/pkg/database_driver/gorm"
)

func TestDrainWaitsForQueuedWork(t *testing.T) {
	dispatcher := application.NewDispatcher()
	var finished atomic.Bool
	dispatcher.Submit("U1", func() {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})

	var order []string
	drain(dispatcher,
		func() {
			if !finished.Load() {
				t.Error("expected queued work to finish before release")
			}
			order = append(order, "cache")
		},
		func() { order = append(order, "database") },
	)

	if len(order) != 2 || order[0] != "cache" || order[1] != "database" {
		t.Errorf("expected release in order, got %v", order)
	}
}

func TestOpenCatalogMigratesSQLite(t *testing.T) {
	cfg := &configs.Config{
		Catalog: configs.Catalog{Driver: "sqlite"},
		SQLite:  configs.SQLite{Path: filepath.Join(t.TempDir(), "games.db")},
	}

	db, err := OpenCatalog(cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { gorm.Disconnect(db.Catalog) })

	if !db.Catalog.Migrator().HasTable(&domain.Game{}) {
		t.Error("expected the games table to exist")
	}
}

func TestOpenCatalogRejectsUnknownDriver(t *testing.T) {
	cfg := &configs.Config{Catalog: configs.Catalog{Driver: "mysql"}}

	if _, err := OpenCatalog(cfg); err == nil {
		t.Error("expected an error for an unknown driver")
	}
}

func TestNewResultCacheRejectsUnknownDriver(t *testing.T) {
	cfg := &configs.Config{Cache: configs.Cache{Driver: "memcached"}}

	if _, _, err := NewResultCache(cfg); err == nil {
		t.Error("expected an error for an unknown driver")
	}
}
