package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Game struct - Catalog entry, read-only to the search pipeline
type Game struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	Name      string     `gorm:"type:varchar(100);not null;index"`
	Genre     string     `gorm:"type:varchar(50);not null;index"`
	SteamLink *string    `gorm:"type:text"`
	GOGLink   *string    `gorm:"type:text"`
	EpicLink  *string    `gorm:"type:text"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
	UpdatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (g *Game) TableName() string {
	return "games"
}

// BeforeCreate hook - generates UUID before creating
func (g *Game) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	g.ID = &id
	return nil
}

// StoreLinks buckets the curated links of the entry. A stored link is kept only when it
// carries the marker of the store field it was stored under.
func (g *Game) StoreLinks() StoreLinkBucket {
	var bucket StoreLinkBucket
	fields := []struct {
		store Store
		link  *string
	}{
		{StoreSteam, g.SteamLink},
		{StoreGOG, g.GOGLink},
		{StoreEpic, g.EpicLink},
	}
	for _, f := range fields {
		if f.link == nil || *f.link == "" {
			continue
		}
		if f.store.Matches(*f.link) {
			bucket.AddTo(f.store, *f.link)
		}
	}
	return bucket
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}
	err := db.AutoMigrate(&Game{})
	if err != nil {
		panic(err)
	}
	logrus.Info("Catalog schema migrated")
}
