package service

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"wordvault/internal/config"
	"wordvault/internal/events"
	"wordvault/internal/model"
	"wordvault/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// setupTestDB opens a fresh in-memory database with the full schema.
// Every call gets its own named shared-cache DB so the pool's
// connections see the same data.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, repository.AutoMigrate(db), "failed to migrate test database")
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.TotalWords = 200
	cfg.App.ReviewIntervalUnit = "day"
	cfg.App.MinDailyGoal = 1
	cfg.App.MaxDailyGoal = 50
	cfg.App.GroupMaxMembers = 30
	return cfg
}

func testBus(t *testing.T) *events.Bus {
	t.Helper()
	bus := events.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(bus.Close)
	return bus
}

func seedWords(t *testing.T, db *gorm.DB, n int) []model.Word {
	t.Helper()
	words := make([]model.Word, n)
	for i := range words {
		words[i] = model.Word{
			WordID:  uuid.New(),
			Text:    fmt.Sprintf("word-%03d", i),
			Meaning: fmt.Sprintf("meaning-%03d", i),
		}
	}
	require.NoError(t, db.Create(&words).Error)
	return words
}

func seedProfile(t *testing.T, db *gorm.DB, userID string, goal int) *model.UserProfile {
	t.Helper()
	profile := &model.UserProfile{
		UserID:        userID,
		Nickname:      "tester",
		DailyWordGoal: goal,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}
