package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// newDryRunDB opens a MySQL-dialect handle that renders SQL without touching
// a database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "portfolio:portfolio@tcp(127.0.0.1:3306)/portfolio?charset=utf8mb4&parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return db
}

func TestVisitorRepository_UpsertStatement(t *testing.T) {
	repo := &visitorRepository{db: newDryRunDB(t)}

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	ip := "203.0.113.7"
	country := "NL"
	tx := repo.upsertTx(context.Background(), &model.Visitor{
		IPAddress:  &ip,
		Country:    &country,
		IsUnique:   true,
		VisitCount: 1,
		FirstVisit: now,
		LastVisit:  now,
	})
	assert.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	parts := strings.SplitN(sql, "ON DUPLICATE KEY UPDATE", 2)
	if !assert.Len(t, parts, 2, "expected a duplicate-key clause in %q", sql) {
		return
	}
	insertPart, updatePart := parts[0], parts[1]

	assert.Contains(t, insertPart, "INSERT INTO `visitors`")

	// A repeat visit increments the counter and refreshes last_visit.
	assert.Contains(t, updatePart, "visit_count + 1")
	assert.Contains(t, updatePart, "VALUES(last_visit)")

	// Descriptive columns only overwrite when the new row carries a value.
	for _, col := range []string{"user_agent", "referrer", "language", "country", "city", "device", "browser", "os"} {
		assert.Contains(t, updatePart, "COALESCE(VALUES("+col+"), "+col+")")
	}

	// First-sighting columns never change once the row exists.
	assert.NotContains(t, updatePart, "is_unique")
	assert.NotContains(t, updatePart, "first_visit")
}

func TestVisitorRepository_GroupCountsRejectsUnknownColumn(t *testing.T) {
	repo := &visitorRepository{db: newDryRunDB(t)}

	_, err := repo.GroupCounts(context.Background(), "ip_address", 5)
	assert.Error(t, err)
}
