package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/model"
)

// Columns visitors may be grouped by. Guards GroupCounts against arbitrary
// column names reaching the query.
var groupColumns = map[string]struct{}{
	"country": {},
	"device":  {},
	"browser": {},
	"os":      {},
}

// VisitorRepository defines visitor persistence and aggregation operations.
type VisitorRepository interface {
	Create(ctx context.Context, visitor *model.Visitor) error
	Upsert(ctx context.Context, visitor *model.Visitor) error
	FindByIP(ctx context.Context, ip string) (*model.Visitor, error)
	List(ctx context.Context) ([]model.Visitor, error)
	Count(ctx context.Context) (int64, error)
	CountUnique(ctx context.Context) (int64, error)
	CountLastVisitSince(ctx context.Context, since time.Time) (int64, error)
	GroupCounts(ctx context.Context, column string, limit int) ([]model.GroupCount, error)
}

type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository builds a GORM-backed repository.
func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) Create(ctx context.Context, visitor *model.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

// Upsert inserts the visitor, or on an ip_address collision increments
// visit_count and refreshes the descriptive columns in a single statement.
// Columns the observation leaves nil keep their stored value; is_unique and
// first_visit are never touched on conflict.
func (r *visitorRepository) Upsert(ctx context.Context, visitor *model.Visitor) error {
	return r.upsertTx(ctx, visitor).Error
}

func (r *visitorRepository) upsertTx(ctx context.Context, visitor *model.Visitor) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ip_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_agent":  gorm.Expr("COALESCE(VALUES(user_agent), user_agent)"),
			"referrer":    gorm.Expr("COALESCE(VALUES(referrer), referrer)"),
			"language":    gorm.Expr("COALESCE(VALUES(language), language)"),
			"country":     gorm.Expr("COALESCE(VALUES(country), country)"),
			"city":        gorm.Expr("COALESCE(VALUES(city), city)"),
			"device":      gorm.Expr("COALESCE(VALUES(device), device)"),
			"browser":     gorm.Expr("COALESCE(VALUES(browser), browser)"),
			"os":          gorm.Expr("COALESCE(VALUES(os), os)"),
			"visit_count": gorm.Expr("visit_count + 1"),
			"last_visit":  gorm.Expr("VALUES(last_visit)"),
		}),
	}).Create(visitor)
}

func (r *visitorRepository) FindByIP(ctx context.Context, ip string) (*model.Visitor, error) {
	var visitor model.Visitor
	if err := r.db.WithContext(ctx).Where("ip_address = ?", ip).First(&visitor).Error; err != nil {
		return nil, err
	}
	return &visitor, nil
}

func (r *visitorRepository) List(ctx context.Context) ([]model.Visitor, error) {
	var visitors []model.Visitor
	if err := r.db.WithContext(ctx).Order("last_visit DESC").Find(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}

func (r *visitorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).Count(&count).Error
	return count, err
}

func (r *visitorRepository) CountUnique(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Where("is_unique = ?", true).Count(&count).Error
	return count, err
}

func (r *visitorRepository) CountLastVisitSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Where("last_visit >= ?", since).Count(&count).Error
	return count, err
}

// GroupCounts buckets visitors by the given column, skipping NULL values.
// Results come back sorted by count descending, then name ascending so equal
// counts order deterministically.
func (r *visitorRepository) GroupCounts(ctx context.Context, column string, limit int) ([]model.GroupCount, error) {
	if _, ok := groupColumns[column]; !ok {
		return nil, fmt.Errorf("unsupported group column %q", column)
	}
	var groups []model.GroupCount
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Select(column+" AS name, COUNT(*) AS count").
		Where(column + " IS NOT NULL").
		Group(column).
		Order("count DESC, name ASC").
		Limit(limit).
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
