package model

import "time"

// Visitor is the canonical record for one visitor identity, keyed by IP
// address. A repeat visit from a known IP increments the existing row instead
// of inserting a new one. IsUnique is fixed at first sighting and never
// recomputed.
type Visitor struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	IPAddress  *string   `json:"ip_address" gorm:"uniqueIndex;size:45"`
	UserAgent  *string   `json:"user_agent" gorm:"size:512"`
	Referrer   *string   `json:"referrer" gorm:"size:512"`
	Language   *string   `json:"language" gorm:"size:35"`
	Country    *string   `json:"country" gorm:"size:100"`
	City       *string   `json:"city" gorm:"size:100"`
	Device     *string   `json:"device" gorm:"size:50"`
	Browser    *string   `json:"browser" gorm:"size:50"`
	OS         *string   `json:"os" gorm:"size:50;column:os"`
	IsUnique   bool      `json:"is_unique"`
	VisitCount int       `json:"visit_count" gorm:"default:1"`
	FirstVisit time.Time `json:"first_visit"`
	LastVisit  time.Time `json:"last_visit"`
}

// GroupCount is one bucket of a visitor breakdown (country, device, browser
// or OS). Rows with a NULL group value are never bucketed.
type GroupCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// VisitorStats is the dashboard summary computed fresh on every request.
type VisitorStats struct {
	TotalVisitors    int64        `json:"total_visitors"`
	UniqueVisitors   int64        `json:"unique_visitors"`
	TodayVisitors    int64        `json:"today_visitors"`
	LastWeekVisitors int64        `json:"last_week_visitors"`
	ByCountry        []GroupCount `json:"by_country"`
	ByDevice         []GroupCount `json:"by_device"`
	ByBrowser        []GroupCount `json:"by_browser"`
	ByOS             []GroupCount `json:"by_os"`
}
