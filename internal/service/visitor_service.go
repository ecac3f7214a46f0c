package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// VisitObservation is one raw visit event. Nil fields were not observed.
// IPAddress is the visitor identity key; when nil there is nothing to
// deduplicate on and the event always produces a fresh record.
type VisitObservation struct {
	IPAddress *string
	UserAgent *string
	Referrer  *string
	Language  *string
	Country   *string
	City      *string
	Device    *string
	Browser   *string
	OS        *string
}

// VisitorService turns raw visit observations into deduplicated visitor rows.
type VisitorService interface {
	RecordVisit(ctx context.Context, obs VisitObservation) error
	List(ctx context.Context) ([]model.Visitor, error)
}

type visitorService struct {
	visitorRepo repository.VisitorRepository
	now         func() time.Time
}

// NewVisitorService creates a new visitor aggregation service.
func NewVisitorService(visitorRepo repository.VisitorRepository) VisitorService {
	return &visitorService{
		visitorRepo: visitorRepo,
		now:         time.Now,
	}
}

// RecordVisit inserts a visitor for a first-seen IP, or atomically increments
// the existing row's visit count and refreshes its descriptive fields. The
// upsert runs as one statement keyed on ip_address, so concurrent visits from
// the same IP cannot lose increments. is_unique stays whatever was set at
// creation.
func (s *visitorService) RecordVisit(ctx context.Context, obs VisitObservation) error {
	now := s.now()
	visitor := &model.Visitor{
		IPAddress:  obs.IPAddress,
		UserAgent:  obs.UserAgent,
		Referrer:   obs.Referrer,
		Language:   obs.Language,
		Country:    obs.Country,
		City:       obs.City,
		Device:     obs.Device,
		Browser:    obs.Browser,
		OS:         obs.OS,
		IsUnique:   true,
		VisitCount: 1,
		FirstVisit: now,
		LastVisit:  now,
	}

	if visitor.UserAgent != nil {
		fillClientFields(visitor, *visitor.UserAgent)
	}

	// No identity key: every null-IP event is its own record.
	if obs.IPAddress == nil || *obs.IPAddress == "" {
		visitor.IPAddress = nil
		if err := s.visitorRepo.Create(ctx, visitor); err != nil {
			return fmt.Errorf("record visit: %w", err)
		}
		return nil
	}

	if err := s.visitorRepo.Upsert(ctx, visitor); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (s *visitorService) List(ctx context.Context) ([]model.Visitor, error) {
	return s.visitorRepo.List(ctx)
}

// fillClientFields classifies device, browser and OS from the user-agent
// string for fields the observation did not carry.
func fillClientFields(v *model.Visitor, userAgent string) {
	ua := strings.ToLower(userAgent)

	if v.Device == nil {
		device := "desktop"
		switch {
		// Crawlers first: smartphone crawler UAs also contain "android"/"mobi".
		case strings.Contains(ua, "bot") || strings.Contains(ua, "spider") || strings.Contains(ua, "crawl"):
			device = "bot"
		case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
			device = "tablet"
		case strings.Contains(ua, "mobi") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
			device = "mobile"
		}
		v.Device = &device
	}

	if v.Browser == nil {
		var browser string
		switch {
		case strings.Contains(ua, "edg/") || strings.Contains(ua, "edge"):
			browser = "Edge"
		case strings.Contains(ua, "opr/") || strings.Contains(ua, "opera"):
			browser = "Opera"
		case strings.Contains(ua, "chrome"):
			browser = "Chrome"
		case strings.Contains(ua, "safari"):
			browser = "Safari"
		case strings.Contains(ua, "firefox"):
			browser = "Firefox"
		}
		if browser != "" {
			v.Browser = &browser
		}
	}

	if v.OS == nil {
		var osName string
		switch {
		case strings.Contains(ua, "windows"):
			osName = "Windows"
		case strings.Contains(ua, "android"):
			osName = "Android"
		case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") || strings.Contains(ua, "ios"):
			osName = "iOS"
		case strings.Contains(ua, "mac os") || strings.Contains(ua, "macintosh"):
			osName = "macOS"
		case strings.Contains(ua, "linux"):
			osName = "Linux"
		}
		if osName != "" {
			v.OS = &osName
		}
	}
}
