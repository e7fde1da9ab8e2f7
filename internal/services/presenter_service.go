package services

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"walletview/internal/components"
	"walletview/internal/models"
	"walletview/internal/theme"
)

// feedMagnitudes produce compact single-unit relative times ("45m", "2h",
// "3d") instead of humanize's spelled-out defaults.
var feedMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "now", DivBy: time.Second},
	{D: time.Hour, Format: "%dm", DivBy: time.Minute},
	{D: 24 * time.Hour, Format: "%dh", DivBy: time.Hour},
	{D: 7 * 24 * time.Hour, Format: "%dd", DivBy: 24 * time.Hour},
	{D: 30 * 24 * time.Hour, Format: "%dw", DivBy: 7 * 24 * time.Hour},
	{D: 365 * 24 * time.Hour, Format: "%dmo", DivBy: 30 * 24 * time.Hour},
	{D: math.MaxInt64, Format: "%dy", DivBy: 365 * 24 * time.Hour},
}

type presenterService struct {
	now            func() time.Time
	currencySymbol string
}

// PresenterOption configures the presenter
type PresenterOption func(*presenterService)

// WithClock overrides the presenter's clock, used by tests for deterministic
// relative times.
func WithClock(now func() time.Time) PresenterOption {
	return func(s *presenterService) {
		s.now = now
	}
}

// NewPresenterService creates a new PresenterServiceInterface instance
func NewPresenterService(currencySymbol string, opts ...PresenterOption) PresenterServiceInterface {
	service := &presenterService{
		now:            time.Now,
		currencySymbol: currencySymbol,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Row derives the row view model from one transaction. Incoming presentation
// (plus badge, success color, "+" prefix) holds iff the amount is
// non-negative.
func (s *presenterService) Row(transaction models.Transaction, tapURL string) components.TransactionRow {
	incoming := transaction.IsIncoming()

	sign := "+"
	glyph := components.BadgeGlyphIncoming
	color := theme.ColorSuccess
	if !incoming {
		sign = "-"
		glyph = components.BadgeGlyphOutgoing
		color = theme.ColorError
	}

	return components.TransactionRow{
		ID:           transaction.ID.String(),
		Title:        transaction.Title,
		StatusLabel:  transaction.Status.Label(),
		Icon:         transaction.Category.Icon(),
		IconColor:    transaction.Category.Color(),
		AmountText:   sign + s.currencySymbol + transaction.AbsAmount().StringFixed(2),
		AmountColor:  color,
		BadgeGlyph:   glyph,
		BadgeColor:   color,
		RelativeTime: humanize.CustomRelTime(transaction.Date, s.now(), "", "", feedMagnitudes),
		Incoming:     incoming,
		Recurring:    transaction.Recurring,
		TapURL:       tapURL,
	}
}

// Sections groups transactions into titled day sections, preserving input
// order within each section. The caller passes transactions sorted newest
// first; sections appear in encounter order. A nil tapURL renders inert rows.
func (s *presenterService) Sections(transactions []models.Transaction, tapURL func(id uuid.UUID) string) []components.TransactionGroup {
	var sections []components.TransactionGroup
	index := make(map[string]int)

	for _, tx := range transactions {
		key := tx.Date.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(sections)
			index[key] = i
			sections = append(sections, components.TransactionGroup{
				Title: s.sectionTitle(tx.Date),
			})
		}

		var url string
		if tapURL != nil {
			url = tapURL(tx.ID)
		}
		sections[i].Rows = append(sections[i].Rows, s.Row(tx, url))
	}

	return sections
}

func (s *presenterService) sectionTitle(date time.Time) string {
	now := s.now()
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	switch date.Format("2006-01-02") {
	case today:
		return "Today"
	case yesterday:
		return "Yesterday"
	}

	if now.Sub(date) < 7*24*time.Hour {
		return date.Format("Monday")
	}
	return date.Format("Jan 2, 2006")
}
