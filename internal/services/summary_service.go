package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/reporting"
)

// summaryService gathers a user's snapshot and hands it to the reporting engine.
type summaryService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db, now: time.Now}
}

// GetSummary resolves the date range for period (explicit start/end win),
// loads the user's transactions in that range together with the user's
// category names, and aggregates them.
func (s *summaryService) GetSummary(ctx context.Context, userID string, period reporting.Period, start, end *time.Time) (*reporting.Summary, error) {
	dateRange := reporting.ResolveRange(period, s.now(), start, end)

	var (
		transactions []models.Transaction
		categories   []models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Select("id", "type", "amount", "date", "category_id").
			Where("user_id = ? AND date >= ? AND date <= ?", userID, dateRange.Start, dateRange.End).
			Find(&transactions).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Select("id", "name").
			Where("user_id = ?", userID).
			Find(&categories).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	entries := make([]reporting.Entry, 0, len(transactions))
	for _, t := range transactions {
		entries = append(entries, toEntry(t))
	}

	summary := reporting.Summarize(entries, names, period, dateRange)
	return &summary, nil
}

// toEntry maps a persisted transaction onto the engine's input type.
func toEntry(t models.Transaction) reporting.Entry {
	return reporting.Entry{
		Type:       reporting.EntryType(t.Type),
		Amount:     t.Amount,
		Date:       t.Date,
		CategoryID: t.CategoryID,
	}
}
