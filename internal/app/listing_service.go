package app

import (
	"context"

	"github.com/Tarsisbs/Backend-APP-TCC/internal/domain"
)

// ListingService exposes the read-only tables. Each method is a fetch-all
// passthrough in the table's canonical order; empty tables come back as empty
// slices so they serialize as [] rather than null.
type ListingService struct {
	repo domain.ListingRepository
}

// NewListingService creates a new listing service.
func NewListingService(repo domain.ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

// News returns all news items, newest publication first.
func (s *ListingService) News(ctx context.Context) ([]domain.NewsItem, error) {
	items, err := s.repo.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.NewsItem{}
	}
	return items, nil
}

// Calendar returns all calendar entries in date order.
func (s *ListingService) Calendar(ctx context.Context) ([]domain.CalendarEntry, error) {
	entries, err := s.repo.ListCalendar(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.CalendarEntry{}
	}
	return entries, nil
}

// CashFlow returns all cash movements, most recent first.
func (s *ListingService) CashFlow(ctx context.Context) ([]domain.CashFlowEntry, error) {
	entries, err := s.repo.ListCashFlow(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.CashFlowEntry{}
	}
	return entries, nil
}
