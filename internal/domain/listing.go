package domain

import (
	"context"
	"time"
)

// NewsItem is a published news article.
type NewsItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Content     string    `json:"conteudo"`
	PublishedAt time.Time `json:"data_publicacao"`
}

// CalendarEntry is a scheduled event.
type CalendarEntry struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Date        time.Time `json:"data"`
}

// CashFlowEntry is a single cash movement, incoming or outgoing.
type CashFlowEntry struct {
	ID          int64     `json:"id"`
	Description string    `json:"descricao"`
	Amount      float64   `json:"valor"`
	Kind        string    `json:"tipo"`
	MovedAt     time.Time `json:"data_movimento"`
}

// ListingRepository defines the port for the read-only listing tables.
// Each list returns all rows in the table's canonical order.
type ListingRepository interface {
	ListNews(ctx context.Context) ([]NewsItem, error)
	ListCalendar(ctx context.Context) ([]CalendarEntry, error)
	ListCashFlow(ctx context.Context) ([]CashFlowEntry, error)
}
