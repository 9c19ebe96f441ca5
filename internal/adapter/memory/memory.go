// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Tarsisbs/Backend-APP-TCC/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	news     []domain.NewsItem
	calendar []domain.CalendarEntry
	cashFlow []domain.CashFlowEntry

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ListingRepository = (*DB)(nil)

// --- UserRepository ---

// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create creates a new user, enforcing email uniqueness like the postgres
// adapter's constraint does.
func (db *DB) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, domain.ErrEmailTaken
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)

	cp := *u
	return &cp, nil
}

// --- ListingRepository ---

// AddNews stores a news item. Test seeding helper.
func (db *DB) AddNews(item domain.NewsItem) {
	db.mu.Lock()
	defer db.mu.Unlock()
	item.ID = int64(len(db.news) + 1)
	db.news = append(db.news, item)
}

// AddCalendarEntry stores a calendar entry. Test seeding helper.
func (db *DB) AddCalendarEntry(entry domain.CalendarEntry) {
	db.mu.Lock()
	defer db.mu.Unlock()
	entry.ID = int64(len(db.calendar) + 1)
	db.calendar = append(db.calendar, entry)
}

// AddCashFlowEntry stores a cash movement. Test seeding helper.
func (db *DB) AddCashFlowEntry(entry domain.CashFlowEntry) {
	db.mu.Lock()
	defer db.mu.Unlock()
	entry.ID = int64(len(db.cashFlow) + 1)
	db.cashFlow = append(db.cashFlow, entry)
}

// ListNews returns all news items ordered by publication date, newest first.
func (db *DB) ListNews(ctx context.Context) ([]domain.NewsItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	items := make([]domain.NewsItem, len(db.news))
	copy(items, db.news)
	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}

// ListCalendar returns all calendar entries ordered by date, earliest first.
func (db *DB) ListCalendar(ctx context.Context) ([]domain.CalendarEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	entries := make([]domain.CalendarEntry, len(db.calendar))
	copy(entries, db.calendar)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

// ListCashFlow returns all cash movements ordered by movement date, most
// recent first.
func (db *DB) ListCashFlow(ctx context.Context) ([]domain.CashFlowEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	entries := make([]domain.CashFlowEntry, len(db.cashFlow))
	copy(entries, db.cashFlow)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].MovedAt.After(entries[j].MovedAt)
	})
	return entries, nil
}
