package postgres

import (
	"context"

	"github.com/Tarsisbs/Backend-APP-TCC/internal/domain"
)

// ListNews returns all news items ordered by publication date, newest first.
func (d *DB) ListNews(ctx context.Context) ([]domain.NewsItem, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, titulo, conteudo, data_publicacao FROM noticias ORDER BY data_publicacao DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []domain.NewsItem
	for rows.Next() {
		var n domain.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.PublishedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// ListCalendar returns all calendar entries ordered by date, earliest first.
func (d *DB) ListCalendar(ctx context.Context) ([]domain.CalendarEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, titulo, descricao, data FROM calendario ORDER BY data ASC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.CalendarEntry
	for rows.Next() {
		var e domain.CalendarEntry
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListCashFlow returns all cash movements ordered by movement date, most
// recent first.
func (d *DB) ListCashFlow(ctx context.Context) ([]domain.CashFlowEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, descricao, valor, tipo, data_movimento FROM fluxo_caixa ORDER BY data_movimento DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.CashFlowEntry
	for rows.Next() {
		var e domain.CashFlowEntry
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Kind, &e.MovedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
