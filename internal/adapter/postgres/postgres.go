package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS usuarios (id BIGSERIAL PRIMARY KEY, nome TEXT NOT NULL, email TEXT UNIQUE NOT NULL, senha_hash TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS noticias (id BIGSERIAL PRIMARY KEY, titulo TEXT NOT NULL, conteudo TEXT NOT NULL, data_publicacao TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_noticias_data_publicacao ON noticias(data_publicacao);",
		"CREATE TABLE IF NOT EXISTS calendario (id BIGSERIAL PRIMARY KEY, titulo TEXT NOT NULL, descricao TEXT NOT NULL, data TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_calendario_data ON calendario(data);",
		"CREATE TABLE IF NOT EXISTS fluxo_caixa (id BIGSERIAL PRIMARY KEY, descricao TEXT NOT NULL, valor DOUBLE PRECISION NOT NULL, tipo TEXT NOT NULL CHECK(tipo IN ('entrada','saida')), data_movimento TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_fluxo_caixa_data_movimento ON fluxo_caixa(data_movimento);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
