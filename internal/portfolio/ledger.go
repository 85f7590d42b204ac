// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package portfolio tracks share holdings against a fixed stock table for
// one session and exports the result as text or CSV.
//
// Holdings live in a private in-memory SQLite database. Nothing is written
// to disk and nothing is loaded back: closing the Ledger ends the session.
package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pocket/pkg/types"
)

// ErrUnknownSymbol is returned for symbols missing from the stock table.
var ErrUnknownSymbol = errors.New("unknown stock symbol")

// Ledger holds the stock table and the session's holdings.
type Ledger struct {
	db *sql.DB
}

// NewLedger creates an empty in-memory ledger trading against stocks.
func NewLedger(ctx context.Context, stocks []types.Stock) (*Ledger, error) {
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	l := &Ledger{db: db}
	if err := l.createSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if err := l.loadStocks(ctx, stocks); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

// Close discards the session.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE stocks (
			position INTEGER NOT NULL,
			symbol TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price INTEGER NOT NULL,
			cost INTEGER NOT NULL
		)`,
		`CREATE TABLE holdings (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol TEXT NOT NULL UNIQUE REFERENCES stocks(symbol),
			quantity INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := l.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func (l *Ledger) loadStocks(ctx context.Context, stocks []types.Stock) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO stocks (position, symbol, name, price, cost) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range stocks {
		if _, err := stmt.ExecContext(ctx, i, s.Symbol, s.Name, s.Price, s.Cost); err != nil {
			return fmt.Errorf("inserting stock %s: %w", s.Symbol, err)
		}
	}
	return tx.Commit()
}

// Stocks returns the stock table in load order.
func (l *Ledger) Stocks(ctx context.Context) ([]types.Stock, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT symbol, name, price, cost FROM stocks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying stocks: %w", err)
	}
	defer rows.Close()

	var stocks []types.Stock
	for rows.Next() {
		var s types.Stock
		if err := rows.Scan(&s.Symbol, &s.Name, &s.Price, &s.Cost); err != nil {
			return nil, fmt.Errorf("scanning stock: %w", err)
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

// Lookup returns the stock row for symbol. Matching ignores case.
func (l *Ledger) Lookup(ctx context.Context, symbol string) (types.Stock, error) {
	symbol = normalizeSymbol(symbol)

	var s types.Stock
	err := l.db.QueryRowContext(ctx,
		`SELECT symbol, name, price, cost FROM stocks WHERE symbol = ?`, symbol,
	).Scan(&s.Symbol, &s.Name, &s.Price, &s.Cost)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Stock{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	if err != nil {
		return types.Stock{}, fmt.Errorf("looking up %s: %w", symbol, err)
	}
	return s, nil
}

// Add adds qty shares of symbol to the portfolio. Repeated adds accumulate;
// a holding keeps the position of its first add. Negative quantities are
// accepted and reduce the holding.
func (l *Ledger) Add(ctx context.Context, symbol string, qty int64) error {
	s, err := l.Lookup(ctx, symbol)
	if err != nil {
		return err
	}

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO holdings (symbol, quantity) VALUES (?, ?)
		 ON CONFLICT(symbol) DO UPDATE SET quantity = quantity + excluded.quantity`,
		s.Symbol, qty,
	)
	if err != nil {
		return fmt.Errorf("adding %d shares of %s: %w", qty, s.Symbol, err)
	}
	return nil
}

// IsEmpty reports whether nothing has been added yet.
func (l *Ledger) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := l.db.QueryRowContext(ctx, `SELECT count(*) FROM holdings`).Scan(&n); err != nil {
		return false, fmt.Errorf("counting holdings: %w", err)
	}
	return n == 0, nil
}

// Positions returns every holding joined with its stock row, in the order
// the symbols were first added.
func (l *Ledger) Positions(ctx context.Context) ([]types.Position, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT h.symbol, s.name, s.price, s.cost, h.quantity,
		        h.quantity * s.price, (s.price - s.cost) * h.quantity
		 FROM holdings h JOIN stocks s ON s.symbol = h.symbol
		 ORDER BY h.rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying positions: %w", err)
	}
	defer rows.Close()

	var positions []types.Position
	for rows.Next() {
		var p types.Position
		if err := rows.Scan(&p.Symbol, &p.Name, &p.Price, &p.Cost, &p.Quantity, &p.Value, &p.ProfitLoss); err != nil {
			return nil, fmt.Errorf("scanning position: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// Summary returns all positions with the total value and total profit/loss.
func (l *Ledger) Summary(ctx context.Context) (types.PortfolioSummary, error) {
	positions, err := l.Positions(ctx)
	if err != nil {
		return types.PortfolioSummary{}, err
	}

	var sum types.PortfolioSummary
	err = l.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(h.quantity * s.price), 0),
		        COALESCE(SUM((s.price - s.cost) * h.quantity), 0)
		 FROM holdings h JOIN stocks s ON s.symbol = h.symbol`,
	).Scan(&sum.TotalValue, &sum.TotalPL)
	if err != nil {
		return types.PortfolioSummary{}, fmt.Errorf("totalling portfolio: %w", err)
	}
	sum.Positions = positions
	return sum, nil
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
