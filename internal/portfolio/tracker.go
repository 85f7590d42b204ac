// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pocket/internal/console"
	"github.com/pdiddy/pocket/internal/menu"
	"github.com/pdiddy/pocket/pkg/types"
)

const (
	summaryWidth = 58
	tableWidth   = 55
	rowWidth     = 65
	nameWidth    = 14
)

// Tracker is the interactive portfolio session.
type Tracker struct {
	ledger *Ledger
	cfg    types.PortfolioConfig
	con    *console.Console
	log    *zap.Logger
}

// NewTracker binds a ledger to report paths and a console. A nil logger
// disables logging.
func NewTracker(ledger *Ledger, cfg types.PortfolioConfig, con *console.Console, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{ledger: ledger, cfg: cfg, con: con, log: log.Named("portfolio")}
}

// Menu returns the tracker's main menu.
func (t *Tracker) Menu() *menu.Menu {
	return &menu.Menu{
		Title: "STOCK PORTFOLIO TRACKER",
		Options: []menu.Option{
			{Key: "1", Label: "View Available Stocks", Run: t.ShowStocks},
			{Key: "2", Label: "Add Stocks to Portfolio", Run: t.AddStocks},
			{Key: "3", Label: "View Portfolio Summary", Run: t.ShowSummary},
			{Key: "4", Label: "Save Report", Run: t.SaveReport},
			{Key: "5", Label: "Exit", Exit: true},
		},
		Prompt:   "Select an option (1-5): ",
		Invalid:  "Invalid option! Please choose 1-5.",
		Farewell: "\nThank you for using the Stock Portfolio Tracker!\n",
	}
}

// Run starts the interactive session.
func (t *Tracker) Run(ctx context.Context) error {
	return t.Menu().Run(ctx, t.con)
}

// ShowStocks prints the stock table.
func (t *Tracker) ShowStocks(ctx context.Context) error {
	stocks, err := t.ledger.Stocks(ctx)
	if err != nil {
		return err
	}

	rule := strings.Repeat("-", tableWidth)
	t.con.Println("\nAvailable Stocks:")
	t.con.Println(rule)
	t.con.Printf("%-10s %-20s %-15s\n", "SYMBOL", "COMPANY", "PRICE ($)")
	t.con.Println(rule)
	for _, s := range stocks {
		t.con.Printf("%-10s %-20s %-15d\n", s.Symbol, s.Name, s.Price)
	}
	t.con.Println(rule)
	return nil
}

// AddStocks shows the table, then reads symbol and quantity pairs until the
// user types "done".
func (t *Tracker) AddStocks(ctx context.Context) error {
	if err := t.ShowStocks(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		symbol, err := t.con.Prompt("\nEnter stock symbol (or type 'done'): ")
		if err != nil {
			return err
		}
		symbol = normalizeSymbol(symbol)
		if symbol == "DONE" {
			return nil
		}

		if _, err := t.ledger.Lookup(ctx, symbol); err != nil {
			if errors.Is(err, ErrUnknownSymbol) {
				t.con.Printf("%s Invalid stock symbol!\n", t.con.Bad("[ERROR]"))
				continue
			}
			return err
		}

		answer, err := t.con.Prompt("Enter quantity: ")
		if err != nil {
			return err
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
		if err != nil {
			t.con.Printf("%s Quantity must be a number!\n", t.con.Bad("[ERROR]"))
			continue
		}

		if err := t.ledger.Add(ctx, symbol, qty); err != nil {
			return err
		}
		t.log.Debug("added shares", zap.String("symbol", symbol), zap.Int64("quantity", qty))
		t.con.Printf("%s Added %d shares of %s.\n", t.con.Good("[SUCCESS]"), qty, symbol)
	}
}

// ShowSummary prints every position with its profit or loss and the
// portfolio totals.
func (t *Tracker) ShowSummary(ctx context.Context) error {
	sum, err := t.ledger.Summary(ctx)
	if err != nil {
		return err
	}
	if sum.IsEmpty() {
		t.con.Warn("\nYour portfolio is empty!")
		return nil
	}

	heavy := strings.Repeat("=", summaryWidth)
	light := strings.Repeat("-", rowWidth)

	t.con.Println("\n" + heavy)
	t.con.Println(menu.Center("PORTFOLIO SUMMARY", summaryWidth))
	t.con.Println(heavy)
	t.con.Printf("%-10s %-15s %-10s %-12s %-15s\n", "STOCK", "COMPANY", "QTY", "PRICE($)", "P/L")
	t.con.Println(light)

	for _, p := range sum.Positions {
		pl := fmt.Sprintf("$%d", p.ProfitLoss)
		if p.ProfitLoss >= 0 {
			pl = t.con.Good(pl)
		} else {
			pl = t.con.Bad(pl)
		}
		t.con.Printf("%-10s %-15s %-10d %-12d %s\n", p.Symbol, truncate(p.Name, nameWidth), p.Quantity, p.Price, pl)
	}

	t.con.Println(light)
	t.con.Printf("%-25s $%d\n", "TOTAL PORTFOLIO VALUE:", sum.TotalValue)
	if sum.TotalPL >= 0 {
		t.con.Success("TOTAL PROFIT: $%d", sum.TotalPL)
	} else {
		t.con.Error("TOTAL LOSS: $%d", sum.TotalPL)
	}
	t.con.Println(heavy + "\n")
	return nil
}

// SaveReport asks for a format and writes the report file.
func (t *Tracker) SaveReport(ctx context.Context) error {
	positions, err := t.ledger.Positions(ctx)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		t.con.Warn("Portfolio is empty! Nothing to save.")
		return nil
	}

	t.con.Println("\nSave Options:")
	t.con.Println("1. Save as TXT")
	t.con.Println("2. Save as CSV")
	t.con.Println("3. Cancel")

	choice, err := t.con.Prompt("Enter choice: ")
	if err != nil {
		return err
	}

	var path string
	switch strings.TrimSpace(choice) {
	case "1":
		path = t.cfg.ReportTXT
		err = SaveText(path, positions)
	case "2":
		path = t.cfg.ReportCSV
		err = SaveCSV(path, positions)
	default:
		t.con.Println("Skipped saving.")
		return nil
	}
	if err != nil {
		t.log.Warn("report save failed", zap.String("path", path), zap.Error(err))
		return err
	}

	t.log.Info("report saved", zap.String("path", path), zap.Int("positions", len(positions)))
	t.con.Success("Saved as %s", path)
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
