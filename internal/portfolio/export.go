// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package portfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/pocket/internal/fsutil"
	"github.com/pdiddy/pocket/pkg/types"
)

const (
	textHeader = "STOCK | COMPANY | PRICE | QTY | P/L"
	textRule   = "-------------------------------------"
)

var csvHeader = []string{"Stock", "Company", "Price", "Quantity", "P/L"}

// WriteText renders positions as the pipe-delimited report.
func WriteText(w io.Writer, positions []types.Position) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", textHeader, textRule); err != nil {
		return err
	}
	for _, p := range positions {
		_, err := fmt.Fprintf(w, "%s | %s | $%d | %d | $%d\n",
			p.Symbol, p.Name, p.Price, p.Quantity, p.ProfitLoss)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders positions as the comma-delimited report with a header
// row. Rows end in CRLF; fields containing commas or quotes are quoted.
func WriteCSV(w io.Writer, positions []types.Position) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range positions {
		row := []string{
			p.Symbol,
			p.Name,
			strconv.FormatInt(p.Price, 10),
			strconv.FormatInt(p.Quantity, 10),
			strconv.FormatInt(p.ProfitLoss, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveText writes the pipe-delimited report to path, replacing it.
func SaveText(path string, positions []types.Position) error {
	err := fsutil.WriteAtomic(path, func(w io.Writer) error {
		return WriteText(w, positions)
	})
	if err != nil {
		return fmt.Errorf("saving text report: %w", err)
	}
	return nil
}

// SaveCSV writes the comma-delimited report to path, replacing it.
func SaveCSV(path string, positions []types.Position) error {
	err := fsutil.WriteAtomic(path, func(w io.Writer) error {
		return WriteCSV(w, positions)
	})
	if err != nil {
		return fmt.Errorf("saving CSV report: %w", err)
	}
	return nil
}
