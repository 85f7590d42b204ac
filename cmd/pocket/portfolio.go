// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pocket/internal/catalog"
	"github.com/pdiddy/pocket/internal/portfolio"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Track stock holdings and their profit or loss",
	Long: `Portfolio opens a menu for buying shares from a fixed price table,
reviewing the portfolio with per-position profit and loss, and saving the
holdings as a pipe-delimited text file or a CSV file. Holdings live only for
the session.`,
	Args: cobra.NoArgs,
	RunE: runPortfolio,
}

var portfolioStocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "Print the stock price table",
	Long: `Stocks prints the configured price table and exits. With --yaml it
prints the table in the stock file format, suitable as a starting point for
portfolio.stocks_file.`,
	Args: cobra.NoArgs,
	RunE: runPortfolioStocks,
}

func init() {
	portfolioCmd.PersistentFlags().String("stocks", "", "YAML stock table replacing the built-in one")
	_ = viper.BindPFlag("portfolio.stocks_file", portfolioCmd.PersistentFlags().Lookup("stocks"))

	portfolioStocksCmd.Flags().Bool("yaml", false, "print the table as YAML")

	portfolioCmd.AddCommand(portfolioStocksCmd)
	rootCmd.AddCommand(portfolioCmd)
}

func openTracker(cmd *cobra.Command) (*portfolio.Tracker, func() error, error) {
	cfg := loadConfig().Portfolio

	stocks, err := catalog.LoadStocks(cfg.StocksFile)
	if err != nil {
		return nil, nil, err
	}
	ledger, err := portfolio.NewLedger(cmd.Context(), stocks)
	if err != nil {
		return nil, nil, err
	}
	return portfolio.NewTracker(ledger, cfg, newConsole(cmd), logger), ledger.Close, nil
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	tracker, closeFn, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	return tracker.Run(cmd.Context())
}

func runPortfolioStocks(cmd *cobra.Command, args []string) error {
	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asYAML {
		stocks, err := catalog.LoadStocks(loadConfig().Portfolio.StocksFile)
		if err != nil {
			return err
		}
		return catalog.EncodeStocks(cmd.OutOrStdout(), stocks)
	}

	tracker, closeFn, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	return tracker.ShowStocks(cmd.Context())
}
