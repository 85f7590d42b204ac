// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pocket CLI: an email extractor,
// a hangman game, and a stock portfolio tracker behind one binary.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pocket/internal/console"
	"github.com/pdiddy/pocket/internal/logging"
	"github.com/pdiddy/pocket/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log.* settings before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the pocket CLI.
var rootCmd = &cobra.Command{
	Use:   "pocket",
	Short: "Small console tools: email extraction, hangman, and a stock portfolio",
	Long: `pocket bundles three independent console programs. Each one is a
subcommand:

  emails     scan a text file for email addresses and write a sorted report
  hangman    guess a hidden word letter by letter
  portfolio  record stock holdings, review profit and loss, save reports

Settings come from pocket.yaml (in the working directory or
~/.config/pocket/), POCKET_* environment variables, and flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(loadConfig().Log)
		if err != nil {
			return err
		}
		logger = logging.WithSession(log).With(zap.String("command", cmd.CommandPath()))
		logger.Debug("starting", zap.String("version", version))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pocket.yaml or ~/.config/pocket/pocket.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic log level: debug, info, warn, error (default off)")
	rootCmd.PersistentFlags().String("log-file", "", "diagnostic log destination: stderr, stdout, or a path")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("emails.input", "email_source.txt")
	v.SetDefault("emails.output", "extracted_emails.txt")
	v.SetDefault("hangman.words_file", "")
	v.SetDefault("portfolio.stocks_file", "")
	v.SetDefault("portfolio.report_txt", "portfolio_report.txt")
	v.SetDefault("portfolio.report_csv", "portfolio_report.csv")
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pocket")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pocket"))
		}
	}

	viper.SetEnvPrefix("POCKET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the typed settings out of the global viper instance.
func loadConfig() types.Config {
	return configFrom(viper.GetViper())
}

func configFrom(v *viper.Viper) types.Config {
	return types.Config{
		Emails: types.EmailConfig{
			InputPath:  v.GetString("emails.input"),
			OutputPath: v.GetString("emails.output"),
		},
		Hangman: types.HangmanConfig{
			WordsFile: v.GetString("hangman.words_file"),
		},
		Portfolio: types.PortfolioConfig{
			StocksFile: v.GetString("portfolio.stocks_file"),
			ReportTXT:  v.GetString("portfolio.report_txt"),
			ReportCSV:  v.GetString("portfolio.report_csv"),
		},
		Log: types.LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
	}
}

// newConsole binds the command's standard streams.
func newConsole(cmd *cobra.Command) *console.Console {
	return console.New(cmd.InOrStdin(), cmd.OutOrStdout())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
