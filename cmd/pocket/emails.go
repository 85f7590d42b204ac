// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pocket/internal/emails"
)

var emailsCmd = &cobra.Command{
	Use:   "emails",
	Short: "Extract email addresses from a text file",
	Long: `Emails opens a small menu that scans the configured input file for
email-like strings, removes duplicates, sorts them, and writes a report
with the total and unique counts. The report file is replaced on every run.`,
	Args: cobra.NoArgs,
	RunE: runEmails,
}

var emailsExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run one extraction without the menu",
	Long: `Extract performs a single extraction and exits. An input with no
matches is not an error; a missing or unreadable input, or a report that
cannot be written, exits non-zero.`,
	Args: cobra.NoArgs,
	RunE: runEmailsExtract,
}

func init() {
	emailsExtractCmd.Flags().String("input", "", "text file to scan (default email_source.txt)")
	emailsExtractCmd.Flags().String("output", "", "report file to write (default extracted_emails.txt)")
	_ = viper.BindPFlag("emails.input", emailsExtractCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("emails.output", emailsExtractCmd.Flags().Lookup("output"))

	emailsCmd.AddCommand(emailsExtractCmd)
	rootCmd.AddCommand(emailsCmd)
}

func newEmailTool(cmd *cobra.Command) *emails.Tool {
	cfg := loadConfig().Emails
	return emails.NewTool(emails.New(logger), cfg, newConsole(cmd))
}

func runEmails(cmd *cobra.Command, args []string) error {
	return newEmailTool(cmd).Run(cmd.Context())
}

func runEmailsExtract(cmd *cobra.Command, args []string) error {
	if err := newEmailTool(cmd).Extract(cmd.Context()); err != nil {
		// The tool already printed the outcome.
		cmd.SilenceErrors = true
		return err
	}
	return nil
}
