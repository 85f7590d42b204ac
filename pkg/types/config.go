package types

// EmailConfig holds settings for the email extraction tool.
type EmailConfig struct {
	// InputPath is the text file scanned for email-like substrings
	// (default "email_source.txt").
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the report file, overwritten on every run
	// (default "extracted_emails.txt").
	OutputPath string `json:"output" yaml:"output"`
}

// HangmanConfig holds settings for the word-guessing game.
type HangmanConfig struct {
	// WordsFile is an optional YAML file replacing the built-in word list.
	WordsFile string `json:"words_file,omitempty" yaml:"words_file,omitempty"`
}

// PortfolioConfig holds settings for the portfolio tracker.
type PortfolioConfig struct {
	// StocksFile is an optional YAML file replacing the built-in stock table.
	StocksFile string `json:"stocks_file,omitempty" yaml:"stocks_file,omitempty"`

	// ReportTXT is the pipe-delimited report path (default "portfolio_report.txt").
	ReportTXT string `json:"report_txt" yaml:"report_txt"`

	// ReportCSV is the comma-delimited report path (default "portfolio_report.csv").
	ReportCSV string `json:"report_csv" yaml:"report_csv"`
}

// LogConfig holds diagnostic logging settings. Console output shown to the
// user is not logging and is unaffected by these settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty disables logging.
	Level string `json:"level" yaml:"level"`

	// File is the log destination: "stderr", "stdout", or a file path.
	File string `json:"file" yaml:"file"`
}

// Config groups the settings of every tool.
type Config struct {
	Emails    EmailConfig     `json:"emails" yaml:"emails"`
	Hangman   HangmanConfig   `json:"hangman" yaml:"hangman"`
	Portfolio PortfolioConfig `json:"portfolio" yaml:"portfolio"`
	Log       LogConfig       `json:"log" yaml:"log"`
}
