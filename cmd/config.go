package cmd

// Config carries everything read from the environment at startup. It is
// populated once in main and immutable afterwards.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	GeminiAPIURL   string
	GeminiAPIKey   string
	SendGridAPIKey string
	MailFrom       string
}
