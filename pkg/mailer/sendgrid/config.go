package sendgrid

// DefaultBaseURL is the production SendGrid API endpoint.
const DefaultBaseURL = "https://api.sendgrid.com"

// Config holds SendGrid provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string `env:"SENDGRID_API_KEY"`
	BaseURL string `env:"SENDGRID_BASE_URL" envDefault:"https://api.sendgrid.com"`
}
