package config

// SMTP configures outbound mail for the email notification endpoint.
// When Host is empty the endpoint only logs the message, which is the
// default mock behavior.
type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// Enabled reports whether real SMTP delivery is configured.
func (s SMTP) Enabled() bool {
	return s.Host != ""
}
