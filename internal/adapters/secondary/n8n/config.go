package n8n

type Config struct {
	WebhookURL string `envconfig:"WEBHOOK_URL" required:"true"`
	// SkipSSL отключает проверку сертификата - только для self-signed
	// endpoint'ов во внутренней сети. По умолчанию TLS проверяется.
	SkipSSL        string `envconfig:"SKIP_SSL"` // Railway требует строки вместо bool
	TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
