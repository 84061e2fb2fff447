package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read once from the environment at process start. Missing
// required values are a startup error, never a per-request one.
type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	FixturePath string `env:"FIXTURE_PATH"`
	Zendesk     Zendesk
}

type Zendesk struct {
	Subdomain      string `env:"ZENDESK_SUBDOMAIN" env-required:"true"`
	Email          string `env:"ZENDESK_EMAIL" env-required:"true"`
	APIToken       string `env:"ZENDESK_API_TOKEN" env-required:"true"`
	TimeoutSeconds int    `env:"ZENDESK_TIMEOUT_SECONDS" env-default:"30"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

func (z Zendesk) BaseURL() string {
	return fmt.Sprintf("https://%s.zendesk.com/api/v2", z.Subdomain)
}

func (z Zendesk) Timeout() time.Duration {
	return time.Duration(z.TimeoutSeconds) * time.Second
}
