package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            int           `env:"PORT,default=8080"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	AllowedOrigins  string        `env:"ALLOWED_ORIGINS,default=*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`

	// пустой DATABASE_URL: статистика в памяти
	DatabaseURL string `env:"DATABASE_URL"`

	// без OPENAI_API_KEY /api/chat не монтируется
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL,default=gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// пустой CHAT_ENDPOINT: собственный /api/chat на PORT
	ChatEndpoint string        `env:"CHAT_ENDPOINT"`
	ChatTimeout  time.Duration `env:"CHAT_TIMEOUT,default=0s"`
	TypingDelay  time.Duration `env:"TYPING_DELAY,default=800ms"`
	SessionTTL   time.Duration `env:"SESSION_TTL,default=30m"`

	Web3FormsURL       string        `env:"WEB3FORMS_URL,default=https://api.web3forms.com/submit"`
	Web3FormsAccessKey string        `env:"WEB3FORMS_ACCESS_KEY"`
	RelayTimeout       time.Duration `env:"RELAY_TIMEOUT,default=10s"`
}

// Load читает .env (если есть) и окружение процесса.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	if cfg.TypingDelay < 0 {
		return nil, fmt.Errorf("TYPING_DELAY must not be negative, got %s", cfg.TypingDelay)
	}
	if cfg.SessionTTL < 0 {
		return nil, fmt.Errorf("SESSION_TTL must not be negative, got %s", cfg.SessionTTL)
	}
	if strings.TrimSpace(cfg.ChatEndpoint) == "" {
		cfg.ChatEndpoint = fmt.Sprintf("http://localhost:%d/api/chat", cfg.Port)
	}

	return &cfg, nil
}

// Origins режет ALLOWED_ORIGINS по запятым.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
