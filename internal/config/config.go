package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const devJWTSecret = "dev-secret-change-me"

type Config struct {
	Addr        string
	JWTSecret   string
	CORSOrigins []string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
}

func Load() *Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) *Config {
	addr := getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	secret := getenv("JWT_SECRET")
	if secret == "" {
		secret = devJWTSecret
	}

	// API_KEY is the older name for the same credential.
	key := getenv("OPENAI_API_KEY")
	if key == "" {
		key = getenv("API_KEY")
	}

	model := getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	origins := splitList(getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Addr:        addr,
		JWTSecret:   secret,
		CORSOrigins: origins,

		OpenAIKey:     key,
		OpenAIModel:   model,
		OpenAIBaseURL: getenv("OPENAI_BASE_URL"),
	}
}

// BindFlags registers command-line overrides; environment values become the
// flag defaults. The API key and JWT secret stay environment-only.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.StringSliceVar(&c.CORSOrigins, "cors-origins", c.CORSOrigins, "allowed CORS origins")
	fs.StringVar(&c.OpenAIModel, "model", c.OpenAIModel, "model used for insights")
	fs.StringVar(&c.OpenAIBaseURL, "openai-base-url", c.OpenAIBaseURL, "OpenAI-compatible API base URL")
}

// UsesDevSecret reports whether tokens are signed with the built-in secret.
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == devJWTSecret
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
