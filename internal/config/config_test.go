package config

import (
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/pflag"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)

	c := load(env(nil))
	is.Equal(c.Addr, ":8080")
	is.Equal(c.OpenAIModel, "gpt-4o-mini")
	is.Equal(c.CORSOrigins, []string{"*"})
	is.Equal(c.OpenAIKey, "")
	is.True(c.UsesDevSecret())
}

func TestLoad_Env(t *testing.T) {
	is := is.New(t)

	c := load(env(map[string]string{
		"ADDR":            ":9090",
		"JWT_SECRET":      "s3cret",
		"API_KEY":         "legacy",
		"OPENAI_MODEL":    "gpt-4.1",
		"CORS_ORIGINS":    "http://a.test, ,http://b.test",
		"OPENAI_BASE_URL": "http://llm.local/v1",
	}))
	is.Equal(c.Addr, ":9090")
	is.True(!c.UsesDevSecret())
	is.Equal(c.OpenAIKey, "legacy")
	is.Equal(c.OpenAIModel, "gpt-4.1")
	is.Equal(c.CORSOrigins, []string{"http://a.test", "http://b.test"})
	is.Equal(c.OpenAIBaseURL, "http://llm.local/v1")
}

func TestLoad_PrefersOpenAIKey(t *testing.T) {
	is := is.New(t)
	c := load(env(map[string]string{"API_KEY": "legacy", "OPENAI_API_KEY": "new"}))
	is.Equal(c.OpenAIKey, "new")
}

func TestBindFlags(t *testing.T) {
	is := is.New(t)

	c := load(env(map[string]string{"ADDR": ":9090"}))
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)
	is.NoErr(fs.Parse([]string{"--model", "local-model", "--cors-origins", "http://x.test,http://y.test"}))

	is.Equal(c.Addr, ":9090") // env value survives as flag default
	is.Equal(c.OpenAIModel, "local-model")
	is.Equal(c.CORSOrigins, []string{"http://x.test", "http://y.test"})
}
