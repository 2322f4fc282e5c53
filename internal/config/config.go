package config

import "os"

// Config contains runtime settings for the aggregation engine. Provider and
// warehouse credentials are optional on purpose: a missing credential turns
// the matching adapter into a deterministic no-op instead of failing startup.
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	JSearch  struct {
		APIKey  string
		APIHost string
	} // primary provider credentials (key + host pair)
	Adzuna struct {
		AppID  string
		AppKey string
	} // regional provider credentials (app id + app key pair)
	Neo4j struct {
		URI      string
		Username string
		Password string
	}
	Sheets struct {
		CredentialsPath string
	}
}

// Load populates config from environment variables
func Load() Config {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.JSearch.APIKey = os.Getenv("JSEARCH_API_KEY")
	cfg.JSearch.APIHost = os.Getenv("JSEARCH_API_HOST")

	cfg.Adzuna.AppID = os.Getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = os.Getenv("ADZUNA_APP_KEY")

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.Sheets.CredentialsPath = os.Getenv("SHEETS_CREDENTIALS_PATH")

	return cfg
}
