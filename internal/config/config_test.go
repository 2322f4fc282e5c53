package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LOG_LEVEL", "HOST", "PORT",
		"JSEARCH_API_KEY", "JSEARCH_API_HOST",
		"ADZUNA_APP_ID", "ADZUNA_APP_KEY",
		"NEO4J_URI", "NEO4J_USERNAME", "NEO4J_PASSWORD",
		"SHEETS_CREDENTIALS_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.LogLevel != "info" || cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.JSearch.APIKey != "" || cfg.Adzuna.AppID != "" || cfg.Neo4j.URI != "" {
		t.Fatalf("credentials should be empty without env: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("JSEARCH_API_KEY", "jk")
	t.Setenv("JSEARCH_API_HOST", "jsearch.p.rapidapi.com")
	t.Setenv("ADZUNA_APP_ID", "aid")
	t.Setenv("ADZUNA_APP_KEY", "akey")
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "secret")

	cfg := Load()

	if cfg.LogLevel != "debug" || cfg.Port != "9090" {
		t.Fatalf("env overrides ignored: %+v", cfg)
	}
	if cfg.JSearch.APIKey != "jk" || cfg.JSearch.APIHost != "jsearch.p.rapidapi.com" {
		t.Fatalf("jsearch credentials lost: %+v", cfg.JSearch)
	}
	if cfg.Adzuna.AppID != "aid" || cfg.Adzuna.AppKey != "akey" {
		t.Fatalf("adzuna credentials lost: %+v", cfg.Adzuna)
	}
	if cfg.Neo4j.URI != "neo4j://localhost:7687" || cfg.Neo4j.Password != "secret" {
		t.Fatalf("neo4j settings lost: %+v", cfg.Neo4j)
	}
}
