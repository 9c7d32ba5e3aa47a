package config

import "testing"

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		BcryptCost:    10,
		TokenTTLHours: 24,
		DBMaxConns:    20,
		DBMinConns:    5,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"bcrypt cost too low", func(c *Config) { c.BcryptCost = 2 }},
		{"bcrypt cost too high", func(c *Config) { c.BcryptCost = 40 }},
		{"zero token ttl", func(c *Config) { c.TokenTTLHours = 0 }},
		{"zero max conns", func(c *Config) { c.DBMaxConns = 0 }},
		{"min above max", func(c *Config) { c.DBMinConns = 30 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mut(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/clinica")
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if !cfg.IsDev() {
		t.Error("expected default env to be development")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secreto")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/clinica")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}
