package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_FromEnvironment(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://places.test:9999")
	t.Setenv(EnvAdminToken, "sekrit")
	t.Setenv(EnvGooglePlaces, "gkey")

	c := Config{EnvFile: filepath.Join(t.TempDir(), "missing.env")}
	if err := c.LoadEnv(); err == nil {
		t.Fatal("expected error for explicit missing env file")
	}

	c = Config{}
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.BaseURL != "http://places.test:9999" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if c.AdminToken != "sekrit" || c.GoogleKey != "gkey" {
		t.Errorf("credentials not loaded: %+v", c)
	}
}

func TestLoadEnv_FlagsWinOverEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://from-env")
	c := Config{BaseURL: "http://from-flag"}
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.BaseURL != "http://from-flag" {
		t.Errorf("expected flag value to win, got %q", c.BaseURL)
	}
}

func TestLoadEnv_DefaultBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	var c Config
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", c.BaseURL)
	}
}

func TestLoadEnv_DotenvFile(t *testing.T) {
	// godotenv does not override variables already present, so make sure the
	// token is genuinely unset (t.Setenv first, for restoration on cleanup).
	t.Setenv(EnvAdminToken, "placeholder")
	os.Unsetenv(EnvAdminToken)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	os.WriteFile(path, []byte("ADMIN_TOKEN=from-dotenv\n"), 0644)

	c := Config{EnvFile: path}
	if err := c.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.AdminToken != "from-dotenv" {
		t.Errorf("AdminToken = %q", c.AdminToken)
	}
}

func TestLoadTypesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "types.yaml")
	os.WriteFile(path, []byte("place_types:\n  - park\n  - cafe\n"), 0644)

	var c Config
	if err := c.LoadTypesFile(path); err != nil {
		t.Fatalf("LoadTypesFile: %v", err)
	}
	if len(c.PlaceTypes) != 2 || c.PlaceTypes[0] != "park" || c.PlaceTypes[1] != "cafe" {
		t.Errorf("unexpected types: %v", c.PlaceTypes)
	}
}

func TestLoadTypesFile_UnknownIDsAccepted(t *testing.T) {
	// Unknown ids are not a config error; the orchestrator drops them.
	dir := t.TempDir()
	path := filepath.Join(dir, "types.yaml")
	os.WriteFile(path, []byte("place_types:\n  - helicopter_pad\n"), 0644)

	var c Config
	if err := c.LoadTypesFile(path); err != nil {
		t.Fatalf("LoadTypesFile: %v", err)
	}
}

func TestLoadTypesFile_Missing(t *testing.T) {
	var c Config
	if err := c.LoadTypesFile("/nonexistent/types.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_RequiresAdminToken(t *testing.T) {
	c := Config{BaseURL: DefaultBaseURL}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing admin token")
	}
	c.AdminToken = "tok"
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
