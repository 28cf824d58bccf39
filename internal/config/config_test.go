package config

import "testing"

func TestEnvOverride(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	// An unexpanded placeholder with no environment value must resolve
	// to empty, never reach the DSN verbatim
	if got := envOverride("${DB_PASSWORD}", "DB_PASSWORD"); got != "" {
		t.Fatalf("placeholder resolved to %q, want empty", got)
	}

	// A real file value survives when the environment is unset
	if got := envOverride("filepass", "DB_PASSWORD"); got != "filepass" {
		t.Fatalf("file value = %q, want filepass", got)
	}

	t.Setenv("DB_PASSWORD", "envpass")

	// The environment wins over both the placeholder and the file value
	if got := envOverride("${DB_PASSWORD}", "DB_PASSWORD"); got != "envpass" {
		t.Fatalf("placeholder with env = %q, want envpass", got)
	}
	if got := envOverride("filepass", "DB_PASSWORD"); got != "envpass" {
		t.Fatalf("file value with env = %q, want envpass", got)
	}
	if got := envOverride("", "DB_PASSWORD"); got != "envpass" {
		t.Fatalf("empty value with env = %q, want envpass", got)
	}
}
