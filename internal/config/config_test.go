package config

import "testing"

func setLiveEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
}

func TestDemoMode_NoCredentials(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")
	if !Load().DemoMode() {
		t.Fatal("expected demo mode with no credentials")
	}
}

func TestDemoMode_PlaceholderCredentials(t *testing.T) {
	setLiveEnv(t)
	t.Setenv("SUPABASE_ANON_KEY", "placeholder-anon-key")
	if !Load().DemoMode() {
		t.Fatal("placeholder key must count as absent")
	}
}

func TestDemoMode_LiveCredentials(t *testing.T) {
	setLiveEnv(t)
	if Load().DemoMode() {
		t.Fatal("expected live mode with full credentials")
	}
}

func TestEmailEnabled(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	if Load().EmailEnabled() {
		t.Fatal("no key: email must be disabled")
	}
	t.Setenv("RESEND_API_KEY", "re_placeholder_123")
	if Load().EmailEnabled() {
		t.Fatal("placeholder key: email must be disabled")
	}
	t.Setenv("RESEND_API_KEY", "re_live_123")
	if !Load().EmailEnabled() {
		t.Fatal("real key: email must be enabled")
	}
}

func TestSetupURL_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.com/")
	if got, want := Load().SetupURL(), "https://example.com/portal/setup"; got != want {
		t.Fatalf("SetupURL = %q, want %q", got, want)
	}
}

func TestValidate_DemoModeSkipsBackendChecks(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("DATABASE_DSN", "")
	if err := Load().Validate(); err != nil {
		t.Fatalf("demo mode should not require backend config: %v", err)
	}
}

func TestValidate_LiveModeRequiresDSNAndStorage(t *testing.T) {
	setLiveEnv(t)
	t.Setenv("DATABASE_DSN", "")
	if err := Load().Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_DSN")
	}
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/app")
	t.Setenv("STORAGE_ENDPOINT", "")
	if err := Load().Validate(); err == nil {
		t.Fatal("expected error for missing storage config")
	}
	t.Setenv("STORAGE_ENDPOINT", "https://abc.supabase.co/storage/v1/s3")
	t.Setenv("STORAGE_ACCESS_KEY", "ak")
	t.Setenv("STORAGE_SECRET_KEY", "sk")
	if err := Load().Validate(); err != nil {
		t.Fatalf("expected valid live config, got %v", err)
	}
}
