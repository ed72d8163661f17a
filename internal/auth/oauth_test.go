package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"todobox/internal/config"
)

const testClient = `{"installed":{"client_id":"test","client_secret":"test","redirect_uris":["http://localhost"]}}`

func TestLoadConfig(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	if _, err := LoadConfig(cfg); err == nil {
		t.Fatal("expected error without oauth_client.json")
	}

	if err := os.WriteFile(cfg.OAuthClientPath(), []byte(testClient), 0600); err != nil {
		t.Fatal(err)
	}
	oc, err := LoadConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if oc.ClientID != "test" {
		t.Errorf("unexpected client id %q", oc.ClientID)
	}
	if len(oc.Scopes) != 1 || oc.Scopes[0] != Scope {
		t.Errorf("unexpected scopes %v", oc.Scopes)
	}
}

func TestSaveAndLoadToken(t *testing.T) {
	cfg := &config.Config{Dir: filepath.Join(t.TempDir(), "nested")}
	want := &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	if err := SaveToken(cfg, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	info, err := os.Stat(cfg.TokenPath())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}

	got, err := LoadToken(cfg)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.AccessToken != want.AccessToken || got.RefreshToken != want.RefreshToken || !got.Expiry.Equal(want.Expiry) {
		t.Errorf("token mismatch: %+v vs %+v", got, want)
	}
}

func TestTokenValid_NoRefreshToken(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	os.WriteFile(cfg.OAuthClientPath(), []byte(testClient), 0600)
	os.WriteFile(cfg.TokenPath(), []byte(`{"access_token":"test","token_type":"Bearer"}`), 0600)

	if TokenValid(context.Background(), cfg) {
		t.Error("expected token without refresh_token to be invalid")
	}
}

func TestTokenValid_UnexpiredToken(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	os.WriteFile(cfg.OAuthClientPath(), []byte(testClient), 0600)
	tok := &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)}
	if err := SaveToken(cfg, tok); err != nil {
		t.Fatal(err)
	}

	// No refresh is needed, so no network access happens.
	if !TokenValid(context.Background(), cfg) {
		t.Error("expected unexpired token with refresh token to be valid")
	}
}

func TestLogin_Cancelled(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	os.WriteFile(cfg.OAuthClientPath(), []byte(testClient), 0600)
	oc, err := LoadConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var prompt discardWriter
	if _, err := Login(ctx, oc, &prompt); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

type discardWriter struct{ n int }

func (d *discardWriter) Write(p []byte) (int, error) {
	d.n += len(p)
	return len(p), nil
}
