package consent_test

import (
	"errors"
	"strings"
	"testing"

	"todobox/internal/consent"
	"todobox/internal/storage"
)

func TestBanner_VisibleOnEmptyStorage(t *testing.T) {
	b := consent.New(storage.NewMemory(nil))

	if !b.Visible() {
		t.Fatal("expected banner to be visible on empty storage")
	}
	if !strings.Contains(b.Message(), "We use cookies") {
		t.Errorf("expected default message to mention cookies, got %q", b.Message())
	}
}

func TestBanner_HiddenWhenAlreadyAccepted(t *testing.T) {
	store := storage.NewMemory(map[string]string{consent.Key: "1"})

	if consent.New(store).Visible() {
		t.Error("expected banner to be hidden when allowCookies is 1")
	}
}

func TestBanner_OnlyLiteralOneCountsAsAccepted(t *testing.T) {
	for _, v := range []string{"", "0", "true", "yes", " 1"} {
		store := storage.NewMemory(map[string]string{consent.Key: v})
		if !consent.New(store).Visible() {
			t.Errorf("expected banner visible for stored value %q", v)
		}
	}
}

func TestBanner_Accept(t *testing.T) {
	store := storage.NewMemory(nil)
	b := consent.New(store)

	if err := b.Accept(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Visible() {
		t.Error("expected banner to be hidden after accept")
	}
	if v, _, _ := store.Get(consent.Key); v != "1" {
		t.Errorf("expected allowCookies to be \"1\", got %q", v)
	}

	// Remounting keeps it hidden until storage is cleared.
	if consent.New(store).Visible() {
		t.Error("expected remounted banner to stay hidden")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !consent.New(store).Visible() {
		t.Error("expected banner to reappear after storage is cleared")
	}
}

func TestBanner_AcceptIsIdempotent(t *testing.T) {
	store := storage.NewMemory(nil)
	b := consent.New(store)

	for i := 0; i < 3; i++ {
		if err := b.Accept(); err != nil {
			t.Fatalf("accept %d failed: %v", i, err)
		}
	}
	if got := store.Snapshot(); len(got) != 1 || got[consent.Key] != "1" {
		t.Errorf("expected only the consent flag, got %v", got)
	}
}

func TestBanner_WithMessage(t *testing.T) {
	b := consent.New(storage.NewMemory(nil), consent.WithMessage("We use cookies, sorry."))
	if b.Message() != "We use cookies, sorry." {
		t.Errorf("unexpected message %q", b.Message())
	}

	b = consent.New(storage.NewMemory(nil), consent.WithMessage(""))
	if b.Message() != consent.DefaultMessage {
		t.Errorf("expected blank override to be ignored, got %q", b.Message())
	}
}

type failingStore struct{ storage.Store }

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingStore) Set(string, string) error         { return errors.New("disk gone") }

func TestBanner_StorageFailures(t *testing.T) {
	b := consent.New(failingStore{})
	if !b.Visible() {
		t.Error("expected failed read to show the banner")
	}
	if err := b.Accept(); err == nil {
		t.Error("expected write failure to be returned")
	}
	if b.Visible() {
		t.Error("expected banner to hide even when the write fails")
	}
}
