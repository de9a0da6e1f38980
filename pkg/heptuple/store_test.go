package heptuple

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewFileStoreAt(path)

	// Absent credentials are nil, not an error.
	creds, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on empty store error = %v", err)
	}
	if creds != nil {
		t.Fatalf("Load() = %+v, want nil", creds)
	}

	saved := &Credentials{
		Token: "tok-round-trip",
		User:  &UserProfile{ID: 1, Username: "alice", Role: "user"},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat credentials file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Token != saved.Token {
		t.Errorf("token = %q, want %q", loaded.Token, saved.Token)
	}
	if loaded.User == nil || loaded.User.Username != "alice" {
		t.Errorf("user = %+v, want alice", loaded.User)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if creds, _ := store.Load(); creds != nil {
		t.Error("expected nil credentials after Clear")
	}

	// Clearing again is a no-op.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStoreAt(path)
	if _, err := store.Load(); err == nil {
		t.Error("expected an error for a corrupt credentials file")
	}
}

func TestFileStore_EmptyTokenMeansAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte(`{"token": ""}`), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStoreAt(path)
	creds, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if creds != nil {
		t.Errorf("Load() = %+v, want nil for an empty token", creds)
	}
}

func TestMemoryStore_IsolatesCopies(t *testing.T) {
	store := NewMemoryStore()
	original := &Credentials{Token: "tok"}
	store.Save(original)

	original.Token = "mutated"

	loaded, _ := store.Load()
	if loaded.Token != "tok" {
		t.Errorf("stored token = %q, mutated through caller's pointer", loaded.Token)
	}
}
