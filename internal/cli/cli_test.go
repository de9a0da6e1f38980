package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// startTestBackend serves the subset of the API the CLI touches, with a
// single alice/secret account.
func startTestBackend(t *testing.T) string {
	t.Helper()

	const token = "tok-cli-test"
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v2/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Username != "alice" || body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": token})
	})
	mux.HandleFunc("/api/v2/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "username": "alice", "email": "alice@example.com",
			"role": "user", "is_active": true,
		})
	})
	mux.HandleFunc("/api/v2/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v2/sourates", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"numero": 1, "nom_arabe": "الفاتحة", "nom_francais": "Al-Fatiha", "type_revelation": "Mecquoise", "nombre_versets": 7},
		})
	})
	mux.HandleFunc("/api/v2/search/coran", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"texte": "first hit", "reference": "2:255"},
				{"texte": "second hit", "reference": "1:1"},
			},
			"total": 2,
		})
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "version": "2.0.0"})
	})
	mux.HandleFunc("/api/v2/db/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"database": "up"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

// setupCLI points the CLI at a test backend and a throwaway credentials
// file, so invocations in one test share a session and tests stay hermetic.
func setupCLI(t *testing.T) {
	t.Helper()
	t.Setenv("HEPTUPLE_API_BASE", startTestBackend(t))
	t.Setenv("HEPTUPLE_CREDENTIALS", filepath.Join(t.TempDir(), "credentials.json"))
	t.Setenv("HEPTUPLE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestLoginCommand(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "", "login", "-u", "alice", "-p", "secret")
	if err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Logged in as alice") {
		t.Errorf("unexpected login output: %s", out)
	}

	// The stored session carries over to the next invocation.
	out, err = runCLI(t, "", "sourates")
	if err != nil {
		t.Fatalf("sourates after login: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Al-Fatiha") {
		t.Errorf("expected catalogue output, got: %s", out)
	}
}

func TestLoginCommand_Prompted(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "alice\nsecret\n", "login")
	if err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Logged in as alice") {
		t.Errorf("unexpected login output: %s", out)
	}
}

func TestLoginCommand_BadCredentials(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "", "login", "-u", "alice", "-p", "wrong")
	if err == nil {
		t.Fatalf("expected login failure, got output: %s", out)
	}
	if !strings.Contains(err.Error(), "invalid credentials") {
		t.Errorf("error = %v, want backend detail", err)
	}
}

func TestSouratesRequiresLogin(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "", "sourates")
	if err == nil {
		t.Fatal("expected an error while logged out")
	}
	if !strings.Contains(err.Error(), "not authenticated") {
		t.Errorf("error = %v, want not authenticated", err)
	}
}

func TestSearchCommand_SingleCorpus(t *testing.T) {
	setupCLI(t)

	if _, err := runCLI(t, "", "login", "-u", "alice", "-p", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := runCLI(t, "", "search", "mercy", "--corpus", "coran")
	if err != nil {
		t.Fatalf("search: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2 résultat(s) dans coran") {
		t.Errorf("unexpected search output: %s", out)
	}
	if !strings.Contains(out, "first hit") {
		t.Errorf("expected hit text in output: %s", out)
	}
}

func TestLogoutAndWhoami(t *testing.T) {
	setupCLI(t)

	if _, err := runCLI(t, "", "login", "-u", "alice", "-p", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	out, err := runCLI(t, "", "whoami")
	if err != nil {
		t.Fatalf("whoami: %v\n%s", err, out)
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("unexpected whoami output: %s", out)
	}

	out, err = runCLI(t, "", "logout")
	if err != nil {
		t.Fatalf("logout: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Logged out") {
		t.Errorf("unexpected logout output: %s", out)
	}

	if _, err := runCLI(t, "", "whoami"); err == nil {
		t.Error("whoami after logout should fail")
	}
}

func TestStatusCommand(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "", "status")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Service:  healthy") {
		t.Errorf("expected service health in output: %s", out)
	}
	if !strings.Contains(out, "Database: up") {
		t.Errorf("expected database health in output: %s", out)
	}
	if !strings.Contains(out, "Session:  logged out") {
		t.Errorf("expected session state in output: %s", out)
	}
}

func TestStatusCommand_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	t.Setenv("HEPTUPLE_API_BASE", srv.URL)
	t.Setenv("HEPTUPLE_CREDENTIALS", filepath.Join(t.TempDir(), "credentials.json"))
	t.Setenv("HEPTUPLE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	out, err := runCLI(t, "", "status")
	if err != nil {
		t.Fatalf("status must tolerate an unreachable backend: %v", err)
	}
	if !strings.Contains(out, "Service:  unreachable") {
		t.Errorf("unexpected status output: %s", out)
	}
}
