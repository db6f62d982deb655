package app

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func newTestAuth(t *testing.T) (*Auth, *State, *PrefStore) {
	t.Helper()
	store := NewPrefStore(t.TempDir())
	state := NewState(ThemeLight)
	return NewAuth(state, store, zap.NewNop()), state, store
}

func TestLoginDerivesNameFromEmail(t *testing.T) {
	auth, state, _ := newTestAuth(t)

	u, err := auth.Login("alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Name != "alice" {
		t.Fatalf("Name = %q, want alice", u.Name)
	}
	if !state.LoggedIn() {
		t.Fatal("state not logged in")
	}
	if u.LoginTime.IsZero() {
		t.Fatal("LoginTime not set")
	}
}

func TestLoginValidation(t *testing.T) {
	auth, state, _ := newTestAuth(t)

	if _, err := auth.Login("", "pw"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("err = %v, want ErrMissingCredentials", err)
	}
	if _, err := auth.Login("a@b.c", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("err = %v, want ErrMissingCredentials", err)
	}
	if state.LoggedIn() {
		t.Fatal("failed login left state logged in")
	}
}

func TestSignup(t *testing.T) {
	auth, state, _ := newTestAuth(t)

	u, err := auth.Signup("Bob", "bob@example.com", "pw", "pw")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if u.Name != "Bob" || u.SignupTime.IsZero() {
		t.Fatalf("user = %+v", u)
	}
	if !state.LoggedIn() {
		t.Fatal("signup did not log in")
	}
}

func TestSignupValidation(t *testing.T) {
	auth, _, _ := newTestAuth(t)

	if _, err := auth.Signup("Bob", "bob@x.y", "pw", "other"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("err = %v, want ErrPasswordMismatch", err)
	}
	if _, err := auth.Signup(" ", "bob@x.y", "pw", "pw"); !errors.Is(err, ErrMissingSignupField) {
		t.Fatalf("err = %v, want ErrMissingSignupField", err)
	}
}

func TestSessionRestore(t *testing.T) {
	store := NewPrefStore(t.TempDir())

	auth := NewAuth(NewState(ThemeLight), store, zap.NewNop())
	if _, err := auth.Login("carol@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	state := NewState(ThemeLight)
	restored := NewAuth(state, store, zap.NewNop())
	if err := restored.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if u := state.CurrentUser(); u == nil || u.Email != "carol@example.com" {
		t.Fatalf("restored user = %+v", u)
	}
}

func TestLogout(t *testing.T) {
	auth, state, store := newTestAuth(t)

	if _, err := auth.Login("dave@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := auth.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if state.LoggedIn() {
		t.Fatal("still logged in after Logout")
	}
	var u User
	if ok, _ := store.Load(KeyCurrentUser, &u); ok {
		t.Fatal("user record survived Logout")
	}

	// Logging out twice is harmless.
	if err := auth.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}
