package app

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Validation errors surfaced by the auth shim. There is no real credential
// verification anywhere; any non-empty email/password pair logs in.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingSignupField = errors.New("name, email and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Auth toggles the logged-in state using locally stored fake user records.
type Auth struct {
	state  *State
	store  *PrefStore
	logger *zap.Logger
	now    func() time.Time
}

func NewAuth(state *State, store *PrefStore, logger *zap.Logger) *Auth {
	return &Auth{state: state, store: store, logger: logger, now: time.Now}
}

// Restore loads a persisted current-user record, if any.
func (a *Auth) Restore() error {
	var u User
	ok, err := a.store.Load(KeyCurrentUser, &u)
	if err != nil {
		return err
	}
	if ok {
		a.state.setUser(&u)
		a.logger.Info("session restored", zap.String("email", u.Email))
	}
	return nil
}

// Login accepts any non-empty credentials and derives the display name
// from the email local part.
func (a *Auth) Login(email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	u := &User{Name: name, Email: email, LoginTime: a.now()}
	if err := a.store.Set(KeyCurrentUser, u); err != nil {
		return nil, err
	}
	a.state.setUser(u)
	a.logger.Info("login", zap.String("email", email))
	return u, nil
}

// Signup validates the confirmation field, then behaves like Login with an
// explicit name.
func (a *Auth) Signup(name, email, password, confirm string) (*User, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingSignupField
	}
	now := a.now()
	u := &User{Name: name, Email: email, LoginTime: now, SignupTime: now}
	if err := a.store.Set(KeyCurrentUser, u); err != nil {
		return nil, err
	}
	a.state.setUser(u)
	a.logger.Info("signup", zap.String("email", email))
	return u, nil
}

// Logout drops the current user record; logging out twice is harmless.
func (a *Auth) Logout() error {
	if err := a.store.Remove(KeyCurrentUser); err != nil {
		return err
	}
	a.state.setUser(nil)
	a.logger.Info("logout")
	return nil
}
