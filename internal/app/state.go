package app

import "time"

// Theme names. The terminal still decides light/dark rendering details via
// adaptive colors; this preference picks the palette.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User is the single active identity. No multi-user list exists; at most
// one User is current at a time.
type User struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	LoginTime  time.Time `json:"login_time"`
	SignupTime time.Time `json:"signup_time,omitempty"`
}

// State is the owned application state container. All mutation goes
// through its methods so nothing in the program reaches for package-level
// globals.
type State struct {
	currentUser *User
	theme       string
	loggedIn    bool
}

// NewState starts logged out with the given theme.
func NewState(theme string) *State {
	if theme != ThemeLight && theme != ThemeDark {
		theme = ThemeLight
	}
	return &State{theme: theme}
}

// CurrentUser returns the active user, or nil when logged out.
func (s *State) CurrentUser() *User {
	return s.currentUser
}

// LoggedIn reports whether a user is active.
func (s *State) LoggedIn() bool {
	return s.loggedIn
}

// Theme returns the active theme name.
func (s *State) Theme() string {
	return s.theme
}

// SetTheme stores the theme preference; invalid names are ignored.
func (s *State) SetTheme(theme string) {
	if theme == ThemeLight || theme == ThemeDark {
		s.theme = theme
	}
}

// ToggleTheme flips light/dark and returns the new value.
func (s *State) ToggleTheme() string {
	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	return s.theme
}

func (s *State) setUser(u *User) {
	s.currentUser = u
	s.loggedIn = u != nil
}
