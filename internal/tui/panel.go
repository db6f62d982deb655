package tui

import "futuristic-aid/internal/feature"

// Panel is the modal controller: Closed, or Open on exactly one feature.
// Opening while open replaces the content; panels never stack.
//
// Every transition into Open bumps a generation token. Simulator
// completions carry the generation they started under, so a result landing
// after the panel moved on is recognizably stale and gets dropped.
type Panel struct {
	open bool
	key  feature.Key
	gen  int
}

// Open transitions to Open(key). The caller runs the feature's init hook
// on this transition and only then, which keeps init at exactly once per
// open; a close/reopen re-arms it.
func (p *Panel) Open(key feature.Key) {
	p.open = true
	p.key = key
	p.gen++
}

// Close forces Closed. Closing an already closed panel is a no-op but
// still invalidates outstanding generations.
func (p *Panel) Close() {
	p.open = false
	p.key = ""
	p.gen++
}

// IsOpen reports whether any panel is showing.
func (p *Panel) IsOpen() bool {
	return p.open
}

// Key returns the open feature, or "" when closed.
func (p *Panel) Key() feature.Key {
	if !p.open {
		return ""
	}
	return p.key
}

// Generation is the token in-flight work must carry.
func (p *Panel) Generation() int {
	return p.gen
}

// Current reports whether a completion stamped with gen may still act on
// the named panel.
func (p *Panel) Current(key feature.Key, gen int) bool {
	return p.open && p.key == key && p.gen == gen
}
