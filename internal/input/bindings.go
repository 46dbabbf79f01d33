// Package input provides the key-binding set containers expose through
// the layout tree. Dispatch itself lives with the host application; this
// package only models chord -> handler tables.
package input

import "strings"

// Handler reacts to a key chord. It returns true when the chord was
// consumed.
type Handler func() bool

// KeyBindings maps key chords to handlers. Chords are normalized,
// lower-case strings such as "up", "ctrl+c", or "tab".
type KeyBindings struct {
	bindings map[string]Handler
}

// NewKeyBindings creates an empty binding set.
func NewKeyBindings() *KeyBindings {
	return &KeyBindings{bindings: make(map[string]Handler)}
}

// NormalizeChord canonicalizes a chord string for lookup.
func NormalizeChord(chord string) string {
	return strings.ToLower(strings.TrimSpace(chord))
}

// Bind registers a handler for a chord, replacing any previous binding.
func (kb *KeyBindings) Bind(chord string, handler Handler) {
	kb.bindings[NormalizeChord(chord)] = handler
}

// Lookup returns the handler bound to a chord.
func (kb *KeyBindings) Lookup(chord string) (Handler, bool) {
	h, ok := kb.bindings[NormalizeChord(chord)]
	return h, ok
}

// Dispatch invokes the handler bound to the chord, if any. It returns
// false when the chord is unbound or the handler declined it.
func (kb *KeyBindings) Dispatch(chord string) bool {
	if kb == nil {
		return false
	}
	h, ok := kb.Lookup(chord)
	if !ok {
		return false
	}
	return h()
}

// Merge returns a binding set containing kb's bindings overlaid with
// other's. Other wins on conflicts. Nil receivers and arguments are
// treated as empty.
func (kb *KeyBindings) Merge(other *KeyBindings) *KeyBindings {
	merged := NewKeyBindings()
	if kb != nil {
		for chord, h := range kb.bindings {
			merged.bindings[chord] = h
		}
	}
	if other != nil {
		for chord, h := range other.bindings {
			merged.bindings[chord] = h
		}
	}
	return merged
}

// Len returns the number of bound chords.
func (kb *KeyBindings) Len() int {
	if kb == nil {
		return 0
	}
	return len(kb.bindings)
}
