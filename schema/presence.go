package schema

import "strings"

// Presence is the bit flag collected by WithMeta APIs.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Default value was applied.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the parsed value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

func pointerKey(key string) string {
	if key == "" || key[0] == '/' {
		return key
	}
	return "/" + key
}

// Seen reports whether key (a field name or pointer) appeared in the input.
func (pm PresenceMap) Seen(key string) bool { return pm[pointerKey(key)]&PresenceSeen != 0 }

// WasNull reports whether key was present with an explicit null.
func (pm PresenceMap) WasNull(key string) bool { return pm[pointerKey(key)]&PresenceWasNull != 0 }

// DefaultApplied reports whether the schema filled key with its default.
func (pm PresenceMap) DefaultApplied(key string) bool {
	return pm[pointerKey(key)]&PresenceDefaultApplied != 0
}

// Sub returns the entries under prefix, re-rooted so that prefix becomes "/".
func (pm PresenceMap) Sub(prefix string) PresenceMap {
	if prefix == "" || prefix == "/" {
		return pm
	}
	out := PresenceMap{}
	for k, v := range pm {
		switch {
		case k == prefix:
			out["/"] |= v
		case strings.HasPrefix(k, prefix+"/"):
			out[k[len(prefix):]] |= v
		}
	}
	return out
}

// MergeUnder ORs every entry of child into pm, with keys rebased under base.
func (pm PresenceMap) MergeUnder(base string, child PresenceMap) {
	for k, v := range child {
		pm[JoinPointer(base, k)] |= v
	}
}

// Meta is embedded in bound structs to expose the presence of wire keys.
// dsl.Bind fills it after a successful parse.
type Meta struct {
	presence PresenceMap
}

// PresenceSetter is implemented by *Meta and by any struct embedding Meta.
type PresenceSetter interface {
	SetPresence(pm PresenceMap)
}

// SetPresence replaces the recorded presence.
func (m *Meta) SetPresence(pm PresenceMap) { m.presence = pm }

// Presence returns the recorded presence map, rooted at the owning struct.
func (m Meta) Presence() PresenceMap { return m.presence }

// Seen reports whether the wire key was present in the input.
func (m Meta) Seen(key string) bool { return m.presence.Seen(key) }

// WasNull reports whether the wire key was present with an explicit null.
func (m Meta) WasNull(key string) bool { return m.presence.WasNull(key) }

// Defaulted reports whether the wire key was absent and filled by a default.
func (m Meta) Defaulted(key string) bool { return m.presence.DefaultApplied(key) }
