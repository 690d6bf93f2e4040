package markdown

import (
	"iter"
	"strings"
)

// emphasisMarkers are stripped by StripEmphasis.
var emphasisMarkers = strings.NewReplacer("**", "", "__", "")

// StripEmphasis removes bold markup ("**" and "__") from s.
func StripEmphasis(s string) string {
	return emphasisMarkers.Replace(s)
}

// KeyValues is an insertion-ordered string map.
// Setting an existing key replaces its value and keeps its position.
// The zero value is ready to use.
type KeyValues struct {
	keys   []string
	values map[string]string
}

// NewKeyValues returns an empty KeyValues.
func NewKeyValues() *KeyValues {
	return &KeyValues{}
}

// Set stores value under key.
func (kv *KeyValues) Set(key, value string) {
	if kv.values == nil {
		kv.values = make(map[string]string)
	}
	if _, exists := kv.values[key]; !exists {
		kv.keys = append(kv.keys, key)
	}
	kv.values[key] = value
}

// Get returns the value for key.
func (kv *KeyValues) Get(key string) (string, bool) {
	if kv == nil {
		return "", false
	}
	v, ok := kv.values[key]
	return v, ok
}

// Len returns the number of keys.
func (kv *KeyValues) Len() int {
	if kv == nil {
		return 0
	}
	return len(kv.keys)
}

// Keys returns the keys in insertion order.
func (kv *KeyValues) Keys() []string {
	if kv == nil {
		return nil
	}
	return append([]string(nil), kv.keys...)
}

// All iterates over key/value pairs in insertion order.
func (kv *KeyValues) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if kv == nil {
			return
		}
		for _, k := range kv.keys {
			if !yield(k, kv.values[k]) {
				return
			}
		}
	}
}

// KeyValueTable interprets a two-column table as a mapping.
// The first cell (emphasis stripped) is the key, the second the value.
// The header row is skipped when the table has one. Rows with fewer than two
// cells or an empty key are ignored. Duplicate keys: last write wins.
func KeyValueTable(t Table) *KeyValues {
	kv := NewKeyValues()
	for _, row := range t.Body() {
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(StripEmphasis(row[0]))
		if key == "" {
			continue
		}
		kv.Set(key, strings.TrimSpace(StripEmphasis(row[1])))
	}
	return kv
}
