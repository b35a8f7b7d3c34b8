/*
Package manifest defines the file format that describes a Factorio mod.
The "info.json" manifest is a JSON object with a handful of well known keys
(name, version, title, author, factorio_version, dependencies).

Manifests are kept as an ordered list of entries, so reading and writing one
back never reorders keys or touches values that were not changed.
*/
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/buger/jsonparser"
)

// Keys with a known meaning
const (
	KeyName            = "name"
	KeyVersion         = "version"
	KeyTitle           = "title"
	KeyAuthor          = "author"
	KeyFactorioVersion = "factorio_version"
	KeyDependencies    = "dependencies"
)

var (
	// ErrInvalidJSON is returned when the manifest is not valid JSON
	ErrInvalidJSON = errors.New("manifest is not valid JSON")
	// ErrNotObject is returned when the manifest is valid JSON but not an object
	ErrNotObject = errors.New("manifest is not a JSON object")
)

// Value is a single JSON value exactly as it appears in the manifest.
type Value struct {
	Type jsonparser.ValueType
	// raw is the JSON encoding of the value. Strings include their quotes
	raw []byte
}

// StringValue returns a JSON string value
func StringValue(s string) Value {
	return Value{Type: jsonparser.String, raw: encode(s)}
}

// StringsValue returns a JSON array of strings
func StringsValue(s []string) Value {
	if s == nil {
		s = []string{}
	}
	return Value{Type: jsonparser.Array, raw: encode(s)}
}

// AsString returns the decoded string if v is a JSON string
func (v Value) AsString() (string, bool) {
	if v.Type != jsonparser.String || len(v.raw) < 2 {
		return "", false
	}
	s, err := jsonparser.ParseString(v.raw[1 : len(v.raw)-1])
	if err != nil {
		return "", false
	}
	return s, true
}

// Raw returns the JSON encoding of v
func (v Value) Raw() []byte {
	return v.raw
}

type entry struct {
	key   string
	value Value
}

// Manifest is an info.json document with its key order preserved
type Manifest struct {
	entries []entry
}

// New returns an empty manifest
func New() *Manifest {
	return &Manifest{}
}

// Parse reads a manifest from JSON. It fails with ErrInvalidJSON (also for invalid UTF-8) or ErrNotObject
func Parse(data []byte) (*Manifest, error) {
	// jsonparser is lenient, so check the whole document first.
	// Invalid UTF-8 would be replaced on encoding and change the file on every write
	if !json.Valid(data) || !utf8.Valid(data) {
		return nil, ErrInvalidJSON
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}

	m := New()
	err := jsonparser.ObjectEach(trimmed, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		// keys arrive unescaped, values do not
		name := string(key)

		var raw []byte
		if dataType == jsonparser.String {
			// jsonparser hands out strings without their quotes
			raw = make([]byte, 0, len(value)+2)
			raw = append(raw, '"')
			raw = append(raw, value...)
			raw = append(raw, '"')
		} else {
			raw = append([]byte(nil), value...)
		}

		m.entries = append(m.entries, entry{key: name, value: Value{Type: dataType, raw: raw}})
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}

	return m, nil
}

// Len returns the number of entries
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Keys returns all keys in order
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Get returns the value of the first entry named key
func (m *Manifest) Get(key string) (Value, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return Value{}, false
}

// GetString returns the value of key if it exists and is a string
func (m *Manifest) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Set replaces the value of key in place or appends a new entry
func (m *Manifest) Set(key string, v Value) {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i].value = v
			return
		}
	}
	m.entries = append(m.entries, entry{key: key, value: v})
}

// SetString is Set with a string value
func (m *Manifest) SetString(key string, s string) {
	m.Set(key, StringValue(s))
}

// MarshalJSON returns the compact JSON encoding with keys in order
func (m *Manifest) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encode(e.key))
		buf.WriteByte(':')
		buf.Write(e.value.raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Format returns the manifest as indented JSON, ready to be written to disk.
// Formatting a parsed manifest again yields the same bytes.
func (m *Manifest) Format() ([]byte, error) {
	compact, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := json.Indent(buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (m *Manifest) String() string {
	b, err := m.Format()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

// encode marshals strings and string slices without escaping HTML characters
func encode(v interface{}) []byte {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// only ever called with strings or string slices, which always encode
	_ = enc.Encode(v)
	return bytes.TrimRight(buf.Bytes(), "\n")
}
