package document

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
)

// Document is a JSON object whose keys keep insertion order.
type Document struct {
	keys []string
	vals map[string]any
}

// New returns an empty Document.
func New() *Document {
	return &Document{vals: map[string]any{}}
}

// Parse decodes a JSON object into a Document. The input may contain
// // line comments, /* block comments */, and trailing commas; they
// are stripped before decoding.
func Parse(data []byte) (*Document, error) {
	d := New()

	err := json.Unmarshal(jsonc.ToJSON(data), d)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (d *Document) Keys() []string {
	return append([]string{}, d.keys...)
}

// Has returns true if the key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// String returns the value for key if it is a string, or "" otherwise.
func (d *Document) String(key string) string {
	s, _ := d.vals[key].(string)
	return s
}

// List returns the value for key if it is a JSON array, or nil otherwise.
func (d *Document) List(key string) []any {
	l, _ := d.vals[key].([]any)
	return l
}

// Object returns the value for key if it is a nested object, or nil otherwise.
func (d *Document) Object(key string) *Document {
	o, _ := d.vals[key].(*Document)
	return o
}

// Set stores a value under key. A new key is appended; an existing key
// keeps its position. Set returns the document so skeletons can be
// built fluently.
func (d *Document) Set(key string, value any) *Document {
	if d.vals == nil {
		d.vals = map[string]any{}
	}

	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}

	d.vals[key] = value

	return d
}

// Delete removes a key if present.
func (d *Document) Delete(key string) {
	if _, ok := d.vals[key]; !ok {
		return
	}

	delete(d.vals, key)

	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Merge copies every key of other into d, in other's order. Existing
// keys keep their position and take other's value; new keys are
// appended. This matches dict.update semantics.
func (d *Document) Merge(other *Document) {
	if other == nil {
		return
	}

	for _, k := range other.keys {
		d.Set(k, other.vals[k])
	}
}

// MarshalJSON writes the object with keys in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(d.vals[k])
		if err != nil {
			return nil, fmt.Errorf("marshaling key %q: %w", k, err)
		}

		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving key order. Numbers
// are kept as json.Number so they re-encode byte-identically.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	return d.decodeMembers(dec)
}

func (d *Document) decodeMembers(dec *json.Decoder) error {
	d.keys = nil
	d.vals = map[string]any{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return fmt.Errorf("decoding key %q: %w", key, err)
		}

		d.Set(key, value)
	}

	// consume the closing '}'
	_, err := dec.Token()

	return err
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			nested := New()
			if err := nested.decodeMembers(dec); err != nil {
				return nil, err
			}

			return nested, nil

		case '[':
			var items []any
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}

				items = append(items, item)
			}

			// consume the closing ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}

			if items == nil {
				items = []any{}
			}

			return items, nil

		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}

	default:
		// string, json.Number, bool, or nil
		return tok, nil
	}
}
