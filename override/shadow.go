// Package override simulates schema changes the canonical glTF types cannot
// express. A Shadow copies the serialized fields of a canonical object, then
// adds or replaces fields on top of it. The canonical object is never touched.
package override

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/stevk/glTF-Asset-Generator/logger"
)

type field struct {
	key string
	// json.RawMessage for copied fields, *Shadow for wrapped objects,
	// []interface{} for arrays with wrapped elements, anything else for
	// values set by an override.
	value interface{}
}

// Shadow is a JSON object of a given Kind with ordered fields.
type Shadow struct {
	kind    *Kind
	fields  []field
	skipped []string
}

// New copies src into a shadow of kind. src is anything that marshals to a
// JSON object, typically a *gltf.Document or one of its children.
func New(kind *Kind, src interface{}) (*Shadow, error) {
	raw, err := json.Marshal(src)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", kind.Name())
	}
	return FromRaw(kind, raw)
}

// FromRaw copies the fields of a serialized JSON object. Fields kind does
// not know are left out and reported by Skipped.
func FromRaw(kind *Kind, raw []byte) (*Shadow, error) {
	s := &Shadow{kind: kind}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", kind.Name())
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.Errorf("decode %s: not a JSON object", kind.Name())
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", kind.Name())
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Wrapf(err, "decode %s.%s", kind.Name(), key)
		}
		if !kind.Knows(key) {
			s.skip(key)
			continue
		}
		s.fields = append(s.fields, field{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "decode %s", kind.Name())
	}
	return s, nil
}

func (s *Shadow) skip(key string) {
	logger.Log.Debug("override: field skipped", zap.String("kind", s.kind.Name()), zap.String("field", key))
	s.skipped = append(s.skipped, key)
}

func (s *Shadow) Kind() *Kind {
	return s.kind
}

// Skipped lists the fields dropped because the kind does not know them, in
// the order they were met.
func (s *Shadow) Skipped() []string {
	return append([]string(nil), s.skipped...)
}

func (s *Shadow) find(key string) int {
	for i, f := range s.fields {
		if f.key == key {
			return i
		}
	}
	return -1
}

func (s *Shadow) Has(key string) bool {
	return s.find(key) >= 0
}

func (s *Shadow) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.key
	}
	return keys
}

// Set adds or replaces a field, keeping the position of a replaced field.
// A field the kind does not know is skipped and Set returns false.
func (s *Shadow) Set(key string, value interface{}) bool {
	if !s.kind.Knows(key) {
		s.skip(key)
		return false
	}
	if i := s.find(key); i >= 0 {
		s.fields[i].value = value
	} else {
		s.fields = append(s.fields, field{key: key, value: value})
	}
	return true
}

// Get decodes a field into v.
func (s *Shadow) Get(key string, v interface{}) error {
	i := s.find(key)
	if i < 0 {
		return errors.Errorf("%s has no field %q", s.kind.Name(), key)
	}
	raw, err := json.Marshal(s.fields[i].value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Wrap replaces the object held in key by a shadow of kind and returns it so
// it can be extended in turn. It returns false, leaving s unchanged, when the
// field is missing or is not an object.
func (s *Shadow) Wrap(key string, kind *Kind) (*Shadow, bool) {
	i := s.find(key)
	if i < 0 {
		s.skip(key)
		return nil, false
	}
	child, ok := wrapValue(s.fields[i].value, kind)
	if !ok {
		s.skip(key)
		return nil, false
	}
	s.fields[i].value = child
	return child, true
}

// WrapElement is Wrap for the index-th object of the array held in key.
func (s *Shadow) WrapElement(key string, index int, kind *Kind) (*Shadow, bool) {
	i := s.find(key)
	if i < 0 {
		s.skip(key)
		return nil, false
	}
	elems, ok := arrayValue(s.fields[i].value)
	if !ok || index < 0 || index >= len(elems) {
		s.skip(key)
		return nil, false
	}
	child, ok := wrapValue(elems[index], kind)
	if !ok {
		s.skip(key)
		return nil, false
	}
	elems[index] = child
	s.fields[i].value = elems
	return child, true
}

func wrapValue(v interface{}, kind *Kind) (*Shadow, bool) {
	switch v := v.(type) {
	case *Shadow:
		if v.kind == kind {
			return v, true
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		return wrapValue(json.RawMessage(raw), kind)
	case json.RawMessage:
		child, err := FromRaw(kind, v)
		if err != nil {
			return nil, false
		}
		return child, true
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return wrapValue(json.RawMessage(raw), kind)
}

func arrayValue(v interface{}) ([]interface{}, bool) {
	if elems, ok := v.([]interface{}); ok {
		return elems, true
	}
	raw, ok := v.(json.RawMessage)
	if !ok {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		raw = b
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	elems := make([]interface{}, len(items))
	for i, item := range items {
		elems[i] = item
	}
	return elems, true
}

func (s *Shadow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s.%s", s.kind.Name(), f.key)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
