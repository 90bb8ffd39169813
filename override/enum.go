package override

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Enum is a string-valued field with a closed set of values.
type Enum struct {
	Field  string
	Values []string
}

func (e Enum) Contains(v string) bool {
	for _, x := range e.Values {
		if x == v {
			return true
		}
	}
	return false
}

// Superset is an enum extended with new values. The extended value lives in
// its own field and the base field carries a fallback, so a reader that only
// knows the base enum still sees a value it understands.
type Superset struct {
	Enum
	Base Enum
}

// Extend declares a superset of e stored in field.
func (e Enum) Extend(field string, values ...string) Superset {
	all := append(append([]string(nil), e.Values...), values...)
	return Superset{Enum: Enum{Field: field, Values: all}, Base: e}
}

var AlphaMode = Enum{Field: "alphaMode", Values: []string{"OPAQUE", "MASK", "BLEND"}}

// SetEnum writes value into the superset field and fallback into the base field.
func (s *Shadow) SetEnum(e Superset, value, fallback string) error {
	if !e.Contains(value) {
		return errors.Errorf("%q is not a value of %s", value, e.Field)
	}
	if !e.Base.Contains(fallback) {
		return errors.Errorf("fallback %q is not a value of %s", fallback, e.Base.Field)
	}
	if !s.kind.Knows(e.Field) || !s.kind.Knows(e.Base.Field) {
		return errors.Errorf("%s does not carry %s and %s", s.kind.Name(), e.Base.Field, e.Field)
	}
	s.Set(e.Base.Field, fallback)
	s.Set(e.Field, value)
	return nil
}

// Enum reads e from the shadow. Values outside e are reported as missing.
func (s *Shadow) Enum(e Enum) (string, bool) {
	var v string
	if err := s.Get(e.Field, &v); err != nil || !e.Contains(v) {
		return "", false
	}
	return v, true
}

// ReadEnum reads the most specific value a superset-aware reader sees in a
// serialized object: the superset field when present, else the base field.
func ReadEnum(raw []byte, e Superset) (string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}
	for _, candidate := range []Enum{e.Enum, e.Base} {
		var v string
		if r, ok := obj[candidate.Field]; ok && json.Unmarshal(r, &v) == nil && candidate.Contains(v) {
			return v, true
		}
	}
	return "", false
}
