package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Scalar holds a JSON value exactly as it was supplied: string, json.Number,
// bool or nil. Reference fields use it so that "3" and 3 stay distinct.
type Scalar struct {
	v any
}

func String(s string) Scalar { return Scalar{v: s} }

func Number(n json.Number) Scalar { return Scalar{v: n} }

// ScalarOf wraps a value produced by a json.Decoder with UseNumber.
// Objects and arrays are kept as-is and only matter for re-encoding.
func ScalarOf(v any) Scalar { return Scalar{v: v} }

func (s Scalar) IsNull() bool { return s.v == nil }

// Text returns the scalar as text. Strings are returned unchanged, numbers
// and booleans as their JSON literal; null and composite values report false.
func (s Scalar) Text() (string, bool) {
	switch v := s.v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// Equals reports whether the scalar is a string equal to text. Numeric
// values never equal their decimal text.
func (s Scalar) Equals(text string) bool {
	v, ok := s.v.(string)
	return ok && v == text
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v)
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	s.v = v
	return nil
}

func (s Scalar) String() string {
	b, err := json.Marshal(s.v)
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}
