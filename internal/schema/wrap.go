package schema

import "encoding/json"

// Recognized holds an enum value decoded from upstream data that may
// post-date the compiled schema. The raw string is always preserved so an
// unknown value survives a round trip unchanged.
type Recognized[T ~string] struct {
	value T
	raw   string
	known bool
}

// Recognize classifies a raw upstream string against a parse function.
func Recognize[T ~string](raw string, parse func(string) (T, bool)) Recognized[T] {
	v, ok := parse(raw)
	return Recognized[T]{value: v, raw: raw, known: ok}
}

// Known reports whether the raw value is part of the compiled schema.
func (r Recognized[T]) Known() bool { return r.known }

// Value returns the recognized value. Meaningful only when Known is true.
func (r Recognized[T]) Value() T { return r.value }

// Raw returns the upstream string as received.
func (r Recognized[T]) Raw() string { return r.raw }

func (r Recognized[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.raw)
}

// Versioned wraps a field the upstream source introduced after some data
// was captured. It distinguishes "not yet introduced at this document's
// schema version" from "introduced and present". Callers resolve the
// not-yet-introduced state with an explicit default via Or; absence is
// never an error.
type Versioned[T any] struct {
	value   T
	present bool
}

// VersionedOf wraps a present value.
func VersionedOf[T any](v T) Versioned[T] {
	return Versioned[T]{value: v, present: true}
}

// Present reports whether the field existed on the source document.
func (v Versioned[T]) Present() bool { return v.present }

// Or returns the value when present, otherwise the caller's default.
func (v Versioned[T]) Or(def T) T {
	if v.present {
		return v.value
	}
	return def
}

func (v Versioned[T]) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON marks the field present. Fields absent from the document
// never reach UnmarshalJSON and keep the zero (not-present) state.
func (v *Versioned[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Versioned[T]{}
		return nil
	}
	var inner T
	if err := json.Unmarshal(b, &inner); err != nil {
		return err
	}
	*v = Versioned[T]{value: inner, present: true}
	return nil
}
