package resource

import "errors"

// Fragment wraps the raw template text and its origin. The raw bytes are the
// untouched response/file payload; interpolation happens downstream.
type Fragment struct {
	source Source
	raw    []byte
}

// NewFragment constructs a Fragment wrapper while validating the inputs. An
// empty payload is allowed: a template resource may legitimately be blank.
func NewFragment(src Source, raw []byte) (Fragment, error) {
	if src == nil {
		return Fragment{}, errors.New("resource: source is required")
	}

	clone := append([]byte(nil), raw...)
	return Fragment{source: src, raw: clone}, nil
}

// MustNewFragment panics if the fragment cannot be created. Useful for tests.
func MustNewFragment(src Source, raw []byte) Fragment {
	frag, err := NewFragment(src, raw)
	if err != nil {
		panic(err)
	}
	return frag
}

// Source returns the origin metadata for the fragment.
func (f Fragment) Source() Source {
	return f.source
}

// Raw returns a defensive copy of the payload.
func (f Fragment) Raw() []byte {
	return append([]byte(nil), f.raw...)
}

// Text returns the payload as a template string.
func (f Fragment) Text() string {
	return string(f.raw)
}

// Location returns the string identifier for the origin.
func (f Fragment) Location() string {
	if f.source == nil {
		return ""
	}
	return f.source.Location()
}
