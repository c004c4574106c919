// Package semver provides the version value type used throughout relkit.
// A Spec wraps a raw version string and distinguishes three states: a parsed
// semantic version (major.minor.patch), the special "HEAD" marker meaning the
// latest unreleased state of history, and an unparsed string. This is a
// separate package with no project dependencies so it can be imported from
// any package without cycles.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Latest is the literal marker for "the current, unreleased state of
// history". Matching is exact and case-sensitive; "head" or "vHEAD" are
// ordinary unparsed strings.
const Latest = "HEAD"

// versionPattern anchors on the full string: optional "v", then three
// dot-separated non-negative integers. Pre-release and build suffixes are
// deliberately not accepted.
var versionPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)$`)

var (
	// ErrIncomparable is returned when ordering is requested between specs
	// that do not both carry a parsed version triple.
	ErrIncomparable = errors.New("versions are not comparable")

	// ErrConflictingPrefixOptions is returned when both WithPrefix and
	// WithoutPrefix are supplied to New.
	ErrConflictingPrefixOptions = errors.New("WithPrefix and WithoutPrefix are mutually exclusive")
)

// Spec is an immutable version value. The zero Spec is "unspecified" and
// reports false from IsValid, IsLatest, and IsParsed.
type Spec struct {
	raw    string
	triple [3]int
	parsed bool
}

// Option adjusts how New stores the raw string of a parsed version.
type Option func(*options)

type options struct {
	withPrefix    bool
	withoutPrefix bool
}

// WithPrefix rewrites the stored string of a parsed version to carry a
// leading "v". It has no effect on unparsed strings or the latest marker.
func WithPrefix() Option {
	return func(o *options) { o.withPrefix = true }
}

// WithoutPrefix rewrites the stored string of a parsed version to drop a
// leading "v". It has no effect on unparsed strings or the latest marker.
func WithoutPrefix() Option {
	return func(o *options) { o.withoutPrefix = true }
}

// New parses raw into a Spec. Strings matching the semantic version pattern
// get a parsed triple; the exact string "HEAD" becomes the latest marker;
// anything else is stored unparsed. Supplying both prefix options is an
// error.
func New(raw string, opts ...Option) (Spec, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.withPrefix && o.withoutPrefix {
		return Spec{}, ErrConflictingPrefixOptions
	}

	s := Spec{raw: raw}
	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return s, nil
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Spec{}, fmt.Errorf("parsing major component of %q: %w", raw, err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Spec{}, fmt.Errorf("parsing minor component of %q: %w", raw, err)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Spec{}, fmt.Errorf("parsing patch component of %q: %w", raw, err)
	}

	s.triple = [3]int{major, minor, patch}
	s.parsed = true

	// Only the stored string changes; the parsed triple is prefix-independent.
	switch {
	case o.withPrefix && !strings.HasPrefix(s.raw, "v"):
		s.raw = "v" + s.raw
	case o.withoutPrefix:
		s.raw = strings.TrimPrefix(s.raw, "v")
	}

	return s, nil
}

// MustNew is New for known-good literals; it panics on error.
// Intended for tests and package-level defaults.
func MustNew(raw string, opts ...Option) Spec {
	s, err := New(raw, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Coerce converts v into a Spec. A Spec passes through unchanged, making
// construction idempotent; strings and fmt.Stringer values are parsed.
// Any other type is rejected.
func Coerce(v any) (Spec, error) {
	switch t := v.(type) {
	case Spec:
		return t, nil
	case string:
		return New(t)
	case fmt.Stringer:
		return New(t.String())
	default:
		return Spec{}, fmt.Errorf("cannot coerce %T into a version spec", v)
	}
}

// Raw returns the stored string exactly as constructed.
func (s Spec) Raw() string { return s.raw }

// String implements fmt.Stringer and returns the stored string.
func (s Spec) String() string { return s.raw }

// IsLatest reports whether the spec is the "HEAD" marker.
func (s Spec) IsLatest() bool { return s.raw == Latest }

// IsParsed reports whether the spec carries a parsed version triple.
func (s Spec) IsParsed() bool { return s.parsed }

// IsZero reports whether the spec is the unspecified zero value.
func (s Spec) IsZero() bool { return s.raw == "" && !s.parsed }

// Triple returns the parsed (major, minor, patch) components.
// Only meaningful when IsParsed reports true.
func (s Spec) Triple() (major, minor, patch int) {
	return s.triple[0], s.triple[1], s.triple[2]
}

// Tag renders the spec as a git tag name: the latest marker unchanged,
// otherwise the stored string with a leading "v" ensured (never doubled).
func (s Spec) Tag() string {
	if s.IsLatest() || strings.HasPrefix(s.raw, "v") {
		return s.raw
	}
	return "v" + s.raw
}

// Untag renders the spec without a tag prefix: the latest marker unchanged,
// otherwise the stored string with a leading "v" stripped if present.
func (s Spec) Untag() string {
	if s.IsLatest() {
		return s.raw
	}
	return strings.TrimPrefix(s.raw, "v")
}

// Compare orders two parsed specs lexicographically by (major, minor,
// patch), returning -1, 0, or 1. It fails with ErrIncomparable if either
// side lacks a parsed triple; in particular two latest markers cannot be
// ordered.
func (s Spec) Compare(other Spec) (int, error) {
	if !s.parsed || !other.parsed {
		return 0, fmt.Errorf("comparing %q with %q: %w", s.raw, other.raw, ErrIncomparable)
	}
	for i := 0; i < 3; i++ {
		if s.triple[i] != other.triple[i] {
			if s.triple[i] < other.triple[i] {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}

// Less reports whether s orders strictly before other. Like Compare it
// fails when either side lacks a parsed triple.
func (s Spec) Less(other Spec) (bool, error) {
	c, err := s.Compare(other)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Equal reports semantic equality: both specs are the latest marker, or
// both carry elementwise-equal triples. Raw strings are never compared, so
// "v1.2.3" and "1.2.3" are equal.
func (s Spec) Equal(other Spec) bool {
	if s.IsLatest() && other.IsLatest() {
		return true
	}
	if !s.parsed || !other.parsed {
		return false
	}
	return s.triple == other.triple
}
