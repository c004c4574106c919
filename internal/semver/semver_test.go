// Package semver tests version parsing, prefix rendering, and ordering.
// Related: internal/semver/semver.go
// Tags: semver, versions, ordering, tags

package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Parsing(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw        string
		wantParsed bool
		wantLatest bool
		wantTriple [3]int
	}{
		"bare version":          {raw: "1.2.3", wantParsed: true, wantTriple: [3]int{1, 2, 3}},
		"prefixed version":      {raw: "v1.2.3", wantParsed: true, wantTriple: [3]int{1, 2, 3}},
		"multi-digit components": {raw: "v10.20.30", wantParsed: true, wantTriple: [3]int{10, 20, 30}},
		"zeros":                 {raw: "0.0.0", wantParsed: true, wantTriple: [3]int{0, 0, 0}},
		"latest marker":         {raw: "HEAD", wantLatest: true},
		"lowercase head":        {raw: "head"},
		"two components":        {raw: "2.0"},
		"four components":       {raw: "1.2.3.4"},
		"pre-release suffix":    {raw: "1.2.3-rc1"},
		"build suffix":          {raw: "1.2.3+build5"},
		"embedded version":      {raw: "release-1.2.3"},
		"trailing garbage":      {raw: "1.2.3 "},
		"double prefix":         {raw: "vv1.2.3"},
		"arbitrary string":      {raw: "bogus"},
		"empty string":          {raw: ""},
	}

	for name, tc := range tests {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := New(tc.raw)
			require.NoError(t, err)

			assert.Equal(t, tc.wantParsed, s.IsParsed())
			assert.Equal(t, tc.wantLatest, s.IsLatest())
			assert.Equal(t, tc.raw, s.Raw())

			if tc.wantParsed {
				major, minor, patch := s.Triple()
				assert.Equal(t, tc.wantTriple, [3]int{major, minor, patch})
			}
		})
	}
}

func TestNew_PrefixOptions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw     string
		opts    []Option
		wantRaw string
	}{
		"add missing prefix":      {raw: "1.2.3", opts: []Option{WithPrefix()}, wantRaw: "v1.2.3"},
		"keep existing prefix":    {raw: "v1.2.3", opts: []Option{WithPrefix()}, wantRaw: "v1.2.3"},
		"strip prefix":            {raw: "v1.2.3", opts: []Option{WithoutPrefix()}, wantRaw: "1.2.3"},
		"strip absent prefix":     {raw: "1.2.3", opts: []Option{WithoutPrefix()}, wantRaw: "1.2.3"},
		"unparsed string untouched": {raw: "bogus", opts: []Option{WithPrefix()}, wantRaw: "bogus"},
		"latest marker untouched": {raw: "HEAD", opts: []Option{WithoutPrefix()}, wantRaw: "HEAD"},
	}

	for name, tc := range tests {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := New(tc.raw, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRaw, s.Raw())
		})
	}
}

func TestNew_ConflictingPrefixOptions(t *testing.T) {
	t.Parallel()

	_, err := New("1.2.3", WithPrefix(), WithoutPrefix())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictingPrefixOptions)
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	original := MustNew("v1.2.3")

	// A Spec passes through unchanged (idempotent construction).
	coerced, err := Coerce(original)
	require.NoError(t, err)
	assert.Equal(t, original, coerced)

	fromString, err := Coerce("v1.2.3")
	require.NoError(t, err)
	assert.True(t, original.Equal(fromString))

	_, err = Coerce(42)
	require.Error(t, err)
}

func TestTag_Untag(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw       string
		wantTag   string
		wantUntag string
	}{
		"bare version":     {raw: "1.2.3", wantTag: "v1.2.3", wantUntag: "1.2.3"},
		"prefixed version": {raw: "v1.2.3", wantTag: "v1.2.3", wantUntag: "1.2.3"},
		"latest marker":    {raw: "HEAD", wantTag: "HEAD", wantUntag: "HEAD"},
	}

	for name, tc := range tests {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := MustNew(tc.raw)
			assert.Equal(t, tc.wantTag, s.Tag())
			assert.Equal(t, tc.wantUntag, s.Untag())
		})
	}
}

func TestTag_RoundTrip(t *testing.T) {
	t.Parallel()

	v := MustNew("v2.7.1")

	stripped, err := New(v.Tag(), WithoutPrefix())
	require.NoError(t, err)
	assert.Equal(t, v.Untag(), stripped.Untag())

	prefixed, err := New(v.Untag(), WithPrefix())
	require.NoError(t, err)
	assert.Equal(t, v.Tag(), prefixed.Tag())
}

func TestCompare_Ordering(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		a    string
		b    string
		want int
	}{
		"equal":                     {a: "1.2.3", b: "v1.2.3", want: 0},
		"patch below":               {a: "1.2.3", b: "1.2.4", want: -1},
		"minor beats patch":         {a: "1.2.9", b: "1.3.0", want: -1},
		"major beats minor":         {a: "1.99.99", b: "2.0.0", want: -1},
		"numeric not lexicographic": {a: "1.2.3", b: "1.10.0", want: -1},
		"greater":                   {a: "2.0.0", b: "1.10.0", want: 1},
	}

	for name, tc := range tests {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := MustNew(tc.a).Compare(MustNew(tc.b))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompare_Transitivity(t *testing.T) {
	t.Parallel()

	a := MustNew("1.2.3")
	b := MustNew("1.10.0")
	c := MustNew("2.0.0")

	ab, err := a.Compare(b)
	require.NoError(t, err)
	bc, err := b.Compare(c)
	require.NoError(t, err)
	ac, err := a.Compare(c)
	require.NoError(t, err)

	assert.Equal(t, -1, ab)
	assert.Equal(t, -1, bc)
	assert.Equal(t, -1, ac)

	// Antisymmetry.
	ba, err := b.Compare(a)
	require.NoError(t, err)
	assert.Equal(t, 1, ba)
}

func TestCompare_Incomparable(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		a string
		b string
	}{
		"unparsed left":      {a: "bogus", b: "1.2.3"},
		"unparsed right":     {a: "1.2.3", b: "bogus"},
		"latest vs concrete": {a: "HEAD", b: "1.2.3"},
		"two latest markers": {a: "HEAD", b: "HEAD"},
	}

	for name, tc := range tests {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := MustNew(tc.a).Compare(MustNew(tc.b))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncomparable)
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		a    string
		b    string
		want bool
	}{
		"same triple different prefix": {a: "v1.2.3", b: "1.2.3", want: true},
		"different triples":            {a: "1.2.3", b: "1.2.4", want: false},
		"both latest":                  {a: "HEAD", b: "HEAD", want: true},
		"latest vs concrete":           {a: "HEAD", b: "1.2.3", want: false},
		"unparsed never equal":         {a: "bogus", b: "bogus", want: false},
	}

	for name, tc := range tests {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, MustNew(tc.a).Equal(MustNew(tc.b)))
		})
	}
}

func TestLatestIdentity(t *testing.T) {
	t.Parallel()

	head := MustNew("HEAD")
	assert.True(t, head.IsLatest())
	assert.False(t, head.IsParsed())
	assert.Equal(t, "HEAD", head.Tag())
	assert.Equal(t, "HEAD", head.Untag())
}
