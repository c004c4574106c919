package changelog

import (
	"fmt"
	"sort"

	"github.com/ariel-frischer/relkit/internal/semver"
)

// Catalog is the ascending, deduplicated sequence of semantic version tags
// visible in a repository. Every element carries a parsed triple; tags that
// do not match the version pattern are excluded at construction. The catalog
// is read-only after construction and must be rebuilt per top-level
// operation since the underlying tag set can change between invocations.
type Catalog struct {
	specs []semver.Spec
}

// LoadCatalog obtains all tag names from the source and builds a catalog.
// A tag-source failure is fatal and surfaces to the caller unretried.
func LoadCatalog(source TagSource) (Catalog, error) {
	tags, err := source.ListTags()
	if err != nil {
		return Catalog{}, &CollaboratorError{Op: "listing tags", Range: "repository", Err: err}
	}
	return NewCatalog(tags)
}

// NewCatalog filters tag names to full semantic versions, stores them
// canonically without a prefix, deduplicates, and sorts ascending.
func NewCatalog(tags []string) (Catalog, error) {
	seen := make(map[[3]int]bool, len(tags))
	specs := make([]semver.Spec, 0, len(tags))

	for _, tag := range tags {
		spec, err := semver.New(tag, semver.WithoutPrefix())
		if err != nil {
			return Catalog{}, fmt.Errorf("cataloging tag %q: %w", tag, err)
		}
		if !spec.IsParsed() {
			continue
		}

		major, minor, patch := spec.Triple()
		key := [3]int{major, minor, patch}
		if seen[key] {
			continue
		}
		seen[key] = true
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		// Every element is parsed, so Compare cannot fail here.
		c, _ := specs[i].Compare(specs[j])
		return c < 0
	})

	return Catalog{specs: specs}, nil
}

// Versions returns the catalog contents in ascending order. The returned
// slice is a copy; mutating it does not affect the catalog.
func (c Catalog) Versions() []semver.Spec {
	out := make([]semver.Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Len returns the number of cataloged versions.
func (c Catalog) Len() int { return len(c.specs) }

// IsEmpty reports whether the catalog holds no versions.
func (c Catalog) IsEmpty() bool { return len(c.specs) == 0 }

// Latest returns the highest cataloged version. The second return is false
// when the catalog is empty.
func (c Catalog) Latest() (semver.Spec, bool) {
	if len(c.specs) == 0 {
		return semver.Spec{}, false
	}
	return c.specs[len(c.specs)-1], true
}

// Contains reports whether the catalog holds a version equal to spec.
func (c Catalog) Contains(spec semver.Spec) bool {
	_, ok := c.index(spec)
	return ok
}

// index returns the position of spec within the catalog.
func (c Catalog) index(spec semver.Spec) (int, bool) {
	for i, s := range c.specs {
		if s.Equal(spec) {
			return i, true
		}
	}
	return 0, false
}

// tagNames renders the catalog as prefixed tag names, for error context.
func (c Catalog) tagNames() []string {
	names := make([]string, len(c.specs))
	for i, s := range c.specs {
		names[i] = s.Tag()
	}
	return names
}

// Between returns the cataloged versions v with from <= v <= to, ascending.
func (c Catalog) Between(from, to semver.Spec) ([]semver.Spec, error) {
	var out []semver.Spec
	for _, s := range c.specs {
		belowFrom, err := s.Less(from)
		if err != nil {
			return nil, err
		}
		if belowFrom {
			continue
		}
		aboveTo, err := to.Less(s)
		if err != nil {
			return nil, err
		}
		if aboveTo {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// From returns the cataloged versions v with from <= v, ascending.
func (c Catalog) From(from semver.Spec) ([]semver.Spec, error) {
	var out []semver.Spec
	for _, s := range c.specs {
		below, err := s.Less(from)
		if err != nil {
			return nil, err
		}
		if !below {
			out = append(out, s)
		}
	}
	return out, nil
}
