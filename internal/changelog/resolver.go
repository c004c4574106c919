package changelog

import "github.com/ariel-frischer/relkit/internal/semver"

// ResolvedRange is a concrete tag-to-tag (or tag-to-HEAD) span of history.
// From always names a cataloged tag; To is a cataloged tag or the HEAD
// marker. Computed fresh for each request, never persisted.
type ResolvedRange struct {
	From semver.Spec
	To   semver.Spec
}

// Resolve narrows a requested range against the catalog. The from argument
// may be the zero Spec, meaning "unspecified":
//
//   - to is the HEAD marker: an unspecified from falls back to the highest
//     cataloged version; a given from must exist in the catalog.
//   - to is concrete: it must exist in the catalog. An unspecified from
//     resolves to the immediate predecessor of to in ascending order. When
//     to is the first cataloged version there is no predecessor and
//     resolution fails with NotFoundError ("no version before X") rather
//     than diffing from the beginning of history.
//
// Resolution performs no I/O; it is pure given the catalog.
func (c Catalog) Resolve(to, from semver.Spec) (ResolvedRange, error) {
	if to.IsLatest() {
		return c.resolveToLatest(from)
	}
	return c.resolveToConcrete(to, from)
}

func (c Catalog) resolveToLatest(from semver.Spec) (ResolvedRange, error) {
	head := semver.MustNew(semver.Latest)

	if from.IsZero() {
		last, ok := c.Latest()
		if !ok {
			return ResolvedRange{}, &NotFoundError{Version: semver.Latest}
		}
		return ResolvedRange{From: last, To: head}, nil
	}

	if !c.Contains(from) {
		return ResolvedRange{}, &NotFoundError{Version: from.String(), Available: c.tagNames()}
	}
	return ResolvedRange{From: from, To: head}, nil
}

func (c Catalog) resolveToConcrete(to, from semver.Spec) (ResolvedRange, error) {
	i, ok := c.index(to)
	if !ok {
		return ResolvedRange{}, &NotFoundError{Version: to.String(), Available: c.tagNames()}
	}

	if from.IsZero() {
		if i == 0 {
			return ResolvedRange{}, &NotFoundError{Version: "version before " + to.Tag(), Available: c.tagNames()}
		}
		return ResolvedRange{From: c.specs[i-1], To: to}, nil
	}

	if !c.Contains(from) {
		return ResolvedRange{}, &NotFoundError{Version: from.String(), Available: c.tagNames()}
	}
	return ResolvedRange{From: from, To: to}, nil
}
