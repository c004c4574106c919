// Package changelog implements the version-history core of relkit.
//
// This package implements:
//   - Catalog construction from a repository's tag history
//   - Range resolution between tagged versions (and the HEAD marker)
//   - Changelog entry generation over consecutive version pairs, driven by
//     an external text-generation service
//   - Idempotent injection of generated entries into an existing
//     CHANGELOG.md document
//
// All external effects (tag listing, commit metadata, patch retrieval, text
// generation, template lookup) go through the collaborator interfaces in
// types.go, so the core is deterministic and fully testable with fakes.
// Entries follow the plain-text convention "## YYYY-MM-DD vX.Y.Z" under a
// single top-level "# Changes" header.
package changelog
