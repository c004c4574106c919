package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/ariel-frischer/relkit/internal/semver"
)

// headerPattern matches a changelog entry header line exactly:
// "## YYYY-MM-DD vMAJOR.MINOR.PATCH".
var headerPattern = regexp.MustCompile(`^## \d{4}-\d{2}-\d{2} (v\d+\.\d+\.\d+)$`)

// Generator orchestrates range resolution, patch retrieval, and text
// generation to produce changelog entries. A single Generator is not safe
// for concurrent use; construct independent instances instead. Pairs are
// always processed one at a time so output ordering stays deterministic and
// each expensive generation call completes before the next starts.
type Generator struct {
	// Name is the project name substituted into prompt templates.
	Name string
	// Path is the changelog document the file-level operations act on.
	Path string

	Tags      TagSource
	Commits   CommitSource
	Diffs     DiffSource
	Text      TextGenerator
	Templates TemplateSource

	// catalog caches the tag listing for the duration of one top-level
	// operation chain. Explicit so invalidation between runs stays visible:
	// a fresh Generator means a fresh catalog.
	catalog *Catalog
}

// Catalog returns the tag catalog, loading it from the tag source on first
// use and reusing the cached copy afterwards.
func (g *Generator) Catalog() (Catalog, error) {
	if g.catalog != nil {
		return *g.catalog, nil
	}
	c, err := LoadCatalog(g.Tags)
	if err != nil {
		return Catalog{}, err
	}
	g.catalog = &c
	return c, nil
}

// GenerateFor resolves the requested span against the tag catalog and
// generates its entry. A nil or blank to means "up to HEAD"; a nil or
// blank from is resolved automatically (the highest cataloged version for
// HEAD spans, otherwise the immediate predecessor of to).
func (g *Generator) GenerateFor(to, from any) (Entry, error) {
	toSpec, err := coerceOptional(to)
	if err != nil {
		return Entry{}, err
	}
	if toSpec.IsZero() {
		toSpec = semver.MustNew(semver.Latest)
	}

	fromSpec, err := coerceOptional(from)
	if err != nil {
		return Entry{}, err
	}

	catalog, err := g.Catalog()
	if err != nil {
		return Entry{}, err
	}
	resolved, err := catalog.Resolve(toSpec, fromSpec)
	if err != nil {
		return Entry{}, err
	}
	return g.generatePair(resolved.From, resolved.To)
}

// coerceOptional treats nil and blank strings as the zero Spec so callers
// can express "unspecified" without a sentinel.
func coerceOptional(v any) (semver.Spec, error) {
	if v == nil {
		return semver.Spec{}, nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return semver.Spec{}, nil
	}
	return semver.Coerce(v)
}

// GenerateOne produces the changelog entry for the span between from and
// to. Both arguments pass through semver.Coerce, so Specs and strings are
// accepted; a nil or blank to defaults to the HEAD marker. An empty patch
// log short-circuits to a header-only entry without calling the
// text-generation service.
func (g *Generator) GenerateOne(from, to any) (Entry, error) {
	fromSpec, err := semver.Coerce(from)
	if err != nil {
		return Entry{}, err
	}

	toSpec := semver.MustNew(semver.Latest)
	if to != nil {
		coerced, err := semver.Coerce(to)
		if err != nil {
			return Entry{}, err
		}
		if !coerced.IsZero() {
			toSpec = coerced
		}
	}

	return g.generatePair(fromSpec, toSpec)
}

// generatePair runs the single-range pipeline for already-normalized specs.
func (g *Generator) generatePair(from, to semver.Spec) (Entry, error) {
	rangeSpec := from.Tag() + ".." + to.Tag()

	date, err := g.Commits.CommitDate(to.Tag())
	if err != nil {
		return Entry{}, &CollaboratorError{Op: "resolving commit date", Range: to.Tag(), Err: err}
	}

	patch, err := g.Diffs.PatchLog(from.Tag(), to.Tag())
	if err != nil {
		return Entry{}, &CollaboratorError{Op: "retrieving patch log", Range: rangeSpec, Err: err}
	}

	// No commits in range: keep the header as a placeholder, skip the
	// expensive generation call entirely.
	if strings.TrimSpace(patch) == "" {
		return Entry{Date: date, Version: to}, nil
	}

	userPrompt, err := g.buildPrompt(to, patch)
	if err != nil {
		return Entry{}, err
	}

	systemPrompt, err := g.Templates.Load("system", DefaultSystemPrompt())
	if err != nil {
		return Entry{}, &CollaboratorError{Op: "loading system prompt", Range: rangeSpec, Err: err}
	}

	text, err := g.Text.Generate(systemPrompt, userPrompt)
	if err != nil {
		return Entry{}, &CollaboratorError{Op: "generating changelog text", Range: rangeSpec, Err: err}
	}

	return Entry{Date: date, Version: to, Body: normalizeBody(text)}, nil
}

// buildPrompt substitutes {name}, {version}, and {log_diff} into the
// changelog prompt template.
func (g *Generator) buildPrompt(to semver.Spec, patch string) (string, error) {
	tmpl, err := g.Templates.Load("changelog", DefaultTemplate())
	if err != nil {
		return "", &CollaboratorError{Op: "loading prompt template", Range: to.Tag(), Err: err}
	}

	r := strings.NewReplacer(
		"{name}", g.Name,
		"{version}", to.Tag(),
		"{log_diff}", patch,
	)
	return r.Replace(tmpl), nil
}

// normalizeBody trims surrounding whitespace and converts literal tabs to
// two spaces so generated markdown nests consistently.
func normalizeBody(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "\t", "  ")
}

// GenerateRange writes one entry per consecutive cataloged pair within
// [from, to] inclusive to w, oldest first. Both endpoints must be concrete
// semantic versions. Fails with NotFoundError when the catalog is empty.
func (g *Generator) GenerateRange(w io.Writer, from, to any) error {
	fromSpec, err := semver.Coerce(from)
	if err != nil {
		return err
	}
	toSpec, err := semver.Coerce(to)
	if err != nil {
		return err
	}
	if !fromSpec.IsParsed() || !toSpec.IsParsed() {
		return fmt.Errorf("range endpoints must be semantic versions, got %q..%q", fromSpec, toSpec)
	}

	catalog, err := g.Catalog()
	if err != nil {
		return err
	}
	if catalog.IsEmpty() {
		return &NotFoundError{Version: fromSpec.String()}
	}

	versions, err := catalog.Between(fromSpec, toSpec)
	if err != nil {
		return err
	}

	entries, err := g.generateSeries(versions)
	if err != nil {
		return err
	}

	// A "between two explicit points" query reads oldest-first, unlike the
	// newest-first full document.
	for _, entry := range entries {
		if _, err := io.WriteString(w, entry); err != nil {
			return fmt.Errorf("writing changelog entries: %w", err)
		}
	}
	return nil
}

// GenerateFull writes a complete changelog document to w: a "# Changes"
// header, then one entry per consecutive tagged pair plus a synthetic
// "* Start" entry for the earliest tag, newest first. Fails with
// NotFoundError when the repository has no version tags.
func (g *Generator) GenerateFull(w io.Writer) error {
	catalog, err := g.Catalog()
	if err != nil {
		return err
	}
	versions := catalog.Versions()
	if len(versions) == 0 {
		return &NotFoundError{Version: semver.Latest}
	}

	first := versions[0]
	firstDate, err := g.Commits.CommitDate(first.Tag())
	if err != nil {
		return &CollaboratorError{Op: "resolving commit date", Range: first.Tag(), Err: err}
	}

	// The earliest tag has no predecessor to diff against; seed the
	// document with a fixed entry instead of a generation call.
	entries := []string{Entry{Date: firstDate, Version: first, Body: "* Start"}.Render()}

	generated, err := g.generateSeries(versions)
	if err != nil {
		return err
	}
	entries = append(entries, generated...)

	slices.Reverse(entries)

	if _, err := io.WriteString(w, DocumentHeader+"\n"); err != nil {
		return fmt.Errorf("writing changelog header: %w", err)
	}
	for _, entry := range entries {
		if _, err := io.WriteString(w, entry); err != nil {
			return fmt.Errorf("writing changelog entries: %w", err)
		}
	}
	return nil
}

// generateSeries renders entries for each consecutive pair of versions,
// ascending. Only adjacent pairs are generated: n versions produce n-1
// entries.
func (g *Generator) generateSeries(versions []semver.Spec) ([]string, error) {
	var entries []string
	for i := 0; i+1 < len(versions); i++ {
		entry, err := g.generatePair(versions[i], versions[i+1])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry.Render())
	}
	return entries, nil
}

// AddToFile generates entries for every version released after the highest
// version already documented in the changelog file and injects them under
// the document header. It returns the number of entries added; zero means
// the document was already up to date. The file must exist and contain at
// least one entry header.
func (g *Generator) AddToFile(filename string) (int, error) {
	highest, err := highestDocumented(filename)
	if err != nil {
		return 0, err
	}

	catalog, err := g.Catalog()
	if err != nil {
		return 0, err
	}

	// Keep the highest documented version itself as the starting point so
	// the first new pair diffs from a documented release.
	remaining, err := catalog.From(highest)
	if err != nil {
		return 0, err
	}
	if len(remaining) < 2 {
		return 0, nil
	}

	entries, err := g.generateSeries(remaining)
	if err != nil {
		return 0, err
	}
	slices.Reverse(entries)

	if err := Inject(filename, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// ChangelogExists reports whether the configured changelog document exists.
func (g *Generator) ChangelogExists() bool {
	if g.Path == "" {
		return false
	}
	_, err := os.Stat(g.Path)
	return err == nil
}

// IsVersionDocumented reports whether the configured changelog document
// mentions the version's rendered tag. The check is deliberately a loose
// substring containment, not anchored to the header pattern.
func (g *Generator) IsVersionDocumented(version any) (bool, error) {
	spec, err := semver.Coerce(version)
	if err != nil {
		return false, err
	}

	f, err := os.Open(g.Path)
	if err != nil {
		return false, &ArgumentError{Path: g.Path, Reason: "cannot open document", Err: err}
	}
	defer f.Close()

	tag := spec.Tag()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), tag) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("reading changelog %s: %w", g.Path, err)
	}
	return false, nil
}

// highestDocumented scans a changelog file for entry headers and returns
// the highest version found.
func highestDocumented(filename string) (semver.Spec, error) {
	f, err := os.Open(filename)
	if err != nil {
		return semver.Spec{}, &ArgumentError{Path: filename, Reason: "cannot open document", Err: err}
	}
	defer f.Close()

	var highest semver.Spec
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := headerPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		spec, err := semver.New(m[1], semver.WithoutPrefix())
		if err != nil {
			return semver.Spec{}, err
		}
		if highest.IsZero() {
			highest = spec
			continue
		}
		greater, err := highest.Less(spec)
		if err != nil {
			return semver.Spec{}, err
		}
		if greater {
			highest = spec
		}
	}
	if err := scanner.Err(); err != nil {
		return semver.Spec{}, fmt.Errorf("reading changelog %s: %w", filename, err)
	}

	if highest.IsZero() {
		return semver.Spec{}, &ArgumentError{Path: filename, Reason: "no documented version found"}
	}
	return highest, nil
}
