// Package changelog test fakes for the collaborator interfaces.
// Each fake records its calls so tests can assert on call counts and
// arguments, not just results.

package changelog

import (
	"errors"
	"fmt"
)

type fakeTagSource struct {
	tags  []string
	err   error
	calls int
}

func (f *fakeTagSource) ListTags() ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tags, nil
}

// fakeCommitSource serves per-ref dates and hashes from maps.
type fakeCommitSource struct {
	dates  map[string]string
	hashes map[string]string
	calls  []string
}

func (f *fakeCommitSource) CommitDate(ref string) (string, error) {
	f.calls = append(f.calls, "date:"+ref)
	date, ok := f.dates[ref]
	if !ok {
		return "", fmt.Errorf("unknown ref %q", ref)
	}
	return date, nil
}

func (f *fakeCommitSource) CommitHash(ref string) (string, error) {
	f.calls = append(f.calls, "hash:"+ref)
	hash, ok := f.hashes[ref]
	if !ok {
		return "", fmt.Errorf("unknown ref %q", ref)
	}
	return hash, nil
}

// fakeDiffSource serves patch text keyed by "from..to".
type fakeDiffSource struct {
	patches map[string]string
	err     error
	calls   []string
}

func (f *fakeDiffSource) PatchLog(fromRef, toRef string) (string, error) {
	key := fromRef + ".." + toRef
	f.calls = append(f.calls, key)
	if f.err != nil {
		return "", f.err
	}
	return f.patches[key], nil
}

// fakeTextGenerator returns a fixed response and records every prompt pair.
type fakeTextGenerator struct {
	response string
	err      error
	system   []string
	prompts  []string
}

func (f *fakeTextGenerator) Generate(systemPrompt, userPrompt string) (string, error) {
	f.system = append(f.system, systemPrompt)
	f.prompts = append(f.prompts, userPrompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeTemplateSource returns overrides when present, otherwise the default.
type fakeTemplateSource struct {
	overrides map[string]string
}

func (f *fakeTemplateSource) Load(name, defaultText string) (string, error) {
	if text, ok := f.overrides[name]; ok {
		return text, nil
	}
	return defaultText, nil
}

var errCollaboratorDown = errors.New("collaborator unavailable")
