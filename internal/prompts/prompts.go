// Package prompts resolves prompt templates with file-based overrides.
// A template named "changelog" is looked up as <dir>/changelog.md; when no
// override exists the caller-supplied default text is used. This keeps
// prompt tuning possible per project without code changes.
package prompts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir is a TemplateSource backed by a directory of markdown files.
// The zero value (empty Path) always serves defaults.
type Dir struct {
	// Path is the override directory, typically .relkit/prompts under the
	// repository root.
	Path string
}

// Load returns the override file <Path>/<name>.md when it exists,
// otherwise defaultText. A missing directory or file is not an error;
// any other read failure is.
func (d Dir) Load(name, defaultText string) (string, error) {
	if d.Path == "" {
		return defaultText, nil
	}

	data, err := os.ReadFile(filepath.Join(d.Path, name+".md"))
	if errors.Is(err, fs.ErrNotExist) {
		return defaultText, nil
	}
	if err != nil {
		return "", fmt.Errorf("loading prompt template %q: %w", name, err)
	}
	return string(data), nil
}
