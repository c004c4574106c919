package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DocumentHeader is the single top-level header of a changelog document.
const DocumentHeader = "# Changes"

// Inject splices entries into an existing changelog document. Lines are
// copied through until the document header, then until the first fully
// blank line; the entries are written there (in the order given) before the
// blank line and the remainder of the file, both unchanged.
//
// If the header is never found the file is copied through unchanged and no
// entries are injected. That no-op is silent: callers that care must verify
// the document content afterwards.
//
// The rewrite goes to a temporary file in the same directory which is
// renamed over the original, so a crash mid-write cannot corrupt the
// document.
func Inject(filename string, entries []string) error {
	src, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening changelog %s: %w", filename, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("inspecting changelog %s: %w", filename, err)
	}

	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary changelog: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()

	if err := splice(src, tmp, entries); err != nil {
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return fmt.Errorf("setting changelog permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("flushing temporary changelog: %w", err)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("replacing changelog %s: %w", filename, err)
	}
	return nil
}

// splice copies src to dst, inserting entries at the first blank line after
// the document header.
func splice(src io.Reader, dst io.Writer, entries []string) error {
	w := bufio.NewWriter(dst)
	scanner := bufio.NewScanner(src)

	headerSeen := false
	injected := false

	for scanner.Scan() {
		line := scanner.Text()

		if headerSeen && !injected && strings.TrimSpace(line) == "" {
			for _, entry := range entries {
				if _, err := w.WriteString(entry); err != nil {
					return fmt.Errorf("writing changelog entries: %w", err)
				}
			}
			injected = true
		}
		if line == DocumentHeader {
			headerSeen = true
		}

		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing changelog line: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading changelog: %w", err)
	}

	// Header found but no blank line followed it: the entries belong at
	// the end of the document.
	if headerSeen && !injected {
		for _, entry := range entries {
			if _, err := w.WriteString(entry); err != nil {
				return fmt.Errorf("writing changelog entries: %w", err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing changelog: %w", err)
	}
	return nil
}
