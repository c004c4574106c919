// Package git implements relkit's repository collaborators on top of the
// go-git library: tag listing, commit metadata lookup, and patch/log
// retrieval. It requires no git CLI installation. A Repository satisfies
// the changelog package's TagSource, CommitSource, and DiffSource
// interfaces.
package git

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it is a no-op; set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository wraps an opened git repository.
type Repository struct {
	repo *git.Repository
	root string
}

// Open opens the repository containing path, traversing up the directory
// tree to find the repository root. An empty path means the current
// working directory.
func Open(path string) (*Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	root := path
	if worktree, err := repo.Worktree(); err == nil {
		root = worktree.Filesystem.Root()
	}

	logDebug("[git] repository opened, root %s", root)
	return &Repository{repo: repo, root: root}, nil
}

// Root returns the absolute path of the repository's working tree root.
func (r *Repository) Root() string {
	return r.root
}

// ListTags returns the short names of all tags in the repository.
func (r *Repository) ListTags() ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	logDebug("[git] ListTags: found %d tags", len(tags))
	return tags, nil
}

// CommitDate returns the committer date of the given tag or ref as an ISO
// calendar date (YYYY-MM-DD).
func (r *Repository) CommitDate(ref string) (string, error) {
	commit, err := r.resolveCommit(ref)
	if err != nil {
		return "", err
	}
	return commit.Committer.When.Format("2006-01-02"), nil
}

// CommitHash returns the full commit hash the given tag or ref points at.
func (r *Repository) CommitHash(ref string) (string, error) {
	commit, err := r.resolveCommit(ref)
	if err != nil {
		return "", err
	}
	return commit.Hash.String(), nil
}

// PatchLog returns the commit log and unified diff for the span fromRef..
// toRef. An empty string means the range contains no commits.
func (r *Repository) PatchLog(fromRef, toRef string) (string, error) {
	fromCommit, err := r.resolveCommit(fromRef)
	if err != nil {
		return "", err
	}
	toCommit, err := r.resolveCommit(toRef)
	if err != nil {
		return "", err
	}

	if fromCommit.Hash == toCommit.Hash {
		logDebug("[git] PatchLog %s..%s: empty range", fromRef, toRef)
		return "", nil
	}

	log, err := r.logBetween(fromCommit, toCommit)
	if err != nil {
		return "", err
	}
	if log == "" {
		return "", nil
	}

	patch, err := fromCommit.Patch(toCommit)
	if err != nil {
		return "", fmt.Errorf("computing patch %s..%s: %w", fromRef, toRef, err)
	}

	return log + "\n" + patch.String(), nil
}

// logBetween renders the messages of commits reachable from to but not
// from, newest first, in git-log style.
func (r *Repository) logBetween(from, to *object.Commit) (string, error) {
	iter, err := r.repo.Log(&git.LogOptions{From: to.Hash})
	if err != nil {
		return "", fmt.Errorf("reading commit log: %w", err)
	}

	var b strings.Builder
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Hash == from.Hash {
			return storer.ErrStop
		}
		fmt.Fprintf(&b, "commit %s\n", c.Hash)
		fmt.Fprintf(&b, "Author: %s <%s>\n", c.Author.Name, c.Author.Email)
		fmt.Fprintf(&b, "Date:   %s\n\n", c.Author.When.Format("2006-01-02"))
		if msg := strings.TrimRight(c.Message, "\n"); msg != "" {
			for _, line := range strings.Split(msg, "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
		b.WriteString("\n")
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating commit log: %w", err)
	}

	return b.String(), nil
}

// resolveCommit resolves a tag name, hash, or symbolic ref to its commit,
// peeling annotated tags.
func (r *Repository) resolveCommit(ref string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolving ref %q: %w", ref, err)
	}

	commit, err := r.repo.CommitObject(*hash)
	if err == nil {
		return commit, nil
	}

	// Annotated tag: the resolved hash names the tag object, not the commit.
	tag, tagErr := r.repo.TagObject(*hash)
	if tagErr != nil {
		return nil, fmt.Errorf("loading commit for ref %q: %w", ref, err)
	}
	commit, err = tag.Commit()
	if err != nil {
		return nil, fmt.Errorf("peeling annotated tag %q: %w", ref, err)
	}
	return commit, nil
}
