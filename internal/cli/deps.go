package cli

import (
	"path/filepath"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/ariel-frischer/relkit/internal/config"
	relerr "github.com/ariel-frischer/relkit/internal/errors"
	"github.com/ariel-frischer/relkit/internal/git"
	"github.com/ariel-frischer/relkit/internal/llm"
	"github.com/ariel-frischer/relkit/internal/prompts"
)

// newGenerator wires a changelog.Generator from the merged configuration
// and the repository named by --repo. withText controls whether the
// text-generation client is constructed; read-only commands skip it so they
// work without an API key.
func newGenerator(withText bool) (*changelog.Generator, *config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		path := configFlag
		if path == "" {
			path = config.ProjectConfigPath()
		}
		return nil, nil, relerr.ConfigParseError(path, err)
	}

	repo, err := git.Open(repoFlag)
	if err != nil {
		return nil, nil, relerr.NotAGitRepository(repoFlag)
	}

	gen := &changelog.Generator{
		Name:      projectName(cfg, repo),
		Path:      changelogPath(cfg, repo.Root()),
		Tags:      repo,
		Commits:   repo,
		Diffs:     repo,
		Templates: prompts.Dir{Path: promptsDir(cfg, repo.Root())},
	}

	if withText {
		client, err := llm.NewClient(llm.Options{
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			APIKeyEnv:   cfg.APIKeyEnv,
			Temperature: &cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.TimeoutDuration(),
		})
		if err != nil {
			return nil, nil, relerr.MissingAPIKey(cfg.APIKeyEnv)
		}
		gen.Text = client
	}

	return gen, cfg, nil
}

// projectName is the configured name, falling back to the repository root
// directory name.
func projectName(cfg *config.Configuration, repo *git.Repository) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return filepath.Base(repo.Root())
}

// changelogPath resolves the changelog location. The --changelog flag wins
// over config; relative paths are anchored at the repository root.
func changelogPath(cfg *config.Configuration, root string) string {
	path := cfg.Changelog
	if changelogFlag != "" {
		path = changelogFlag
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return path
}

// promptsDir anchors a relative prompts_dir at the repository root. An
// empty value leaves template loading on the embedded defaults.
func promptsDir(cfg *config.Configuration, root string) string {
	if cfg.PromptsDir == "" || filepath.IsAbs(cfg.PromptsDir) {
		return cfg.PromptsDir
	}
	return filepath.Join(root, cfg.PromptsDir)
}
