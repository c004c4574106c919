package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := NewArgumentErrorWithUsage(
		"invalid version format: 1.2",
		"relkit generate [vMAJOR.MINOR.PATCH]",
		"Versions must match MAJOR.MINOR.PATCH",
	)

	got := FormatErrorPlain(err)
	assert.Contains(t, got, "Error [Argument Error]: invalid version format: 1.2")
	assert.Contains(t, got, "Usage: relkit generate [vMAJOR.MINOR.PATCH]")
	assert.Contains(t, got, "To fix this:")
	assert.Contains(t, got, "• Versions must match MAJOR.MINOR.PATCH")

	assert.Empty(t, FormatErrorPlain(nil))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Runtime))

	wrapped := WrapWithMessage(errors.New("connection refused"), Collaborator, "changelog generation failed")
	require.NotNil(t, wrapped)
	assert.Equal(t, Collaborator, wrapped.Category)
	assert.Equal(t, "changelog generation failed: connection refused", wrapped.Error())
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {Argument, "Argument Error"},
		"configuration": {Configuration, "Configuration Error"},
		"not found":     {NotFound, "Not Found"},
		"collaborator":  {Collaborator, "Collaborator Error"},
		"runtime":       {Runtime, "Runtime Error"},
		"unknown":       {ErrorCategory(99), "Error"},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestMessageTemplates(t *testing.T) {
	t.Parallel()

	t.Run("version not found lists known versions", func(t *testing.T) {
		t.Parallel()

		err := VersionNotFound("v9.9.9", []string{"v1.0.0", "v1.1.0"})
		assert.Equal(t, NotFound, err.Category)
		assert.Contains(t, FormatErrorPlain(err), "Known versions: v1.0.0, v1.1.0")
	})

	t.Run("missing api key names the variable", func(t *testing.T) {
		t.Parallel()

		err := MissingAPIKey("OPENAI_API_KEY")
		assert.Equal(t, Configuration, err.Category)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})
}
