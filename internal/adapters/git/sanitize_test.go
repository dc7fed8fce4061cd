package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBranchName_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty", "", "empty"},
		{"starts with dot", ".2025.11", "start with '.'"},
		{"starts with slash", "/release", "start with '/'"},
		{"starts with hyphen", "-release", "start with '-'"},
		{"ends with .lock", "release.lock", ".lock"},
		{"ends with dot", "release.", "end with '.'"},
		{"ends with slash", "release/", "end with '/'"},
		{"ends with hyphen", "release-", "end with '-'"},
		{"double dot", "release..candidate", "'..'"},
		{"double slash", "pick//release", "'//'"},
		{"reflog syntax", "release@{1}", "'@{'"},
		{"control characters", "release\x00name", "control characters"},
		{"space", "release 2025", "invalid characters"},
		{"tilde", "release~1", "invalid characters"},
		{"caret", "release^2", "invalid characters"},
		{"colon", "release:prod", "invalid characters"},
		{"question mark", "release?", "invalid characters"},
		{"asterisk", "release*", "invalid characters"},
		{"bracket", "release[0]", "invalid characters"},
		{"backslash", "release\\prod", "invalid characters"},
		{"bare at", "@", "invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateBranchName_Accepted(t *testing.T) {
	tests := []string{
		"main",
		"release",
		"pick/2025.11.1",
		"release-1.0.0",
		"hotfix_123",
		"Releases/Q4",
		"a",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			assert.NoError(t, validateBranchName(input))
		})
	}
}

func TestSanitizeBranchName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already clean", "2025.11.1", "2025.11.1"},
		{"lowercased", "Release-2025", "release-2025"},
		{"spaces to hyphens", "november hotfix", "november-hotfix"},
		{"special chars collapse", "release@#$candidate", "release-candidate"},
		{"parentheses", "hotfix (payments)", "hotfix-payments"},
		{"consecutive hyphens", "release---candidate", "release-candidate"},
		{"control chars removed", "rele\x00\x01ase", "release"},
		{"leading junk trimmed", "./-release", "release"},
		{"trailing lock trimmed", "release.lock", "release"},
		{"double dot", "release..candidate", "release-candidate"},
		{"double slash", "releases//q4", "releases/q4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sanitizeBranchName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizeBranchName_NothingLeft(t *testing.T) {
	for _, input := range []string{"", "...", "@", "***"} {
		t.Run(input, func(t *testing.T) {
			_, err := sanitizeBranchName(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "empty")
		})
	}
}
