package git

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/renato0307/cereja/internal/logging"
)

// validBranchNameChars matches valid characters for git branch names
// Allows: alphanumeric, hyphens, underscores, dots, slashes
var validBranchNameChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// invalidBranchNameChars matches characters that get replaced with hyphens
// when deriving a branch name from a release name. Covers git-prohibited
// characters, shell metacharacters, and other problematic punctuation.
var invalidBranchNameChars = regexp.MustCompile(`[\s~^:?*\[\]\\{}#@()&|;<>$` + "`" + `'"]+`)

// consecutiveHyphens matches two or more consecutive hyphens
var consecutiveHyphens = regexp.MustCompile(`-{2,}`)

// validateBranchName checks a branch name against git's ref rules plus the
// stricter constraint that it must survive being passed to git on a command
// line. Use for user-provided source and target branches.
func validateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("branch name cannot be empty")
	}

	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("branch name cannot start with '.'")
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("branch name cannot start with '/'")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("branch name cannot start with '-'")
	}

	if strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("branch name cannot end with '.lock'")
	}
	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("branch name cannot end with '.'")
	}
	if strings.HasSuffix(name, "/") {
		return fmt.Errorf("branch name cannot end with '/'")
	}
	if strings.HasSuffix(name, "-") {
		return fmt.Errorf("branch name cannot end with '-'")
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("branch name cannot contain '..'")
	}
	if strings.Contains(name, "//") {
		return fmt.Errorf("branch name cannot contain '//'")
	}
	if strings.Contains(name, "@{") {
		return fmt.Errorf("branch name cannot contain '@{'")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("branch name cannot contain control characters")
		}
	}

	if !validBranchNameChars.MatchString(name) {
		return fmt.Errorf("branch name contains invalid characters (only alphanumeric, '.', '_', '-', '/' allowed)")
	}

	if name == "@" {
		return fmt.Errorf("branch name cannot be '@'")
	}

	return nil
}

// sanitizeBranchName transforms a release name into a valid git branch
// segment. Returns an error if nothing valid remains.
func sanitizeBranchName(name string) (string, error) {
	logging.Logger.Debug("Sanitizing branch name", "input", name)

	if name == "" {
		return "", fmt.Errorf("cannot sanitize empty string")
	}

	result := strings.ToLower(name)

	var builder strings.Builder
	for _, r := range result {
		if !unicode.IsControl(r) {
			builder.WriteRune(r)
		}
	}
	result = builder.String()

	result = invalidBranchNameChars.ReplaceAllString(result, "-")
	result = strings.ReplaceAll(result, "..", "-")
	result = strings.ReplaceAll(result, "//", "/")

	result = strings.TrimLeft(result, "./-")
	result = strings.TrimSuffix(result, ".lock")
	result = strings.TrimRight(result, "./-")

	result = consecutiveHyphens.ReplaceAllString(result, "-")

	if result == "" {
		return "", fmt.Errorf("sanitization resulted in empty branch name")
	}
	if result == "@" {
		return "", fmt.Errorf("sanitization resulted in invalid branch name '@'")
	}

	logging.Logger.Debug("Branch name sanitized", "input", name, "output", result)
	return result, nil
}
