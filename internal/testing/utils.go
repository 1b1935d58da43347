// Package testing provides fixtures and helpers shared by the toolkit's tests.
// It must not import toolkit packages so that their internal tests can use it.
package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TaskTitles is a small candidate list for search tests.
var TaskTitles = []string{
	"Implement user authentication system",
	"Fix responsive design issues",
	"Add customer dashboard",
	"Optimize database queries",
	"Create onboarding flow",
	"Update documentation",
	"Refactor authentication module",
	"Add unit tests",
	"Implement real-time notifications",
}

// KanbanText is a 29-word paragraph with 26 distinct tokens, all of whose
// keywords occur once.
const KanbanText = "The kanban board helps teams visualize workflow and optimize delivery. " +
	"Tasks move through different stages from backlog to completion. " +
	"The system provides insights and analytics to improve team performance."

// RepeatWords returns word repeated n times, separated by single spaces.
func RepeatWords(word string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat(word+" ", n), " ")
}

// WriteTempFile writes content to a file named name inside a per-test
// temporary directory and returns its path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write test file")
	return path
}

// MissingFile returns a path inside a per-test temporary directory that does not exist.
func MissingFile(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
