// Package hints appends actionable suggestions to CLI error messages.
// Every hint renders as "\n  hint: <text>"; an empty string means none.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-skillsheet/internal/fileutil"
)

// IsInContainer reports whether the process runs inside Docker.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVariables are set by common CI runners.
var ciVariables = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// ForBrowserConnect suggests the go-rod environment variables that are not
// set yet. The sandbox hint only appears in CI or containers.
func ForBrowserConnect() string {
	var hints []string

	inCI := false
	for _, name := range ciVariables {
		if os.Getenv(name) != "" {
			inCI = true
			break
		}
	}

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "run 'skillsheet doctor' to check the setup")

	return formatHints(hints)
}

// ForTimeout suggests a longer PDF timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout or SKILLSHEET_TIMEOUT")
}

// ForConfigNotFound suggests --config, or creating the file in the user
// config directory when it was one of the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := string(filepath.Separator) + "go-skillsheet" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the embedded style names.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a .css path")
}

// ForVocabulary reminds the heading syntax expected in vocabulary overrides.
func ForVocabulary() string {
	return format(`headings are written as in the document, e.g. "## 📋 基本情報"`)
}

// ForSheetName reminds the Excel worksheet name rules.
func ForSheetName() string {
	return format(`sheet names are 1-31 characters, unique, without : \ / ? * [ ]`)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
