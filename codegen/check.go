package codegen

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/ontogen/errors"
)

// Metadata line prefixes written into the generated-code banner. They change
// with every commit to the ontology without changing the code.
const (
	SourceVersionPrefix      = "// Source version:"
	SourceLastModifiedPrefix = "// Source last modified:"
)

// CheckResult holds the result of comparing freshly generated files against
// what is on disk.
type CheckResult struct {
	UpToDate bool
	// Missing files are generated but not on disk
	Missing []string
	// Changed files are on disk with different content
	Changed []string
}

// Err returns ErrOutOfDate describing the differences, or nil.
func (r *CheckResult) Err() error {
	if r.UpToDate {
		return nil
	}
	return errors.WithHint(
		errors.Wrapf(errors.ErrOutOfDate, "%d missing, %d changed", len(r.Missing), len(r.Changed)),
		"run `ontogen generate` and commit the result")
}

// CompareDirectories compares generated files with the files under dir,
// ignoring banner metadata lines.
func CompareDirectories(files []GeneratedFile, dir string) (*CheckResult, error) {
	result := &CheckResult{}
	for _, f := range files {
		existingPath := filepath.Join(dir, filepath.FromSlash(f.Path))
		existing, err := os.ReadFile(existingPath)
		if os.IsNotExist(err) {
			result.Missing = append(result.Missing, f.Path)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", existingPath)
		}
		if filterMetadataLines(existing) != filterMetadataLines([]byte(f.Content)) {
			result.Changed = append(result.Changed, f.Path)
		}
	}
	sort.Strings(result.Missing)
	sort.Strings(result.Changed)
	result.UpToDate = len(result.Missing) == 0 && len(result.Changed) == 0
	return result, nil
}

// filterMetadataLines removes banner metadata lines from content.
// Returns empty string if scanner encounters an error.
func filterMetadataLines(content []byte) string {
	var result strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(string(content)))

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, SourceLastModifiedPrefix) ||
			strings.HasPrefix(trimmed, SourceVersionPrefix) {
			continue
		}

		result.WriteString(line)
		result.WriteString("\n")
	}

	// An unreadable file must not compare equal to anything
	if err := scanner.Err(); err != nil {
		return ""
	}

	return result.String()
}
