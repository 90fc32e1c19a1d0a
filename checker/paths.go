package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ProjectExt is the file extension of Graphol project files.
const ProjectExt = ".graphol"

// ResolvePaths expands glob patterns to concrete project files. Supports
// both single-level wildcards (*) and recursive wildcards (**); a plain
// directory resolves to every project file beneath it.
func ResolvePaths(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	return resolved, nil
}

// resolvePattern expands a single pattern to project files.
func resolvePattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		abs, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return globFiles(filepath.Join(abs, "**", "*"+ProjectExt))
		}
		if !strings.HasSuffix(abs, ProjectExt) {
			return nil, fmt.Errorf("not a project file: %s", abs)
		}
		return []string{abs}, nil
	}

	abs := pattern
	if !filepath.IsAbs(pattern) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		abs = filepath.Join(wd, pattern)
	}
	return globFiles(abs)
}

// globFiles expands a glob and keeps only regular project files.
func globFiles(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		if strings.HasSuffix(match, ProjectExt) {
			files = append(files, match)
		}
	}
	return files, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
