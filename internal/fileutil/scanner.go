package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned when a search root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ScanOptions configures the directory walk
type ScanOptions struct {
	// Extensions is the allow-list of file suffixes (e.g., ".c", ".md").
	// Matching is exact and case-sensitive on the last dot segment of the name.
	// An empty list accepts every regular file.
	Extensions []string
	// ExcludeDirs is a list of directory names to skip (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// MaxDepth limits recursion depth (0 = unlimited, 1 = root only)
	MaxDepth int
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the matched paths in walk order
	Files []string
	// Errors contains directories that could not be read
	Errors []error
}

// VisitFunc is called for every regular file that passes the extension filter.
type VisitFunc func(path string)

// DirErrorFunc is called for every directory that could not be read.
// The walk skips that subtree and continues.
type DirErrorFunc func(path string, err error)

// ValidateRoot checks that root exists and is a directory.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}
	return nil
}

// Walk visits root depth-first, reading each directory in lexicographic order.
// Subdirectories recurse; regular files (and symlinks to regular files) whose
// extension is allowed are passed to visit. Symlinked directories are not
// descended. Unreadable directories are reported through onDirErr and skipped.
//
// Walk only fails if root itself is not a directory.
func Walk(root string, opts ScanOptions, visit VisitFunc, onDirErr DirErrorFunc) error {
	if err := ValidateRoot(root); err != nil {
		return err
	}

	w := &walker{
		extensions: normalizeExtensions(opts.Extensions),
		excludes:   makeSet(opts.ExcludeDirs),
		maxDepth:   opts.MaxDepth,
		visit:      visit,
		onDirErr:   onDirErr,
	}
	w.walkDir(root, 1)
	return nil
}

// ScanDirectory collects every file Walk would visit.
// Directory errors are gathered in the result instead of aborting the scan.
func ScanDirectory(root string, opts ScanOptions) (*ScanResult, error) {
	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	err := Walk(root, opts,
		func(path string) {
			result.Files = append(result.Files, path)
		},
		func(path string, err error) {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
		},
	)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// HasAllowedExtension reports whether the last dot segment of name is one of
// the allowed extensions. Entries may omit the leading dot. An empty
// allow-list accepts everything.
func HasAllowedExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	for _, allowed := range extensions {
		if normalizeExtension(allowed) == ext {
			return true
		}
	}
	return false
}

type walker struct {
	extensions []string
	excludes   map[string]bool
	maxDepth   int
	visit      VisitFunc
	onDirErr   DirErrorFunc
}

func (w *walker) walkDir(dir string, depth int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if w.onDirErr != nil {
			w.onDirErr(dir, err)
		}
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if w.excludes[entry.Name()] {
				continue
			}
			if w.maxDepth > 0 && depth >= w.maxDepth {
				continue
			}
			w.walkDir(path, depth+1)
			continue
		}

		if !w.isRegular(path, entry) {
			continue
		}

		if !HasAllowedExtension(entry.Name(), w.extensions) {
			continue
		}

		w.visit(path)
	}
}

// isRegular resolves symlinks with stat; files that vanish or cannot be
// stat-ed are dropped without error.
func (w *walker) isRegular(path string, entry os.DirEntry) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// normalizeExtensions drops blank entries and ensures every extension starts
// with a dot. Case is preserved: ".MD" and ".md" are different extensions.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext = normalizeExtension(ext); ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func makeSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
