package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"sift/internal/domain"
	"sift/internal/port"
)

var errStopWalk = errors.New("walk stopped at file cap")

// Enumerator walks a directory tree and yields candidate files filtered
// by extension and size, subject to a hard cap on candidates yielded.
// filepath.WalkDir visits entries in lexical order, so enumeration order
// is deterministic for a fixed filesystem state.
type Enumerator struct {
	extensions   []string
	excludes     []string
	maxFileBytes int64
	maxFiles     int
}

// NewEnumerator creates an Enumerator. Extensions are compared
// case-insensitively as filename suffixes; at least one is required.
func NewEnumerator(extensions, excludes []string, maxFileBytes int64, maxFiles int) (*Enumerator, error) {
	if len(extensions) == 0 {
		return nil, domain.ErrNoExtensions
	}
	lowered := make([]string, len(extensions))
	for i, ext := range extensions {
		lowered[i] = strings.ToLower(ext)
	}
	return &Enumerator{
		extensions:   lowered,
		excludes:     excludes,
		maxFileBytes: maxFileBytes,
		maxFiles:     maxFiles,
	}, nil
}

// Enumerate calls fn for each candidate under root. It stops mid-walk,
// without error, once maxFiles candidates have been yielded. Oversize
// files are counted as skipped; zero-byte files are silently excluded.
func (e *Enumerator) Enumerate(root string, fn func(domain.Candidate) error) (port.EnumStats, error) {
	var stats port.EnumStats

	root, err := filepath.Abs(root)
	if err != nil {
		return stats, err
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return stats, domain.ErrInvalidDirectory
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory entries never become candidates;
			// the scan continues past them.
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if d.IsDir() {
			if e.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if e.shouldExclude(relPath) {
			return nil
		}
		if !e.hasAllowedExtension(d.Name()) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}
		size := fi.Size()
		if size == 0 {
			return nil
		}
		if e.maxFileBytes > 0 && size > e.maxFileBytes {
			stats.SkippedTooLarge++
			return nil
		}

		if err := fn(domain.Candidate{Path: path, Size: size}); err != nil {
			return err
		}
		stats.Yielded++
		if e.maxFiles > 0 && stats.Yielded >= e.maxFiles {
			return errStopWalk
		}
		return nil
	})

	if errors.Is(err, errStopWalk) {
		err = nil
	}
	return stats, err
}

func (e *Enumerator) hasAllowedExtension(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range e.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (e *Enumerator) shouldExclude(path string) bool {
	for _, pattern := range e.excludes {
		matched, err := doublestar.Match(pattern, filepath.ToSlash(path))
		if err == nil && matched {
			return true
		}
	}
	return false
}

// ReadFile reads a file's content as text. Bytes that are not valid
// UTF-8 are replaced rather than causing failure.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}

// Reader adapts ReadFile to the port.ContentReader interface.
type Reader struct{}

func (Reader) ReadFile(path string) (string, error) {
	return ReadFile(path)
}
