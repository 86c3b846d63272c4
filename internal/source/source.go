// Package source finds message code table files by module name.
package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"msgcode-generator/internal/common"
)

// DefaultExtensions are the file extensions recognized as table files.
var DefaultExtensions = []string{".csv"}

// Source finds table files by module name.
type Source interface {
	// Find locates a table by module name.
	// Returns the file path, or fs.ErrNotExist if not found.
	Find(name string) (string, error)

	// ListFiles returns all table file paths known to this source, in a
	// deterministic order.
	ListFiles() ([]string, error)
}

// Option configures a source.
type Option func(*config)

type config struct {
	extensions []string
	recursive  bool
}

func defaultConfig() config {
	return config{
		extensions: DefaultExtensions,
	}
}

// WithExtensions sets the file extensions to recognize for this source.
func WithExtensions(exts ...string) Option {
	return func(c *config) {
		c.extensions = exts
	}
}

// WithRecursive makes the source walk the directory tree instead of reading
// a single directory.
func WithRecursive() Option {
	return func(c *config) {
		c.recursive = true
	}
}

// --- Dir Source ---

type dirSource struct {
	path   string
	config config

	once  sync.Once
	index map[string]string // module name -> file path, recursive only
	err   error
}

// Dir creates a Source that searches one directory. With WithRecursive the
// whole tree below it is searched; first match wins for duplicate names.
func Dir(path string, opts ...Option) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &dirSource{path: path, config: cfg}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(path string, opts ...Option) Source {
	src, err := Dir(path, opts...)
	if err != nil {
		panic(err)
	}
	return src
}

func (s *dirSource) Find(name string) (string, error) {
	if s.config.recursive {
		return s.findIndexed(name)
	}

	// Flat lookup stays lazy, one stat per candidate extension
	for _, ext := range s.config.extensions {
		fullPath := filepath.Join(s.path, name+ext)
		info, err := os.Stat(fullPath)
		if err == nil && !info.IsDir() {
			return fullPath, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fs.ErrNotExist
}

func (s *dirSource) findIndexed(name string) (string, error) {
	s.once.Do(func() {
		s.index, s.err = s.buildIndex()
	})
	if s.err != nil {
		return "", s.err
	}

	path, ok := s.index[name]
	if !ok {
		return "", fs.ErrNotExist
	}
	return path, nil
}

func (s *dirSource) ListFiles() ([]string, error) {
	extSet := makeExtensionSet(s.config.extensions)

	if s.config.recursive {
		var files []string

		// WalkDir visits entries in lexical order, keeping output stable
		err := filepath.WalkDir(s.path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if hasValidExtension(path, extSet) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return files, nil
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.path, entry.Name())
		if hasValidExtension(path, extSet) {
			files = append(files, path)
		}
	}
	return files, nil
}

func (s *dirSource) buildIndex() (map[string]string, error) {
	files, err := s.ListFiles()
	if err != nil {
		return nil, err
	}

	index := make(map[string]string, len(files))
	for _, path := range files {
		name := common.ModuleName(path)
		if _, exists := index[name]; !exists {
			index[name] = path
		}
	}
	return index, nil
}

// --- Multi Source (combines multiple sources) ---

type multiSource struct {
	sources []Source
}

// Multi combines multiple sources into one.
// Find() tries each source in order, returning the first match.
func Multi(sources ...Source) Source {
	return &multiSource{sources: sources}
}

func (s *multiSource) Find(name string) (string, error) {
	for _, src := range s.sources {
		path, err := src.Find(name)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return path, err
		}
	}
	return "", fs.ErrNotExist
}

func (s *multiSource) ListFiles() ([]string, error) {
	var files []string
	for _, src := range s.sources {
		f, err := src.ListFiles()
		if err != nil {
			return nil, err
		}
		files = append(files, f...)
	}
	return files, nil
}

// --- Helpers ---

func makeExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

func hasValidExtension(path string, extSet map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extSet[ext]
	return ok
}
