// Package sourcecache maps filenames to source code. Code that never
// existed on disk, like lines typed at an interactive prompt or passed to
// an eval-style call, is registered here under its synthetic filename so
// that analysis can still quote it. For real files the cache falls back
// to reading from disk.
package sourcecache

import (
	"os"
	"strings"
	"sync"
)

type cache struct {
	mu      sync.Mutex
	sources map[string]string
}

var shared = &cache{sources: map[string]string{}}

// Add registers the source text for filename, replacing any previous
// entry.
func Add(filename, source string) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	shared.sources[filename] = source
}

// Remove forgets the entry for filename, if any.
func Remove(filename string) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	delete(shared.sources, filename)
}

// GetSource returns the source text for filename: the registered entry if
// one exists, otherwise the file's content. A missing file yields the
// empty string; quoting code is always best effort and never an error.
func GetSource(filename string) string {
	shared.mu.Lock()
	source, ok := shared.sources[filename]
	shared.mu.Unlock()
	if ok {
		return source
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return ""
	}
	return string(data)
}

// GetSourceLines returns the source for filename split into lines. The
// trailing newline of each line is removed.
func GetSourceLines(filename string) []string {
	source := GetSource(filename)
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// GetLine returns the 1-indexed line of filename, or "" when the line is
// unknown.
func GetLine(filename string, lineno int) string {
	lines := GetSourceLines(filename)
	if lineno < 1 || lineno > len(lines) {
		return ""
	}
	return lines[lineno-1]
}
