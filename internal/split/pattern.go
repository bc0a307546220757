package split

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	keyPlaceholder   = "{key}"
	indexPlaceholder = "{index}"
)

// NamePattern templates output file names from a group key and a 1-based
// chunk index, e.g. "datafile_{key}_{index}".
type NamePattern struct {
	pattern string
}

// NewNamePattern validates that pattern contains both the {key} and {index}
// placeholders. Requiring both is what makes two distinct chunks resolve to
// two distinct paths.
func NewNamePattern(pattern string) (NamePattern, error) {
	if !strings.Contains(pattern, keyPlaceholder) || !strings.Contains(pattern, indexPlaceholder) {
		return NamePattern{}, NewInvalidConfigError(
			"name pattern %q must contain both %s and %s placeholders", pattern, keyPlaceholder, indexPlaceholder)
	}
	return NamePattern{pattern: pattern}, nil
}

// Render substitutes key and index into the pattern. The key is sanitized
// first so group values cannot escape the output directory or produce
// unusable file names.
func (p NamePattern) Render(key string, index int) string {
	name := strings.ReplaceAll(p.pattern, keyPlaceholder, sanitizeKey(key))
	return strings.ReplaceAll(name, indexPlaceholder, strconv.Itoa(index))
}

// sanitizeKey replaces path separators and other characters that are
// unsafe in file names. Sanitization can map two distinct keys to the same
// text, which is why PlanTasks still checks rendered paths for collisions.
func sanitizeKey(key string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "_",
	)
	s := replacer.Replace(key)
	if s == "" || s == "." || s == ".." {
		s = "_"
	}
	return s
}

// Task pairs one chunk with the file path it writes to.
type Task struct {
	Chunk Chunk
	Path  string
}

// PlanTasks expands groups into the full ordered task list: chunks per
// group under maxRows, each bound to a rendered path below outputDir with
// the given extension. Any two tasks resolving to the same path is an
// InvalidConfiguration error, never a silent overwrite.
func PlanTasks(groups []Group, maxRows int, pattern NamePattern, outputDir, ext string) ([]Task, error) {
	var tasks []Task
	paths := make(map[string]string)
	for _, g := range groups {
		chunks, err := PlanChunks(g.Key, g.Rows, maxRows)
		if err != nil {
			return nil, err
		}
		for _, c := range chunks {
			path := filepath.Join(outputDir, pattern.Render(c.Key, c.Index)+ext)
			if prev, dup := paths[path]; dup {
				return nil, NewInvalidConfigError(
					"output path %q collides between groups %q and %q", path, prev, c.Key)
			}
			paths[path] = c.Key
			tasks = append(tasks, Task{Chunk: c, Path: path})
		}
	}
	return tasks, nil
}

// ChunkID identifies a chunk in reports and logs.
func (c Chunk) ChunkID() string {
	return fmt.Sprintf("%s#%d", c.Key, c.Index)
}
