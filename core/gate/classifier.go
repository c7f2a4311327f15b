// Package gate implements the filename denylist gate behind the
// beforeReadFile hook: a classifier over a fixed set of sensitive
// filenames and the fail-open decision driver around it.
package gate

import "strings"

// Classifier tests whether a path refers to a file on the sensitive-name
// denylist. Matching is exact and case-insensitive against the base name
// of the path; substring and pattern matching are deliberately not
// supported so a near-miss like myconfig.json never matches config.json.
type Classifier struct {
	names map[string]struct{}
}

// NewClassifier creates a Classifier over the given filenames.
// Names are folded to lowercase once at construction.
func NewClassifier(names []string) *Classifier {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[strings.ToLower(name)] = struct{}{}
	}
	return &Classifier{names: set}
}

// Sensitive reports whether the base filename of path is on the denylist.
// It is a pure function: any string is accepted, and a path with no
// filename component (empty, or ending in a separator) is never sensitive.
func (c *Classifier) Sensitive(path string) bool {
	name := BaseName(path)
	if name == "" {
		return false
	}
	_, ok := c.names[strings.ToLower(name)]
	return ok
}

// Names returns the denylist entries in construction-folded (lowercase)
// form. The slice is a copy; the set itself is immutable.
func (c *Classifier) Names() []string {
	names := make([]string, 0, len(c.names))
	for name := range c.names {
		names = append(names, name)
	}
	return names
}

// BaseName extracts the filename component of path, accepting both
// forward- and back-slash separators regardless of host platform since
// hook events may carry either style. A path ending in a separator has no
// filename component and yields "".
func BaseName(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if path == "" || strings.HasSuffix(path, "/") {
		return ""
	}
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	return path
}
