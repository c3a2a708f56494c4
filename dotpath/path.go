package dotpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator joins path segments.
const Separator = "."

// Split parses a dotted path into its segments.
// "a" -> [a], "a.b.c" -> [a b c]; "", "a..b", ".a" and "a." are rejected.
func Split(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}

	segments := strings.Split(path, Separator)

	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: invalid path %q: empty segment", ErrInvalidArgument, path)
		}
	}

	return segments, nil
}

// Join joins segments into a dotted path.
func Join(segments ...string) string {
	return strings.Join(segments, Separator)
}

// IsDotted reports whether path has more than one segment.
func IsDotted(path string) bool {
	return strings.Contains(path, Separator)
}

// Leaf returns the last segment of path.
// "Items.ProductID" -> "ProductID".
func Leaf(path string) string {
	if i := strings.LastIndex(path, Separator); i >= 0 {
		return path[i+1:]
	}

	return path
}

// index parses seg as an array index within [0, n). Only canonical decimal
// forms are accepted, so "01" and "+1" do not address elements.
func index(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n || strconv.Itoa(i) != seg {
		return 0, false
	}

	return i, true
}
