package docs

import (
	"path"
	"strings"
)

// RelativeURL returns u relative to other. When the last segment of other
// looks like a file name it is dropped first. A trailing slash on u is kept.
func RelativeURL(u, other string) string {
	if other != "." {
		dir, file := path.Split(other)
		if strings.Contains(file, ".") {
			other = dir
		}
	}

	to := segments(u)
	from := segments(other)
	common := 0
	for common < len(to) && common < len(from) && to[common] == from[common] {
		common++
	}

	parts := make([]string, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)

	rel := strings.Join(parts, "/")
	if rel == "" {
		rel = "."
	}
	if strings.HasSuffix(u, "/") {
		rel += "/"
	}
	return rel
}

func segments(p string) []string {
	p = path.Clean("/" + p)
	if p == "/" {
		return nil
	}
	return strings.Split(p[1:], "/")
}
