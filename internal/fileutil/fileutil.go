// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "academic-cn" -> false (name)
//   - "./custom.yaml" -> true (relative path)
//   - "../shared/spec.yaml" -> true (parent path)
//   - "/absolute/path.yaml" -> true (absolute)
//   - "C:\windows\path.yaml" -> true (Windows)
//   - "my-spec" -> false (hyphenated name)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
