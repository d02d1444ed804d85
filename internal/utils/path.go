package utils

import (
	"os"
	"runtime"
	"strings"
)

// ToPlatformPath converts a local path as written by the server into a path
// for the host platform.
//
// The server records local paths with Windows separators and, for workspaces
// mapped on Unix hosts, prepends a drive designator ("C:") it has no business
// adding. On Windows the path only has its separators normalised; elsewhere
// the drive designator is also stripped.
//
// Parameters:
//
//	path - local path text taken from a wire attribute
//
// Returns:
//
//	string - the same path using the host separator
//
// Example usage:
//
//	utils.ToPlatformPath(`C:\work\proj\a.txt`) // "/work/proj/a.txt" on Linux
func ToPlatformPath(path string) string {
	return toPlatformPath(path, os.PathSeparator, runtime.GOOS == "windows")
}

// toPlatformPath is the host-independent core of ToPlatformPath.
func toPlatformPath(path string, sep rune, windows bool) string {
	if path == "" {
		return path
	}

	if !windows && hasDriveDesignator(path) {
		path = path[2:]
	}

	return strings.Map(func(r rune) rune {
		if r == '\\' || r == '/' {
			return sep
		}
		return r
	}, path)
}

func hasDriveDesignator(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
