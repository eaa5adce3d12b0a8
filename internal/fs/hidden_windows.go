//go:build windows

package fs

// IsHidden checks if a file is hidden on this platform (Windows). Entries
// whose hidden attribute cannot be read fall back to the Unix dot convention.
func IsHidden(fullPath string, name string) bool {
	attrs, err := getFileAttributes(fullPath, name)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&fileAttributeHidden != 0
}
