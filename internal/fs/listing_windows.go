//go:build windows

package fs

// ShouldHideFromListing reports whether an entry should never appear in
// listings, even when hidden files are shown. Windows marks compatibility
// junctions ("Documents and Settings" and friends) as system+reparse; walking
// into them only produces access-denied noise.
func ShouldHideFromListing(fullPath, name string) bool {
	attrs, err := getFileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	const protectedMask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protectedMask == protectedMask
}
