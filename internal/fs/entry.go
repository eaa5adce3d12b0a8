package fs

import "time"

// modifiedTimeLayout is the fixed local-time format used everywhere an
// entry's modification time is shown.
const modifiedTimeLayout = "2006-01-02 15:04:05"

// Entry represents a single file or directory on disk.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// ModifiedLabel formats the modification time for display. A zero timestamp
// means the time could not be determined.
func (e Entry) ModifiedLabel() string {
	if e.Modified.IsZero() {
		return "Unknown"
	}
	return e.Modified.Local().Format(modifiedTimeLayout)
}
