package models

import "path/filepath"

// Task is one file path queued for content search.
type Task string

// Path returns the task as a cleaned filesystem path.
func (t Task) Path() string {
	return filepath.Clean(string(t))
}
