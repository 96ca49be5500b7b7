// Package store is the profile document store.
package store

// Snapshot is the result of reading one document.
type Snapshot struct {
	Exists bool           `json:"exists"`
	Data   map[string]any `json:"data,omitempty"`
}
