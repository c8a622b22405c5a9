package ui

import "slices"

// selection tracks the screenshots marked with tab, keyed by path and kept
// in the order they were marked
type selection struct {
	paths []string
}

func newSelection() *selection {
	return &selection{}
}

func (s *selection) Add(path string) {
	if !s.Contains(path) {
		s.paths = append(s.paths, path)
	}
}

func (s *selection) Remove(path string) {
	s.paths = slices.DeleteFunc(s.paths, func(p string) bool { return p == path })
}

func (s *selection) Contains(path string) bool {
	return slices.Contains(s.paths, path)
}

func (s *selection) Paths() []string {
	return slices.Clone(s.paths)
}

func (s *selection) Len() int {
	return len(s.paths)
}

func (s *selection) Clear() {
	s.paths = nil
}

// Retain drops paths that are no longer listed
func (s *selection) Retain(items []Item) {
	s.paths = slices.DeleteFunc(s.paths, func(p string) bool {
		return !slices.ContainsFunc(items, func(i Item) bool { return i.Path == p })
	})
}
