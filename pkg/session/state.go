// Package session owns the in-memory state of one lazyicons run and the
// single function that mutates it.
package session

import "github.com/marjoballabani/lazyicons/pkg/skillicons"

// State is everything the user can change during a session. It is created
// by the app, handed to the gui by reference and discarded on exit.
type State struct {
	Catalog    *skillicons.Catalog
	Selection  *skillicons.Selection
	Settings   skillicons.Settings
	SearchMode skillicons.SearchMode
	Query      string

	dragging  bool
	dragIndex int
}

// NewState returns a session with an empty selection.
func NewState(catalog *skillicons.Catalog, settings skillicons.Settings, mode skillicons.SearchMode) *State {
	return &State{
		Catalog:    catalog,
		Selection:  skillicons.NewSelection(),
		Settings:   settings,
		SearchMode: mode,
	}
}

// Filtered returns the catalog entries matching the current query.
func (s *State) Filtered() []skillicons.IconID {
	return skillicons.Search(s.Catalog.IDs(), s.Query, s.SearchMode)
}

// Output renders the current selection. It is recomputed on every call.
func (s *State) Output() skillicons.Output {
	return skillicons.Render(s.Selection, s.Settings)
}

// HasOutput reports whether there is anything worth showing or copying.
func (s *State) HasOutput() bool {
	return s.Selection.Len() > 0
}

// Dragging returns the source index of the move in progress, if any.
func (s *State) Dragging() (int, bool) {
	return s.dragIndex, s.dragging
}
