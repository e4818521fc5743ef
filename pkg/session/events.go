package session

import (
	"github.com/marjoballabani/lazyicons/pkg/skillicons"
	"github.com/pkg/errors"
)

// Event is a user intent dispatched into Reduce.
type Event interface {
	isEvent()
}

// ToggleIcon adds or removes an icon from the selection.
type ToggleIcon struct{ ID skillicons.IconID }

// DragStart grabs the selected icon at Index.
type DragStart struct{ Index int }

// DragDrop moves the grabbed icon to Index. Without a grab it does nothing.
type DragDrop struct{ Index int }

// DragCancel releases the grabbed icon without moving it.
type DragCancel struct{}

// MoveIcon moves a selected icon in one step.
type MoveIcon struct{ From, To int }

// ClearSelection drops every selected icon.
type ClearSelection struct{}

// SetQuery replaces the catalog search query.
type SetQuery struct{ Query string }

// SetTheme sets the output theme.
type SetTheme struct{ Theme skillicons.Theme }

// ToggleTheme flips dark and light.
type ToggleTheme struct{}

// SetPerLine sets icons per line, clamped to the allowed range.
type SetPerLine struct{ PerLine int }

// AdjustPerLine changes icons per line by Delta, clamped to the allowed range.
type AdjustPerLine struct{ Delta int }

// SetAlignment sets the output alignment.
type SetAlignment struct{ Alignment skillicons.Alignment }

// ToggleAlignment flips left and center.
type ToggleAlignment struct{}

func (ToggleIcon) isEvent()      {}
func (DragStart) isEvent()       {}
func (DragDrop) isEvent()        {}
func (DragCancel) isEvent()      {}
func (MoveIcon) isEvent()        {}
func (ClearSelection) isEvent()  {}
func (SetQuery) isEvent()        {}
func (SetTheme) isEvent()        {}
func (ToggleTheme) isEvent()     {}
func (SetPerLine) isEvent()      {}
func (AdjustPerLine) isEvent()   {}
func (SetAlignment) isEvent()    {}
func (ToggleAlignment) isEvent() {}

// ErrUnknownEvent is returned for events Reduce does not handle.
var ErrUnknownEvent = errors.New("unknown session event")

// Reduce applies ev to s. It is the only place session state changes.
// A failed event leaves the state as it was, except that a failed drop
// still releases the grab.
func Reduce(s *State, ev Event) error {
	switch e := ev.(type) {
	case ToggleIcon:
		if e.ID == "" {
			return errors.WithStack(skillicons.ErrEmptyIconID)
		}
		s.Selection.Toggle(e.ID)
		s.dragging = false

	case DragStart:
		if _, ok := s.Selection.At(e.Index); !ok {
			return errors.Wrapf(skillicons.ErrIndexOutOfRange, "drag start at %d", e.Index)
		}
		s.dragging = true
		s.dragIndex = e.Index

	case DragDrop:
		if !s.dragging {
			return nil
		}
		from := s.dragIndex
		s.dragging = false
		return s.Selection.MoveTo(from, e.Index)

	case DragCancel:
		s.dragging = false

	case MoveIcon:
		return s.Selection.MoveTo(e.From, e.To)

	case ClearSelection:
		s.Selection.Clear()
		s.dragging = false

	case SetQuery:
		s.Query = e.Query

	case SetTheme:
		theme, err := skillicons.ParseTheme(string(e.Theme))
		if err != nil {
			return err
		}
		s.Settings.Theme = theme

	case ToggleTheme:
		s.Settings.Theme = s.Settings.Theme.Toggle()

	case SetPerLine:
		s.Settings.PerLine = skillicons.ClampPerLine(e.PerLine)

	case AdjustPerLine:
		s.Settings.PerLine = skillicons.ClampPerLine(s.Settings.PerLine + e.Delta)

	case SetAlignment:
		align, err := skillicons.ParseAlignment(string(e.Alignment))
		if err != nil {
			return err
		}
		s.Settings.Alignment = align

	case ToggleAlignment:
		s.Settings.Alignment = s.Settings.Alignment.Toggle()

	default:
		return errors.Wrapf(ErrUnknownEvent, "%T", ev)
	}
	return nil
}
