package model

import "time"

// DragEventKind identifies which drag lifecycle callback an event belongs to
type DragEventKind string

const (
	// DragAdded fires on the target zone when an item is dropped into it from another zone
	DragAdded DragEventKind = "added"
	// DragEnded fires on the source zone when a drag gesture completes, including reorders
	DragEnded DragEventKind = "ended"
)

// Move describes a completed drag gesture as reported by the drag-and-drop widget
type Move struct {
	Item     PlayerID
	From     ZoneName
	To       ZoneName
	OldIndex int
	NewIndex int
}

// IsReorder reports whether the item stayed in its zone
func (m Move) IsReorder() bool {
	return m.From == m.To
}

// DragEvent is emitted to zone handlers after a move has been applied
type DragEvent struct {
	Kind      DragEventKind
	BoardID   BoardID
	Item      PlayerID
	From      ZoneName
	To        ZoneName
	OldIndex  int
	NewIndex  int // index actually used after clamping
	Timestamp time.Time
}
