package models

import (
	"time"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseBacklog    Phase = "backlog"
	PhaseTodo       Phase = "todo"
	PhaseInProgress Phase = "inProgress"
	PhaseDone       Phase = "done"
)

// Phases lists every workflow phase in display order.
var Phases = []Phase{PhaseBacklog, PhaseTodo, PhaseInProgress, PhaseDone}

func (p Phase) Valid() bool {
	switch p {
	case PhaseBacklog, PhaseTodo, PhaseInProgress, PhaseDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityModerate Priority = "moderate"
	PriorityHigh     Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityModerate, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityModerate, PriorityHigh:
		return true
	}
	return false
}

// ChecklistItem is embedded in its task row as JSON, it has no table of its own.
type ChecklistItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	IsMarked bool      `json:"isMarked"`
}

type Task struct {
	ID               uuid.UUID       `gorm:"primaryKey;type:uuid"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title            string          `gorm:"not null"`
	Priority         Priority        `gorm:"size:16"`
	Phase            Phase           `gorm:"size:16;not null;default:'todo'"`
	DueDate          *time.Time
	CreatedOn        time.Time       `gorm:"not null;index"`
	Checklists       []ChecklistItem `gorm:"serializer:json;type:text"`
	TotalChecklists  int
	MarkedChecklists int
	// Position orders a user's tasks; it is bumped whenever a task is
	// re-appended by a phase change.
	Position  int64 `gorm:"not null;index"`
	UpdatedAt time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// RecountChecklists refreshes the derived checklist counters.
func (t *Task) RecountChecklists() {
	t.TotalChecklists = len(t.Checklists)
	t.MarkedChecklists = 0
	for _, item := range t.Checklists {
		if item.IsMarked {
			t.MarkedChecklists++
		}
	}
}

// HasDueDate reports whether a due date is set.
func (t *Task) HasDueDate() bool {
	return t.DueDate != nil && !t.DueDate.IsZero()
}
