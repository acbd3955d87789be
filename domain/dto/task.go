package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChecklistItemRequest struct {
	// ID is echoed back from list responses so edits keep item identity.
	ID       string `json:"_id"`
	Title    string `json:"title" validate:"required"`
	IsMarked bool   `json:"isMarked"`
}

type CreateTaskRequest struct {
	Title      string                 `json:"title" validate:"required"`
	Checklists []ChecklistItemRequest `json:"checklists" validate:"required,dive"`
	Priority   string                 `json:"priority" validate:"required,oneof=low moderate high"`
	DueDate    string                 `json:"dueDate"`
	Phase      string                 `json:"phase" validate:"omitempty,oneof=todo backlog inProgress done"`
}

// EditTaskRequest uses pointers so "absent" is distinguishable from a value.
// Empty strings still count as absent; an explicit [] replaces the checklist.
type EditTaskRequest struct {
	Title      *string                 `json:"title"`
	Checklists *[]ChecklistItemRequest `json:"checklists" validate:"omitempty,dive"`
	Priority   *string                 `json:"priority" validate:"omitempty,oneof=low moderate high"`
	DueDate    *string                 `json:"dueDate"`
}

type UpdatePhaseRequest struct {
	Phase string `json:"phase" form:"phase" validate:"required,oneof=todo backlog inProgress done"`
}

type CreateTaskResponse struct {
	TaskID  uuid.UUID `json:"taskId"`
	Message string    `json:"message"`
}

type ChecklistItemResponse struct {
	ID       uuid.UUID `json:"_id"`
	Title    string    `json:"title"`
	IsMarked bool      `json:"isMarked"`
}

type TaskSummaryResponse struct {
	Title            string                  `json:"title"`
	Priority         string                  `json:"priority,omitempty"`
	CreatedOn        time.Time               `json:"createdOn"`
	DueDate          *time.Time              `json:"dueDate,omitempty"`
	TaskID           uuid.UUID               `json:"taskId"`
	Phase            string                  `json:"phase"`
	Checklists       []ChecklistItemResponse `json:"checklists"`
	TotalChecklists  int                     `json:"totalChecklists"`
	MarkedChecklists int                     `json:"markedChecklists"`
}

// GroupedTasks partitions a user's tasks by phase.
type GroupedTasks struct {
	Backlog    []TaskSummaryResponse `json:"backlog"`
	Todo       []TaskSummaryResponse `json:"todo"`
	InProgress []TaskSummaryResponse `json:"inProgress"`
	Done       []TaskSummaryResponse `json:"done"`
}

func NewGroupedTasks() *GroupedTasks {
	return &GroupedTasks{
		Backlog:    []TaskSummaryResponse{},
		Todo:       []TaskSummaryResponse{},
		InProgress: []TaskSummaryResponse{},
		Done:       []TaskSummaryResponse{},
	}
}

// Len is the number of tasks across all buckets.
func (g *GroupedTasks) Len() int {
	return len(g.Backlog) + len(g.Todo) + len(g.InProgress) + len(g.Done)
}

type ListTasksResponse struct {
	GroupedTasks *GroupedTasks `json:"groupedTasks"`
}

type AnalyticsResponse struct {
	PhaseCounts           map[string]int `json:"phaseCounts"`
	PriorityCounts        map[string]int `json:"priorityCounts"`
	DueDateNotPassedCount int            `json:"dueDateNotPassedCount"`
}

type ChecklistDetailResponse struct {
	Title    string `json:"title"`
	IsMarked bool   `json:"isMarked"`
}

type TaskDetailResponse struct {
	Title            string                    `json:"title"`
	Priority         string                    `json:"priority,omitempty"`
	TotalChecklists  int                       `json:"totalChecklists"`
	MarkedChecklists int                       `json:"markedChecklists"`
	DueDate          *time.Time                `json:"dueDate,omitempty"`
	Checklists       []ChecklistDetailResponse `json:"checklists"`
}
