package dto

import (
	"github.com/google/uuid"

	"project-management-api/domain/models"
)

func UserToAuthResponse(user *models.User, token, message string) *AuthResponse {
	if user == nil {
		return nil
	}
	return &AuthResponse{
		Token:       token,
		UserID:      user.ID,
		CreaterName: user.Name,
		Message:     message,
	}
}

// ChecklistRequestsToItems keeps client-supplied item ids that parse as
// UUIDs and generates fresh ones otherwise. The result is never nil.
func ChecklistRequestsToItems(reqs []ChecklistItemRequest) []models.ChecklistItem {
	items := make([]models.ChecklistItem, 0, len(reqs))
	for _, r := range reqs {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			id = uuid.New()
		}
		items = append(items, models.ChecklistItem{
			ID:       id,
			Title:    r.Title,
			IsMarked: r.IsMarked,
		})
	}
	return items
}

func TaskToSummaryResponse(task *models.Task) TaskSummaryResponse {
	checklists := make([]ChecklistItemResponse, 0, len(task.Checklists))
	for _, item := range task.Checklists {
		checklists = append(checklists, ChecklistItemResponse{
			ID:       item.ID,
			Title:    item.Title,
			IsMarked: item.IsMarked,
		})
	}

	return TaskSummaryResponse{
		Title:            task.Title,
		Priority:         string(task.Priority),
		CreatedOn:        task.CreatedOn,
		DueDate:          task.DueDate,
		TaskID:           task.ID,
		Phase:            string(task.Phase),
		Checklists:       checklists,
		TotalChecklists:  task.TotalChecklists,
		MarkedChecklists: task.MarkedChecklists,
	}
}

// TaskToDetailResponse is the public view of a task; checklist ids are dropped.
func TaskToDetailResponse(task *models.Task) *TaskDetailResponse {
	if task == nil {
		return nil
	}

	checklists := make([]ChecklistDetailResponse, 0, len(task.Checklists))
	for _, item := range task.Checklists {
		checklists = append(checklists, ChecklistDetailResponse{
			Title:    item.Title,
			IsMarked: item.IsMarked,
		})
	}

	return &TaskDetailResponse{
		Title:            task.Title,
		Priority:         string(task.Priority),
		TotalChecklists:  task.TotalChecklists,
		MarkedChecklists: task.MarkedChecklists,
		DueDate:          task.DueDate,
		Checklists:       checklists,
	}
}
