package serviceimpl

import (
	"time"

	"project-management-api/domain/models"
	"project-management-api/domain/services"
	"project-management-api/pkg/utils"
)

// createdMatcher reports whether a creation time passes a date filter
// evaluated at now. Calendar-day filters use now's location.
func createdMatcher(filter services.TaskFilter, now time.Time) func(time.Time) bool {
	loc := now.Location()
	switch filter {
	case services.FilterToday:
		return func(created time.Time) bool {
			return utils.SameDay(created, now, loc)
		}
	case services.FilterYesterday:
		yesterday := now.AddDate(0, 0, -1)
		return func(created time.Time) bool {
			return utils.SameDay(created, yesterday, loc)
		}
	case services.FilterThisWeek:
		return withinLastDays(now, 7)
	case services.FilterThisMonth:
		return withinLastDays(now, 30)
	default:
		return nil
	}
}

func withinLastDays(now time.Time, days int) func(time.Time) bool {
	from := now.AddDate(0, 0, -days)
	return func(created time.Time) bool {
		return !created.Before(from) && !created.After(now)
	}
}

func filterTasks(tasks []*models.Task, filter services.TaskFilter, now time.Time) []*models.Task {
	match := createdMatcher(filter, now)
	if match == nil {
		return tasks
	}

	filtered := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if match(task.CreatedOn) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
