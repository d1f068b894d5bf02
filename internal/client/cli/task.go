package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mzaikin/boardroom/internal/client/models"
	"github.com/mzaikin/boardroom/internal/client/stores"
)

// ListTasks prints the action items, due-soonest first.
func (a *App) ListTasks(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	tasks := a.tasks.Tasks(stores.TaskFilter{})
	if len(tasks) == 0 {
		fmt.Println("No action items")
		return nil
	}

	for _, t := range tasks {
		due := "no due date"
		if t.DueDate != nil {
			due = "due " + t.DueDate.Local().Format("2006-01-02")
		}
		fmt.Printf("%s  [%s/%s]  %s (%s)\n", t.ID, t.Status, t.Priority, t.Title, due)
	}
	return nil
}

// AddTask interactively collects the task fields and creates it.
func (a *App) AddTask(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Println("Title is required")
		return nil
	}

	priorityRaw, err := getSimpleText(a.reader, "Priority (High/Medium/Low, empty for Medium)", os.Stdout)
	if err != nil {
		return err
	}
	assignee, err := getSimpleText(a.reader, "Assignee id (empty for unassigned)", os.Stdout)
	if err != nil {
		return err
	}
	dueRaw, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD, empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	task := models.Task{
		Title:      title,
		Priority:   models.TaskPriority(priorityRaw),
		AssigneeID: assignee,
		CreatedAt:  time.Now(),
	}
	if dueRaw != "" {
		due, err := time.ParseInLocation("2006-01-02", dueRaw, time.Local)
		if err != nil {
			fmt.Println("Invalid due date:", err.Error())
			return nil
		}
		task.DueDate = &due
	}

	created, err := a.tasks.Create(ctx, task)
	if err != nil {
		fmt.Println("Could not add action item:", err.Error())
		return err
	}

	a.recorder.Record("task.create", created.ID)
	fmt.Println("Added", created.ID)
	return nil
}

// CompleteTask marks an action item completed.
func (a *App) CompleteTask(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	if _, ok := a.tasks.Get(id); !ok {
		fmt.Println("Unknown action item:", id)
		return nil
	}

	if _, err := a.tasks.Complete(ctx, id); err != nil {
		fmt.Println("Could not complete action item:", err.Error())
		return err
	}

	a.recorder.Record("task.complete", id)
	fmt.Println("Completed", id)
	return nil
}
