package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mzaikin/boardroom/internal/client/models"
)

const startTimeLayout = "2006-01-02 15:04"

// ListMeetings prints the meeting mirror, soonest first.
func (a *App) ListMeetings(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	meetings := a.meetings.Meetings()
	if len(meetings) == 0 {
		fmt.Println("No meetings")
		return nil
	}

	for _, m := range meetings {
		fmt.Printf("%s  %s  [%s]  %s (%s, %d attendees)\n",
			m.ID, m.StartsAt.Local().Format(startTimeLayout), m.Status, m.Title, m.Location, m.AttendeeCount())
	}
	return nil
}

// ScheduleMeeting interactively collects the meeting fields and creates it.
func (a *App) ScheduleMeeting(ctx context.Context) error {
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

	startRaw, err := getSimpleText(a.reader, "Starts at (YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	startsAt, err := time.ParseInLocation(startTimeLayout, startRaw, time.Local)
	if err != nil {
		fmt.Println("Invalid start time:", err.Error())
		return nil
	}

	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	attendeesRaw, err := getSimpleText(a.reader, "Attendee ids (comma separated, empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	var attendees []string
	for _, id := range strings.Split(attendeesRaw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			attendees = append(attendees, id)
		}
	}

	created, err := a.meetings.Schedule(ctx, models.Meeting{
		Title:       title,
		StartsAt:    startsAt,
		EndsAt:      startsAt.Add(time.Hour),
		Location:    location,
		Category:    category,
		AttendeeIDs: attendees,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		fmt.Println("Could not schedule meeting:", err.Error())
		return err
	}

	a.recorder.Record("meeting.schedule", created.ID)
	fmt.Println("Scheduled", created.ID)
	return nil
}

// CancelMeeting removes a meeting by id.
func (a *App) CancelMeeting(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	if _, ok := a.meetings.Get(id); !ok {
		fmt.Println("Unknown meeting:", id)
		return nil
	}

	if err := a.meetings.Cancel(ctx, id); err != nil {
		fmt.Println("Could not cancel meeting:", err.Error())
		return err
	}

	a.recorder.Record("meeting.cancel", id)
	fmt.Println("Cancelled", id)
	return nil
}
