package sdk

import (
	"context"
	"fmt"
	"time"
)

// Interview is a scheduled session for an application.
type Interview struct {
	ID              int64     `json:"id"`
	Application     int64     `json:"application"`
	CandidateName   string    `json:"candidate_name"`
	JobTitle        string    `json:"job_title"`
	ScheduledBy     int64     `json:"scheduled_by"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	DurationMinutes int       `json:"duration_minutes"`
	MeetingLink     string    `json:"meeting_link"`
	Notes           string    `json:"notes"`
	Questions       []string  `json:"questions"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ScheduleInterviewInput carries the fields for booking an interview.
type ScheduleInterviewInput struct {
	Application     int64     `json:"application"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	MeetingLink     string    `json:"meeting_link,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// ScheduleInterview books an interview for an application.
func (c *Client) ScheduleInterview(ctx context.Context, input ScheduleInterviewInput) (*Interview, error) {
	var interview Interview
	if err := c.post(ctx, "/interviews/schedule/", input, &interview); err != nil {
		return nil, err
	}
	return &interview, nil
}

// ListInterviews returns the interviews visible to the caller.
func (c *Client) ListInterviews(ctx context.Context) ([]Interview, error) {
	var interviews []Interview
	if err := c.get(ctx, "/interviews/", nil, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

// GenerateInterviewQuestions asks the backend to draft questions for an
// interview based on the job and resume.
func (c *Client) GenerateInterviewQuestions(ctx context.Context, id int64) (*Interview, error) {
	var interview Interview
	if err := c.post(ctx, fmt.Sprintf("/interviews/%d/generate_questions/", id), nil, &interview); err != nil {
		return nil, err
	}
	return &interview, nil
}
