package sdk

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Job is a posting as returned by the backend.
type Job struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	SalaryMin       float64   `json:"salary_min"`
	SalaryMax       float64   `json:"salary_max"`
	RequiredSkills  []string  `json:"required_skills"`
	ExperienceYears int       `json:"experience_years"`
	PostedBy        int64     `json:"posted_by"`
	PostedByName    string    `json:"posted_by_name"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobInput carries the writable posting fields for create and update.
type JobInput struct {
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	Requirements    string   `json:"requirements,omitempty"`
	Company         string   `json:"company,omitempty"`
	Location        string   `json:"location,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	SalaryMin       float64  `json:"salary_min,omitempty"`
	SalaryMax       float64  `json:"salary_max,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
}

// JobApplication ties a candidate's resume to a posting.
type JobApplication struct {
	ID            int64     `json:"id"`
	Job           int64     `json:"job"`
	JobTitle      string    `json:"job_title"`
	Candidate     int64     `json:"candidate"`
	CandidateName string    `json:"candidate_name"`
	Resume        int64     `json:"resume"`
	Status        string    `json:"status"`
	MatchScore    float64   `json:"match_score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListJobsOptions filters job listings. Zero values are omitted.
type ListJobsOptions struct {
	Search   string
	Location string
	JobType  string
}

// ListJobs returns postings, optionally filtered.
func (c *Client) ListJobs(ctx context.Context, opts ListJobsOptions) ([]Job, error) {
	query := url.Values{}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Location != "" {
		query.Set("location", opts.Location)
	}
	if opts.JobType != "" {
		query.Set("job_type", opts.JobType)
	}

	var jobs []Job
	if err := c.get(ctx, "/jobs/jobs/", query, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches a single posting.
func (c *Client) GetJob(ctx context.Context, id int64) (*Job, error) {
	var job Job
	if err := c.get(ctx, fmt.Sprintf("/jobs/jobs/%d/", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob posts a new job on behalf of the authenticated recruiter.
func (c *Client) CreateJob(ctx context.Context, input JobInput) (*Job, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("job title is required")
	}
	var job Job
	if err := c.post(ctx, "/jobs/jobs/", input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob applies a partial update to a posting.
func (c *Client) UpdateJob(ctx context.Context, id int64, input JobInput) (*Job, error) {
	var job Job
	if err := c.patch(ctx, fmt.Sprintf("/jobs/jobs/%d/", id), input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a posting.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/jobs/jobs/%d/", id))
}

// ApplyToJob submits an application with the given resume.
func (c *Client) ApplyToJob(ctx context.Context, jobID, resumeID int64) (*JobApplication, error) {
	body := map[string]int64{"resume": resumeID}
	var application JobApplication
	if err := c.post(ctx, fmt.Sprintf("/jobs/jobs/%d/apply/", jobID), body, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

// ListApplications returns the applications visible to the caller: their own
// for candidates, their postings' for recruiters.
func (c *Client) ListApplications(ctx context.Context) ([]JobApplication, error) {
	var applications []JobApplication
	if err := c.get(ctx, "/jobs/applications/", nil, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}
