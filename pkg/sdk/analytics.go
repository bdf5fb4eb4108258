package sdk

import (
	"context"
	"fmt"
)

// DashboardAnalytics is the aggregate view backing the recruiter and admin
// dashboards.
type DashboardAnalytics struct {
	ApplicationsPerJob []struct {
		JobTitle   string `json:"job__title"`
		JobCompany string `json:"job__company"`
		Count      int    `json:"count"`
	} `json:"applications_per_job"`
	AvgMatchScore    float64 `json:"avg_match_score"`
	MostCommonSkills []struct {
		Skill string `json:"skill"`
		Count int    `json:"count"`
	} `json:"most_common_skills"`
	PipelineStats struct {
		TotalApplications int `json:"total_applications"`
		Screening         int `json:"screening"`
		Interview         int `json:"interview"`
		Accepted          int `json:"accepted"`
		Rejected          int `json:"rejected"`
	} `json:"pipeline_stats"`
	TimeToShortlistDays float64 `json:"time_to_shortlist_days"`
	InterviewStats      struct {
		TotalScheduled int `json:"total_scheduled"`
		Completed      int `json:"completed"`
		Upcoming       int `json:"upcoming"`
	} `json:"interview_stats"`
	MatchDistribution struct {
		Excellent int `json:"excellent"`
		Good      int `json:"good"`
		Moderate  int `json:"moderate"`
		Low       int `json:"low"`
	} `json:"match_distribution"`
}

// DashboardStats fetches the portal-wide analytics aggregate.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardAnalytics, error) {
	var analytics DashboardAnalytics
	if err := c.get(ctx, "/analytics/dashboard/", nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// JobAnalytics is per-posting application and match statistics.
type JobAnalytics struct {
	JobID             int64   `json:"job_id"`
	TotalApplications int     `json:"total_applications"`
	AvgMatchScore     float64 `json:"avg_match_score"`
	StatusBreakdown   struct {
		Applied   int `json:"applied"`
		Screening int `json:"screening"`
		Interview int `json:"interview"`
		Accepted  int `json:"accepted"`
		Rejected  int `json:"rejected"`
	} `json:"status_breakdown"`
}

// JobStats fetches analytics for a single posting.
func (c *Client) JobStats(ctx context.Context, jobID int64) (*JobAnalytics, error) {
	var analytics JobAnalytics
	if err := c.get(ctx, fmt.Sprintf("/analytics/job/%d/", jobID), nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
