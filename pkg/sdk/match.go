package sdk

import "context"

// Match is the backend's scored pairing of a resume and a job. All scoring
// happens server-side; the client only displays it.
type Match struct {
	ID              int64    `json:"id"`
	Resume          int64    `json:"resume"`
	Job             int64    `json:"job"`
	JobTitle        string   `json:"job_title"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Explanation     string   `json:"explanation"`
}

// MatchResumeInput selects a resume and optionally restricts the jobs to
// score it against. Empty JobIDs lets the backend pick active postings.
type MatchResumeInput struct {
	ResumeID int64   `json:"resume_id"`
	JobIDs   []int64 `json:"job_ids,omitempty"`
}

// MatchResume scores a resume against jobs.
func (c *Client) MatchResume(ctx context.Context, input MatchResumeInput) ([]Match, error) {
	var response struct {
		Matches []Match `json:"matches"`
	}
	if err := c.post(ctx, "/match/", input, &response); err != nil {
		return nil, err
	}
	return response.Matches, nil
}

// BiasReport flags potentially exclusionary language in a job description.
type BiasReport struct {
	HasBias     bool     `json:"has_bias"`
	BiasedTerms []string `json:"biased_terms"`
	Suggestions []string `json:"suggestions"`
}

// DetectBias submits free text for bias analysis.
func (c *Client) DetectBias(ctx context.Context, text string) (*BiasReport, error) {
	var report BiasReport
	if err := c.post(ctx, "/match/bias/", map[string]string{"text": text}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// FraudReport is the backend's authenticity assessment of a resume.
type FraudReport struct {
	IsSuspicious bool     `json:"is_suspicious"`
	RiskScore    float64  `json:"risk_score"`
	Flags        []string `json:"flags"`
}

// DetectFraud asks the backend to assess a resume for fabricated content.
func (c *Client) DetectFraud(ctx context.Context, resumeID int64) (*FraudReport, error) {
	var report FraudReport
	if err := c.post(ctx, "/match/fraud/", map[string]int64{"resume_id": resumeID}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// LearningPathStep is one suggested resource for closing a skill gap.
type LearningPathStep struct {
	Skill     string   `json:"skill"`
	Resources []string `json:"resources"`
	Duration  string   `json:"duration"`
}

// LearningPath requests suggestions for acquiring the given missing skills.
func (c *Client) LearningPath(ctx context.Context, missingSkills []string) ([]LearningPathStep, error) {
	var response struct {
		LearningPath []LearningPathStep `json:"learning_path"`
	}
	body := map[string][]string{"missing_skills": missingSkills}
	if err := c.post(ctx, "/match/learning-path/", body, &response); err != nil {
		return nil, err
	}
	return response.LearningPath, nil
}
