package sdk

import (
	"context"
	"encoding/json"
	"time"
)

// AuditLog records a user-visible action taken on the platform.
type AuditLog struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Action    string          `json:"action"`
	ModelName string          `json:"model_name"`
	ObjectID  int64           `json:"object_id"`
	Changes   json.RawMessage `json:"changes"`
	IPAddress string          `json:"ip_address"`
	CreatedAt time.Time       `json:"created_at"`
}

// CorrectionInput reports a wrong parsed-resume field back to the backend.
type CorrectionInput struct {
	Resume    int64  `json:"resume"`
	FieldName string `json:"field_name"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
}

// SubmitCorrection files a parsed-field correction.
func (c *Client) SubmitCorrection(ctx context.Context, input CorrectionInput) error {
	return c.post(ctx, "/feedback/correction/", input, nil)
}

// AuditLogs returns the platform audit trail (admin only, enforced
// server-side).
func (c *Client) AuditLogs(ctx context.Context) ([]AuditLog, error) {
	var logs []AuditLog
	if err := c.get(ctx, "/feedback/audit-logs/", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
