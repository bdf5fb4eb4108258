package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"
)

// Resume is an uploaded document plus whatever the backend's parser pulled
// out of it. Parsing happens server-side; ParsedData is opaque here.
type Resume struct {
	ID              int64           `json:"id"`
	File            string          `json:"file"`
	FileType        string          `json:"file_type"`
	ParsedData      json.RawMessage `json:"parsed_data"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	IsProcessed     bool            `json:"is_processed"`
	ProcessingError string          `json:"processing_error"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// UploadResume sends a resume document as multipart form data.
func (c *Client) UploadResume(ctx context.Context, filename string, content io.Reader) (*Resume, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/resumes/", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resume Resume
	if err := c.send(req, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// ListResumes returns the caller's uploaded resumes.
func (c *Client) ListResumes(ctx context.Context) ([]Resume, error) {
	var resumes []Resume
	if err := c.get(ctx, "/resumes/", nil, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// GetResume fetches one resume with its parsed fields.
func (c *Client) GetResume(ctx context.Context, id int64) (*Resume, error) {
	var resume Resume
	if err := c.get(ctx, fmt.Sprintf("/resumes/%d/", id), nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// ReparseResume asks the backend to run its parser again.
func (c *Client) ReparseResume(ctx context.Context, id int64) (*Resume, error) {
	var resume Resume
	if err := c.post(ctx, fmt.Sprintf("/resumes/%d/reparse/", id), nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}
