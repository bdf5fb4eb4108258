package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sabihanjum/Job-Portal/pkg/sdk"
)

const credentialsFile = "credentials.json"

// FileStore implements sdk.CredentialStore using a JSON file under the
// user's home directory. The principal and the access token live in the one
// record and are written and removed together; a record missing either half,
// or one that does not parse, reads back as "not logged in".
type FileStore struct {
	path string
}

var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at ~/.job-portal.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewFileStoreAt(filepath.Join(home, ".job-portal"))
}

// NewFileStoreAt creates a FileStore rooted at dir, creating it if needed.
func NewFileStoreAt(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return &FileStore{
		path: filepath.Join(dir, credentialsFile),
	}, nil
}

// SaveCredentials writes the session snapshot. Incomplete pairs are refused
// so the stored record can never hold a token without a principal or vice
// versa.
func (s *FileStore) SaveCredentials(credentials *sdk.Credentials) error {
	if !credentials.Complete() {
		return sdk.ErrIncompleteCredentials
	}
	data, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// LoadCredentials reads the stored snapshot. Absent, unreadable, and
// half-written records all return (nil, nil): storage corruption degrades
// to logged-out, never to a partial session.
func (s *FileStore) LoadCredentials() (*sdk.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	// Decode the two well-known fields separately so a valid token paired
	// with an unparsable principal still fails safe.
	var record struct {
		User        json.RawMessage `json:"user"`
		AccessToken string          `json:"access_token"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil
	}
	if record.AccessToken == "" || len(record.User) == 0 {
		return nil, nil
	}

	var principal sdk.Principal
	if err := json.Unmarshal(record.User, &principal); err != nil {
		return nil, nil
	}

	creds := &sdk.Credentials{
		Principal:   principal,
		AccessToken: record.AccessToken,
	}
	if !creds.Complete() {
		return nil, nil
	}
	return creds, nil
}

// DeleteCredentials removes the stored snapshot. Idempotent.
func (s *FileStore) DeleteCredentials() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
