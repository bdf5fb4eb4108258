package sdk

import "sync"

// MemoryStore is a process-local CredentialStore. It backs tests and
// embedders that do not want sessions surviving a restart.
type MemoryStore struct {
	mu    sync.Mutex
	creds *Credentials
}

var _ CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveCredentials(credentials *Credentials) error {
	if !credentials.Complete() {
		return ErrIncompleteCredentials
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *credentials
	s.creds = &copied
	return nil
}

func (s *MemoryStore) LoadCredentials() (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.creds.Complete() {
		return nil, nil
	}
	copied := *s.creds
	return &copied, nil
}

func (s *MemoryStore) DeleteCredentials() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return nil
}
