// Package holder implements the wallet role: storing issued
// credentials and bundling selected ones into a signed presentation.
package holder

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
	"github.com/rmatsuoka744/vc-system/pkg/model"
)

// Store is an in-memory, mutex-guarded credential store. One Store
// instance backs the whole process — there is no per-request storage
// handle to open or close.
type Store struct {
	mu          sync.RWMutex
	credentials map[string]model.CredentialResponse
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{credentials: make(map[string]model.CredentialResponse)}
}

// Put stores cred under a freshly generated id and returns it.
func (s *Store) Put(cred model.CredentialResponse) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[id] = cred

	return id
}

// List returns every stored credential, in no particular order.
func (s *Store) List() []model.CredentialResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CredentialResponse, 0, len(s.credentials))
	for _, c := range s.credentials {
		out = append(out, c)
	}
	return out
}

// Get fetches one credential by id.
func (s *Store) Get(id string) (model.CredentialResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.credentials[id]
	if !ok {
		return model.CredentialResponse{}, helpers.NewErrorDetails(helpers.KindCredentialNotFound, id)
	}
	return cred, nil
}
