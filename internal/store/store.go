package store

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/models"
)

const (
	minLimit = 1
	maxLimit = 100
)

// UploadPolicy is the file acceptance policy owned by the upload
// collaborator and enforced by the store as a creation precondition.
type UploadPolicy struct {
	MaxFileSize       int64
	AllowedExtensions []string
}

func (p UploadPolicy) allows(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range p.AllowedExtensions {
		if ext == strings.TrimPrefix(allowed, ".") {
			return true
		}
	}
	return false
}

// NewInterviewParams carries the upload collaborator's result contract:
// a stored file reference plus metadata about the received bytes.
type NewInterviewParams struct {
	Filename       string
	OriginalName   string
	Extension      string
	FileSize       int64
	FilePath       string
	RemoteURL      *string
	RemotePublicID *string
}

// Filter narrows a List call. Zero values match everything.
type Filter struct {
	Status models.Status
	Search string
}

// Store is the process-wide in-memory registry of interviews. It is the only
// shared mutable resource; all mutation goes through Create/Update/Delete so
// the locking discipline stays in one place. Lifetime is process start to
// process end; tests construct a fresh Store each.
type Store struct {
	mu         sync.RWMutex
	policy     UploadPolicy
	interviews map[uuid.UUID]*models.Interview
}

// New creates an empty store with the given upload policy.
func New(policy UploadPolicy) *Store {
	return &Store{
		policy:     policy,
		interviews: make(map[uuid.UUID]*models.Interview),
	}
}

// CheckUpload enforces the upload policy: a positive size within the
// configured maximum and an allowed file extension.
func (s *Store) CheckUpload(size int64, ext string) error {
	if size <= 0 {
		return apperrors.Validation("file size must be greater than zero")
	}
	if s.policy.MaxFileSize > 0 && size > s.policy.MaxFileSize {
		return apperrors.Validation("file too large (%d bytes, max %d)", size, s.policy.MaxFileSize)
	}
	if len(s.policy.AllowedExtensions) > 0 && !s.policy.allows(ext) {
		return apperrors.Validation("unsupported format %q, allowed formats: %s", ext, strings.Join(s.policy.AllowedExtensions, ", "))
	}
	return nil
}

// Create validates the upload metadata, allocates an identifier, and
// registers a fresh interview in the uploaded state.
func (s *Store) Create(params NewInterviewParams) (*models.Interview, error) {
	ext := params.Extension
	if ext == "" {
		ext = filepath.Ext(params.OriginalName)
	}
	if err := s.CheckUpload(params.FileSize, ext); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	iv := &models.Interview{
		ID:             uuid.New(),
		Filename:       params.Filename,
		OriginalName:   params.OriginalName,
		FileSize:       params.FileSize,
		FilePath:       params.FilePath,
		RemoteURL:      params.RemoteURL,
		RemotePublicID: params.RemotePublicID,
		Status:         models.StatusUploaded,
		Tags:           []models.Tag{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	s.interviews[iv.ID] = iv
	s.mu.Unlock()

	return iv.Clone(), nil
}

// Get returns a snapshot of the interview with the given id.
func (s *Store) Get(id uuid.UUID) (*models.Interview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	iv, ok := s.interviews[id]
	if !ok {
		return nil, apperrors.NotFound("interview %s not found", id)
	}
	return iv.Clone(), nil
}

// List returns a page of interviews ordered by creation time, newest first,
// together with the total count after filtering. Limit is clamped to
// [1,100]; a negative offset is treated as zero.
func (s *Store) List(filter Filter, limit, offset int) ([]models.Interview, int) {
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	s.mu.RLock()
	matched := make([]*models.Interview, 0, len(s.interviews))
	search := strings.ToLower(filter.Search)
	for _, iv := range s.interviews {
		if filter.Status != "" && iv.Status != filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(iv.OriginalName), search) {
			continue
		}
		matched = append(matched, iv)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID.String() < matched[j].ID.String()
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]models.Interview, 0, end-offset)
	for _, iv := range matched[offset:end] {
		page = append(page, *iv.Clone())
	}
	s.mu.RUnlock()

	return page, total
}

// Update applies mutate to the stored record under the store lock and
// refreshes updated_at. The mutation either fully applies or, when mutate
// returns an error, leaves the record untouched.
func (s *Store) Update(id uuid.UUID, mutate func(*models.Interview) error) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return nil, apperrors.NotFound("interview %s not found", id)
	}

	scratch := iv.Clone()
	if err := mutate(scratch); err != nil {
		return nil, err
	}
	scratch.UpdatedAt = time.Now().UTC()
	s.interviews[id] = scratch

	return scratch.Clone(), nil
}

// Delete removes the interview and returns its final snapshot so the caller
// can release the underlying file reference. Tags go with the record.
func (s *Store) Delete(id uuid.UUID) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return nil, apperrors.NotFound("interview %s not found", id)
	}
	delete(s.interviews, id)
	return iv, nil
}

// Len returns the number of registered interviews.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.interviews)
}

// Snapshot returns copies of every interview, in no particular order. The
// stats aggregator recomputes from this on every call.
func (s *Store) Snapshot() []models.Interview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Interview, 0, len(s.interviews))
	for _, iv := range s.interviews {
		all = append(all, *iv.Clone())
	}
	return all
}
