package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

// JobStatus represents the state of an import job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusImporting  JobStatus = "importing"
	StatusLayouting  JobStatus = "layouting"
	StatusRendering  JobStatus = "rendering"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
	StatusDupSkipped JobStatus = "duplicate_skipped"
)

// Job tracks the state of a single document import.
type Job struct {
	mu sync.Mutex

	ID    string `json:"job_id"`
	DocID string `json:"doc_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData   []byte
	markdown   string
	layoutJSON []byte
	svg        []byte
	nodeCount  int
	errors     []string
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// FindCompletedByHash returns a completed job whose imported content
// hashes the same, for duplicate detection.
func (s *JobStore) FindCompletedByHash(hash string) *Job {
	if hash == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, job := range s.jobs {
		job.mu.Lock()
		match := job.Status == StatusCompleted && job.ContentHash == hash
		job.mu.Unlock()
		if match {
			return job
		}
	}
	return nil
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		// UpdatedAt is written under the job mutex, not the store's.
		job.mu.Lock()
		expired := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// SetContentHash records the hash of the imported content.
func (j *Job) SetContentHash(hash string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.ContentHash = hash
}

// SetResult stores the finished artifacts and releases the raw upload.
func (j *Job) SetResult(markdown string, layoutJSON, svg []byte, nodeCount int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.markdown = markdown
	j.layoutJSON = layoutJSON
	j.svg = svg
	j.nodeCount = nodeCount
	j.fileData = nil
	j.UpdatedAt = time.Now()
}

// Markdown returns the serialized dialect text, empty until completed.
func (j *Job) Markdown() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.markdown
}

// LayoutJSON returns the positioned layout, nil until completed.
func (j *Job) LayoutJSON() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.layoutJSON
}

// SVG returns the rendered diagram, nil until completed.
func (j *Job) SVG() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.svg
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string    `json:"job_id"`
	DocID       string    `json:"doc_id"`
	Status      JobStatus `json:"status"`
	Phase       string    `json:"phase"`
	Filename    string    `json:"filename"`
	Title       string    `json:"title"`
	ContentHash string    `json:"content_hash,omitempty"`
	NodeCount   int       `json:"node_count"`
	Markdown    string    `json:"markdown,omitempty"`
	Errors      []string  `json:"errors"`
}

// Snapshot returns a JSON-safe copy of the job state. The serialized
// markdown travels in the snapshot once the job completes; layout and
// SVG are served by their own endpoints.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		DocID:       j.DocID,
		Status:      j.Status,
		Phase:       j.Phase,
		Filename:    j.Filename,
		Title:       j.Title,
		ContentHash: j.ContentHash,
		NodeCount:   j.nodeCount,
		Markdown:    j.markdown,
		Errors:      errs,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
