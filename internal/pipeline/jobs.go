package pipeline

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the state of a processing job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusParsing   JobStatus = "parsing"
	StatusMatching  JobStatus = "matching"
	StatusDetecting JobStatus = "detecting"
	StatusLinking   JobStatus = "linking"
	StatusGrouping  JobStatus = "grouping"
	StatusExporting JobStatus = "exporting"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
	StatusPartial   JobStatus = "partial"
)

// Job tracks one manuscript through the pipeline. SourcePath is the
// structured manuscript file; PDFPath, when set, is the print edition used
// for page alignment.
type Job struct {
	mu sync.Mutex

	ID         string `json:"job_id"`
	SourcePath string `json:"source_path"`
	PDFPath    string `json:"pdf_path,omitempty"`
	Title      string `json:"title"`
	Author     string `json:"author,omitempty"`
	Slug       string `json:"slug"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	BookPath    string    `json:"book_path,omitempty"`
	ChunksPath  string    `json:"chunks_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	errors []string
}

// Progress tracks per-stage counts.
type Progress struct {
	Paragraphs   int      `json:"paragraphs"`
	Chapters     int      `json:"chapters"`
	PagesMatched int      `json:"pages_matched"`
	QuranRefs    int      `json:"quran_refs"`
	HadithRefs   int      `json:"hadith_refs"`
	Footnotes    int      `json:"footnotes"`
	Groups       int      `json:"groups"`
	Errors       []string `json:"errors"`
}

// NewJob builds a queued job for a source file.
func NewJob(sourcePath, pdfPath, title, author string) *Job {
	now := time.Now()
	slug := Slugify(title)
	if slug == "" {
		slug = "book"
	}
	return &Job{
		ID:         uuid.NewString(),
		SourcePath: sourcePath,
		PDFPath:    pdfPath,
		Title:      title,
		Author:     author,
		Slug:       slug,
		Status:     StatusQueued,
		Phase:      "queued",
		CreatedAt:  now,
		UpdatedAt:  now,
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
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetProgress merges stage counts into the job's progress.
func (j *Job) SetProgress(update func(*Progress)) {
	j.mu.Lock()
	defer j.mu.Unlock()
	update(&j.Progress)
	j.UpdatedAt = time.Now()
}

// SetOutputs records the export file paths.
func (j *Job) SetOutputs(bookPath, chunksPath string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.BookPath = bookPath
	j.ChunksPath = chunksPath
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID         string    `json:"job_id"`
	SourcePath string    `json:"source_path"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Status     JobStatus `json:"status"`
	Phase      string    `json:"phase"`
	Progress   Progress  `json:"progress"`
	BookPath   string    `json:"book_path,omitempty"`
	ChunksPath string    `json:"chunks_path,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	progress := j.Progress
	progress.Errors = errs
	return JobSnapshot{
		ID:         j.ID,
		SourcePath: j.SourcePath,
		Title:      j.Title,
		Slug:       j.Slug,
		Status:     j.Status,
		Phase:      j.Phase,
		Progress:   progress,
		BookPath:   j.BookPath,
		ChunksPath: j.ChunksPath,
	}
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

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

var (
	slugCleanRe  = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashesRe = regexp.MustCompile(`-+`)
)

// Slugify lowercases a title into a filesystem- and URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleanRe.ReplaceAllString(s, "-")
	s = slugDashesRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
