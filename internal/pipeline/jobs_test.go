package pipeline

import (
	"testing"
	"time"
)

func TestContentHashHex(t *testing.T) {
	h1 := ContentHashHex([]byte("hello"))
	h2 := ContentHashHex([]byte("hello"))
	h3 := ContentHashHex([]byte("world"))

	if h1 != h2 {
		t.Errorf("same content produced different hashes: %s vs %s", h1, h2)
	}
	if h1 == h3 {
		t.Errorf("different content produced same hash: %s", h1)
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "j1", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get("j1"); got != job {
		t.Fatalf("Get returned %v, want the stored job", got)
	}
	if got := store.Get("missing"); got != nil {
		t.Fatalf("Get of unknown id returned %v, want nil", got)
	}
}

func TestJobStore_FindCompletedByHash(t *testing.T) {
	store := NewJobStore(time.Hour)

	done := &Job{ID: "done", Status: StatusCompleted, ContentHash: "abc", UpdatedAt: time.Now()}
	pending := &Job{ID: "pending", Status: StatusImporting, ContentHash: "abc", UpdatedAt: time.Now()}
	store.Put(done)
	store.Put(pending)

	if got := store.FindCompletedByHash("abc"); got == nil || got.ID != "done" {
		t.Errorf("FindCompletedByHash(abc) = %v, want the completed job", got)
	}
	if got := store.FindCompletedByHash("xyz"); got != nil {
		t.Errorf("FindCompletedByHash(xyz) = %v, want nil", got)
	}
	if got := store.FindCompletedByHash(""); got != nil {
		t.Errorf("FindCompletedByHash(\"\") = %v, want nil", got)
	}
}

func TestJobStore_Cleanup(t *testing.T) {
	store := NewJobStore(time.Minute)

	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-2 * time.Minute)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(stale)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("stale") != nil {
		t.Error("expired job survived cleanup")
	}
	if store.Get("fresh") == nil {
		t.Error("fresh job was evicted")
	}
}

func TestJobStore_CleanupConcurrentWithUpdates(t *testing.T) {
	store := NewJobStore(time.Minute)
	jobs := make([]*Job, 8)
	for i := range jobs {
		jobs[i] = &Job{ID: string(rune('a' + i)), UpdatedAt: time.Now()}
		store.Put(jobs[i])
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			for _, j := range jobs {
				j.SetStatus(StatusImporting, "importing")
			}
		}
	}()
	for i := 0; i < 100; i++ {
		store.Cleanup()
	}
	<-done

	for _, j := range jobs {
		if store.Get(j.ID) == nil {
			t.Errorf("fresh job %s evicted during concurrent updates", j.ID)
		}
	}
}

func TestJob_StatusTransitions(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}

	job.SetStatus(StatusImporting, "importing")
	if job.Status != StatusImporting || job.Phase != "importing" {
		t.Errorf("got status=%s phase=%s", job.Status, job.Phase)
	}
	if job.UpdatedAt.IsZero() {
		t.Error("SetStatus did not touch UpdatedAt")
	}

	job.SetStatus(StatusFailed, "layouting")
	if job.Status != StatusFailed {
		t.Errorf("got status=%s, want failed", job.Status)
	}
}

func TestJob_SetResultClearsFileData(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetFileData([]byte("raw upload"))

	if len(job.FileData()) == 0 {
		t.Fatal("file data not stored")
	}

	job.SetResult("# Root\n", []byte(`{}`), []byte("<svg/>"), 3)

	if job.FileData() != nil {
		t.Error("SetResult should release the raw upload")
	}
	if job.Markdown() != "# Root\n" {
		t.Errorf("Markdown() = %q", job.Markdown())
	}
	if string(job.LayoutJSON()) != `{}` {
		t.Errorf("LayoutJSON() = %q", job.LayoutJSON())
	}
	if string(job.SVG()) != "<svg/>" {
		t.Errorf("SVG() = %q", job.SVG())
	}
}

func TestJob_Snapshot(t *testing.T) {
	job := &Job{
		ID:       "j1",
		DocID:    "d1",
		Status:   StatusQueued,
		Filename: "notes.md",
		Title:    "Notes",
	}
	job.AddError("first problem")

	snap := job.Snapshot()
	if snap.ID != "j1" || snap.DocID != "d1" || snap.Filename != "notes.md" {
		t.Errorf("snapshot fields wrong: %+v", snap)
	}
	if len(snap.Errors) != 1 || snap.Errors[0] != "first problem" {
		t.Errorf("snapshot errors = %v", snap.Errors)
	}

	job.SetResult("# Notes\n", []byte(`{}`), []byte("<svg/>"), 1)
	job.SetStatus(StatusCompleted, "done")

	snap = job.Snapshot()
	if snap.Markdown != "# Notes\n" {
		t.Errorf("completed snapshot markdown = %q", snap.Markdown)
	}
	if snap.NodeCount != 1 {
		t.Errorf("completed snapshot node count = %d", snap.NodeCount)
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "j1"}
	if snap := job.Snapshot(); snap.Errors == nil {
		t.Error("snapshot errors should be an empty slice, not nil")
	}
}
