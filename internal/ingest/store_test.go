package ingest

import (
	"context"
	"path/filepath"
	"testing"

	"jobsift/internal/types"
)

func TestJobStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.db")
	store, err := OpenJobStore(path)
	if err != nil {
		t.Fatalf("OpenJobStore() failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	jobs := []types.JobRecord{
		{Title: "Service Desk Analyst", Company: "Acme", Description: "Level 1 support.",
			URL: "https://www.seek.com.au/job/123", Source: "seek"},
		{Title: "IT Officer", Company: "Globex", Description: "Desktop duties."},
	}

	inserted, err := store.ImportJobs(ctx, jobs)
	if err != nil {
		t.Fatalf("ImportJobs() failed: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}

	count, err := store.CountJobs(ctx)
	if err != nil {
		t.Fatalf("CountJobs() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	got, err := store.FetchJobs(ctx, 0)
	if err != nil {
		t.Fatalf("FetchJobs() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("fetched %d jobs, want 2", len(got))
	}
	if got[0].ID == 0 || got[1].ID == 0 {
		t.Errorf("fetched jobs missing assigned ids: %+v", got)
	}
	if got[0].Title != "Service Desk Analyst" {
		t.Errorf("first title = %q", got[0].Title)
	}
	if got[0].SourceID != "123" {
		t.Errorf("SourceID = %q, want derived 123", got[0].SourceID)
	}
	if got[1].URL != "" || got[1].Source != "" {
		t.Errorf("expected empty url/source for second job, got %+v", got[1])
	}
}

func TestJobStoreFetchLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.db")
	store, err := OpenJobStore(path)
	if err != nil {
		t.Fatalf("OpenJobStore() failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	jobs := []types.JobRecord{
		{Title: "A"}, {Title: "B"}, {Title: "C"},
	}
	if _, err := store.ImportJobs(ctx, jobs); err != nil {
		t.Fatalf("ImportJobs() failed: %v", err)
	}

	got, err := store.FetchJobs(ctx, 2)
	if err != nil {
		t.Fatalf("FetchJobs() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("fetched %d jobs, want 2", len(got))
	}
	if got[0].Title != "A" || got[1].Title != "B" {
		t.Errorf("fetch order wrong: %+v", got)
	}
}
