package resumes

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoListOrdersNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Now().UTC()

	for i, id := range []string{"old", "mid", "new"} {
		err := repo.CreateResume(ctx, Resume{ID: id, UploadedAt: base.Add(time.Duration(i) * time.Minute)})
		if err != nil {
			t.Fatalf("CreateResume: %v", err)
		}
	}

	list, err := repo.ListResumes(ctx, 2, 0)
	if err != nil {
		t.Fatalf("ListResumes: %v", err)
	}
	if len(list) != 2 || list[0].ID != "new" || list[1].ID != "mid" {
		t.Fatalf("list = %+v", list)
	}

	rest, err := repo.ListResumes(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListResumes offset: %v", err)
	}
	if len(rest) != 1 || rest[0].ID != "old" {
		t.Fatalf("rest = %+v", rest)
	}

	empty, err := repo.ListResumes(ctx, 2, 10)
	if err != nil {
		t.Fatalf("ListResumes past end: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty = %+v", empty)
	}
}

func TestMemoryRepoLatestAnalysisReturnsLast(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.CreateResume(ctx, Resume{ID: "resume-1"}); err != nil {
		t.Fatalf("CreateResume: %v", err)
	}
	for _, id := range []string{"first", "second"} {
		if err := repo.CreateAnalysis(ctx, Analysis{ID: id, ResumeID: "resume-1"}); err != nil {
			t.Fatalf("CreateAnalysis: %v", err)
		}
	}

	latest, err := repo.LatestAnalysis(ctx, "resume-1")
	if err != nil {
		t.Fatalf("LatestAnalysis: %v", err)
	}
	if latest.ID != "second" {
		t.Fatalf("latest = %q, want %q", latest.ID, "second")
	}
}

func TestMemoryRepoCreateAnalysisRequiresResume(t *testing.T) {
	repo := NewMemoryRepo()

	err := repo.CreateAnalysis(context.Background(), Analysis{ID: "a", ResumeID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
