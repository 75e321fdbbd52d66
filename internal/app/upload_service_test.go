package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"resume-analyzer/internal/model"
	"resume-analyzer/internal/pkg/textextract"
	"resume-analyzer/internal/session"
)

// fakeExtract returns canned text keyed by filename: "good" files yield a
// plausible resume, "short" files too little text, "broken" files an error.
func fakeExtract(filename string, _ []byte) ([]textextract.Result, []error) {
	switch {
	case strings.HasPrefix(filename, "good"):
		return []textextract.Result{{Filename: filename, FileType: "PDF", Text: sampleResume}}, nil
	case strings.HasPrefix(filename, "short"):
		return []textextract.Result{{Filename: filename, FileType: "PDF", Text: "too short"}}, nil
	default:
		return nil, []error{fmt.Errorf("%s: corrupt document", filename)}
	}
}

func newTestUploadService(t *testing.T, store session.Store, maxFiles, maxDocs int) *UploadService {
	t.Helper()
	return NewUploadService(
		store,
		newTestValidator(),
		fakeExtract,
		zap.NewNop(),
		t.TempDir(),
		maxFiles,
		1<<20,
		maxDocs,
	)
}

func TestUploadMixedValidAndInvalid(t *testing.T) {
	store := session.NewMemoryStore()
	svc := newTestUploadService(t, store, 10, 10)

	result, err := svc.Upload(context.Background(), UploadInput{
		SessionID: "s1",
		Files: []UploadFile{
			{Filename: "good.pdf", Size: 100, Data: []byte("pdf")},
			{Filename: "short.pdf", Size: 100, Data: []byte("pdf")},
		},
	})
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if result.ResumesLoaded != 1 {
		t.Errorf("resumes loaded = %d, want 1", result.ResumesLoaded)
	}
	if len(result.Errors) == 0 {
		t.Error("expected a per-document error for the rejected file")
	}
	if result.Session.State != model.StateReady {
		t.Errorf("state = %q, want ready", result.Session.State)
	}
}

func TestUploadZeroValidDocuments(t *testing.T) {
	store := session.NewMemoryStore()
	svc := newTestUploadService(t, store, 10, 10)

	result, err := svc.Upload(context.Background(), UploadInput{
		SessionID: "s1",
		Files: []UploadFile{
			{Filename: "short.pdf", Size: 100, Data: []byte("pdf")},
			{Filename: "broken.docx", Size: 100, Data: []byte("docx")},
		},
	})
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if result.ResumesLoaded != 0 {
		t.Errorf("resumes loaded = %d, want 0", result.ResumesLoaded)
	}
	if result.Session.State != model.StateError {
		t.Errorf("state = %q, want error", result.Session.State)
	}

	stored, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if stored.Ready() {
		t.Error("session should not be ready with zero documents")
	}
}

func TestUploadTooManyFiles(t *testing.T) {
	store := session.NewMemoryStore()
	svc := newTestUploadService(t, store, 2, 10)

	files := []UploadFile{
		{Filename: "good1.pdf"}, {Filename: "good2.pdf"}, {Filename: "good3.pdf"},
	}
	_, err := svc.Upload(context.Background(), UploadInput{SessionID: "s1", Files: files})
	if !errors.Is(err, ErrTooManyFiles) {
		t.Fatalf("err = %v, want ErrTooManyFiles", err)
	}
}

func TestUploadNoFiles(t *testing.T) {
	store := session.NewMemoryStore()
	svc := newTestUploadService(t, store, 10, 10)

	_, err := svc.Upload(context.Background(), UploadInput{SessionID: "s1"})
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("err = %v, want ErrNoFiles", err)
	}
}

func TestUploadUnsupportedExtension(t *testing.T) {
	store := session.NewMemoryStore()
	svc := newTestUploadService(t, store, 10, 10)

	result, err := svc.Upload(context.Background(), UploadInput{
		SessionID: "s1",
		Files:     []UploadFile{{Filename: "resume.txt", Size: 10, Data: []byte("x")}},
	})
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if result.ResumesLoaded != 0 || len(result.Errors) != 1 {
		t.Errorf("loaded = %d errors = %v, want rejection", result.ResumesLoaded, result.Errors)
	}
}

func TestUploadDocumentLimit(t *testing.T) {
	store := session.NewMemoryStore()
	svc := newTestUploadService(t, store, 10, 1)

	result, err := svc.Upload(context.Background(), UploadInput{
		SessionID: "s1",
		Files: []UploadFile{
			{Filename: "good1.pdf", Size: 10, Data: []byte("x")},
			{Filename: "good2.pdf", Size: 10, Data: []byte("x")},
		},
	})
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if result.ResumesLoaded != 1 {
		t.Errorf("resumes loaded = %d, want 1", result.ResumesLoaded)
	}
	if len(result.Errors) == 0 {
		t.Error("expected a limit error for the second document")
	}
}

func TestClearRemovesSession(t *testing.T) {
	store := session.NewMemoryStore()
	svc := newTestUploadService(t, store, 10, 10)

	_, err := svc.Upload(context.Background(), UploadInput{
		SessionID: "s1",
		Files:     []UploadFile{{Filename: "good.pdf", Size: 10, Data: []byte("x")}},
	})
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}

	if err := svc.Clear(context.Background(), "s1"); err != nil {
		t.Fatalf("Clear err: %v", err)
	}
	if _, err := store.Get(context.Background(), "s1"); err != session.ErrNotFound {
		t.Errorf("Get after clear = %v, want ErrNotFound", err)
	}
}
