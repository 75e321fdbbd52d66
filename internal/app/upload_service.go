package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-analyzer/internal/model"
	"resume-analyzer/internal/pkg/textextract"
	"resume-analyzer/internal/session"
)

// Extractor converts one uploaded file into extracted documents plus
// per-document failures. Injected so tests run without real PDF/DOCX bytes.
type Extractor func(filename string, data []byte) ([]textextract.Result, []error)

type UploadService struct {
	store     session.Store
	validator *ResumeValidator
	extract   Extractor
	logger    *zap.Logger

	uploadDir    string
	maxFiles     int
	maxFileSize  int64
	maxDocuments int
}

type UploadFile struct {
	Filename string
	Size     int64
	Data     []byte
}

type UploadInput struct {
	SessionID string
	Files     []UploadFile
}

// UploadResult reports the batch outcome. Per-document failures are collected
// in Errors; one bad file never aborts the batch.
type UploadResult struct {
	Session       *model.Session
	ResumesLoaded int
	Errors        []string
	Warnings      []string
}

func NewUploadService(
	store session.Store,
	validator *ResumeValidator,
	extract Extractor,
	logger *zap.Logger,
	uploadDir string,
	maxFiles int,
	maxFileSize int64,
	maxDocuments int,
) *UploadService {
	if extract == nil {
		extract = textextract.Extract
	}
	if maxFiles <= 0 {
		maxFiles = 25
	}
	if maxDocuments <= 0 {
		maxDocuments = 25
	}
	return &UploadService{
		store:        store,
		validator:    validator,
		extract:      extract,
		logger:       logger,
		uploadDir:    uploadDir,
		maxFiles:     maxFiles,
		maxFileSize:  maxFileSize,
		maxDocuments: maxDocuments,
	}
}

func (s *UploadService) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if input.SessionID == "" {
		return nil, ErrInvalidInput
	}
	if len(input.Files) == 0 {
		return nil, ErrNoFiles
	}
	if len(input.Files) > s.maxFiles {
		return nil, fmt.Errorf("%w: maximum allowed is %d", ErrTooManyFiles, s.maxFiles)
	}

	sess, err := s.store.Get(ctx, input.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		sess = model.NewSession(input.SessionID)
	} else if err != nil {
		return nil, err
	}
	sess.State = model.StateLoading

	result := &UploadResult{Session: sess}
	for _, file := range input.Files {
		s.processFile(sess, file, result)
	}

	if len(sess.Documents) > 0 {
		sess.State = model.StateReady
	} else {
		sess.State = model.StateError
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	result.ResumesLoaded = len(sess.Documents)
	s.logger.Info("upload processed",
		zap.String("session_id", sess.ID),
		zap.Int("resumes_loaded", result.ResumesLoaded),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

func (s *UploadService) processFile(sess *model.Session, file UploadFile, result *UploadResult) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" && ext != ".docx" && ext != ".zip" {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: unsupported format, allowed: pdf, docx, zip", file.Filename))
		return
	}
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: file too large, maximum %.1fMB", file.Filename, float64(s.maxFileSize)/(1<<20)))
		return
	}

	extracted, extractErrs := s.extract(file.Filename, file.Data)
	for _, extractErr := range extractErrs {
		result.Errors = append(result.Errors, extractErr.Error())
	}

	accepted := 0
	for _, doc := range extracted {
		text := strings.TrimSpace(doc.Text)
		verdict := s.validator.Validate(text)
		if !verdict.Accepted {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: rejected (%s)", doc.Filename, verdict.Reason))
			continue
		}
		if len(sess.Documents) >= s.maxDocuments {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: session document limit reached (%d)", doc.Filename, s.maxDocuments))
			continue
		}

		sess.Documents = append(sess.Documents, model.Document{
			Filename:  doc.Filename,
			FileType:  doc.FileType,
			SizeBytes: file.Size,
			Text:      text,
			WordCount: verdict.WordCount,
			CreatedAt: time.Now(),
		})
		for _, warning := range verdict.Warnings {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", doc.Filename, warning))
		}
		accepted++
	}

	if accepted > 0 {
		if err := s.saveOriginal(sess.ID, file); err != nil {
			s.logger.Warn("save uploaded file failed", zap.String("filename", file.Filename), zap.Error(err))
		}
	}
}

// saveOriginal keeps the raw upload under <uploadDir>/<sessionID>/ so a clear
// can remove everything the session produced.
func (s *UploadService) saveOriginal(sessionID string, file UploadFile) error {
	dir := filepath.Join(s.uploadDir, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session upload dir failed: %w", err)
	}
	name := uuid.NewString() + "_" + sanitizeFilename(file.Filename)
	if err := os.WriteFile(filepath.Join(dir, name), file.Data, 0o644); err != nil {
		return fmt.Errorf("write uploaded file failed: %w", err)
	}
	return nil
}

// Clear deletes the session record and every file stored for it.
func (s *UploadService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	dir := filepath.Join(s.uploadDir, sessionID)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove session upload dir failed: %w", err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
