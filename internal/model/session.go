package model

import "time"

// SessionState tracks the upload lifecycle of a session.
type SessionState string

const (
	StateEmpty   SessionState = "empty"
	StateLoading SessionState = "loading"
	StateReady   SessionState = "ready"
	StateError   SessionState = "error"
)

// Session is one user's set of uploaded resumes and their extracted text,
// keyed by an opaque identifier. It lives in the session store only; nothing
// here survives an explicit clear.
type Session struct {
	ID        string       `json:"id"`
	State     SessionState `json:"state"`
	Documents []Document   `json:"documents"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		State:     StateEmpty,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) Ready() bool {
	return s.State == StateReady && len(s.Documents) > 0
}

type Document struct {
	Filename  string    `json:"filename"`
	FileType  string    `json:"file_type"`
	SizeBytes int64     `json:"size_bytes"`
	Text      string    `json:"text"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}
