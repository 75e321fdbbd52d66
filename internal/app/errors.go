package app

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNoFiles        = errors.New("no files uploaded")
	ErrTooManyFiles   = errors.New("too many files uploaded")
	ErrNoResumes      = errors.New("no resumes loaded")
	ErrEmptyMessage   = errors.New("message content is empty")
	ErrProviderFailed = errors.New("ai provider request failed")
)
