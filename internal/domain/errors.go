package domain

import "errors"

var (
	ErrEmptyText           = errors.New("text must not be empty")
	ErrInvalidField        = errors.New("invalid field")
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrNoTextExtracted     = errors.New("no text could be extracted")
)
