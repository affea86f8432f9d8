package md2wp

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyPath        = errors.New("markdown path cannot be empty")
	ErrDocumentNotFound = errors.New("markdown document not found")
	ErrAssetNotFound    = errors.New("referenced local file not found")
	ErrUploadFailed     = errors.New("media upload failed")
	ErrPublishFailed    = errors.New("post creation failed")
	ErrAuthRejected     = errors.New("authentication rejected by WordPress")
	ErrHTMLRender       = errors.New("HTML rendering failed")

	// Input validation errors.
	ErrInvalidStatus = errors.New("invalid post status")
	ErrInvalidPrefix = errors.New("invalid filename prefix")
)
