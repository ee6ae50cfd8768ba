package domain

import "errors"

// Sentinel errors for the resource domain. Use errors.Is() to check these.
var (
	// ErrDocumentNotFound indicates the requested document does not exist in its collection.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnknownResourceType indicates the resource slug is not registered.
	ErrUnknownResourceType = errors.New("unknown resource type")

	// ErrInvalidDocument indicates the submitted fields violate resource constraints.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrUploadFailed indicates the image upload service rejected or failed the upload.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrUnsupportedMediaType indicates an uploaded file is not an accepted image type.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrConcurrentModification indicates the document changed between read and write.
	ErrConcurrentModification = errors.New("document was modified concurrently")

	// ErrNoActiveEdit indicates a save was requested while no edit is in progress.
	ErrNoActiveEdit = errors.New("no edit in progress")

	// ErrNoPendingDelete indicates a delete confirmation without a prior delete request.
	ErrNoPendingDelete = errors.New("no delete pending confirmation")
)
