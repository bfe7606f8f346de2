package workflow

import "errors"

// Workflow errors
var (
	// ErrModalOpen is returned when opening a modal that is already open
	ErrModalOpen = errors.New("modal is already open")

	// ErrModalClosed is returned when acting on a closed modal
	ErrModalClosed = errors.New("modal is not open")

	// ErrSubmitInProgress is returned while a submission is outstanding
	ErrSubmitInProgress = errors.New("submission already in progress")

	// ErrLookupDisabled is returned when searching outside create mode
	ErrLookupDisabled = errors.New("metadata lookup is only available when adding media")

	// ErrNoSuchCandidate is returned for an out-of-range candidate index
	ErrNoSuchCandidate = errors.New("no such lookup result")
)
