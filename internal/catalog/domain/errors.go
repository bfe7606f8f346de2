package domain

import (
	pkgerrors "github.com/narwhalmedia/tracker/pkg/errors"
)

// Common domain errors
var (
	// ErrMediaNotFound is returned when a media item is not found
	ErrMediaNotFound = pkgerrors.NotFound("media not found")

	// ErrEmptyPatch is returned when a patch carries no fields
	ErrEmptyPatch = pkgerrors.BadRequest("patch must set at least one field")
)
