package entities

import "errors"

// Common errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrNilMeeting      = errors.New("meeting cannot be nil")
)
