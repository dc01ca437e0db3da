package advocates

import "errors"

// FetchFailedMessage is the only error text the list endpoint exposes.
const FetchFailedMessage = "Failed to fetch advocates."

// Domain errors for advocate operations.
var (
	ErrNotFound      = errors.New("advocate not found")
	ErrDuplicate     = errors.New("advocate already exists")
	ErrInvalidRecord = errors.New("invalid advocate record")
)
