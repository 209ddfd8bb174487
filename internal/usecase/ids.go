package usecase

import "github.com/google/uuid"

// newID returns a time-ordered identifier. UUIDv7 embeds the wall clock in
// milliseconds and is monotonic within the process.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
