package uid

import "github.com/google/uuid"

// GenerateSessionID returns a random identifier used to tag a session in logs
// and in the spectator feed.
func GenerateSessionID() string {
	return uuid.NewString()
}
