package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a unique identifier for the game handle.
func GenerateGameID() string {
	return uuid.NewString()
}

// IsGameID - reports whether id looks like an identifier made by GenerateGameID.
func IsGameID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
