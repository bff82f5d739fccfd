package reseed

import (
	"github.com/soundvault/catalog-api/internal/core/domain"
	"github.com/soundvault/catalog-api/internal/pkg/hasher"
)

// BaselineSongs returns the fixed catalog snapshot every reconciliation run
// converges to.
func BaselineSongs() []domain.Song {
	return []domain.Song{
		{Title: "Master of Puppets", Album: "Master of Puppets", Artist: "Metallica", Genre: "Heavy Metal", ReleaseYear: 1986},
		{Title: "Hail to the King", Album: "Hail to the King", Artist: "Avenged Sevenfold", Genre: "Heavy Metal", ReleaseYear: 2013},
		{Title: "Breathing", Album: "Ocean Avenue", Artist: "Yellowcard", Genre: "Pop Punk", ReleaseYear: 2003},
		{Title: "Lying from You", Album: "Meteora", Artist: "Linkin Park", Genre: "Alternative", ReleaseYear: 2003},
		{Title: "Faint", Album: "Meteora", Artist: "Linkin Park", Genre: "Alternative", ReleaseYear: 2003},
	}
}

// BaselineUsers returns the fixed identity snapshot, credentials pre-hashed.
func BaselineUsers() []domain.User {
	return []domain.User{
		{Username: "admin", Password: hasher.Digest("admin"), Age: 100, Role: domain.RoleAdministrator},
		{Username: "guest", Password: hasher.Digest("password"), Age: 21, Role: domain.RoleBasic},
	}
}
