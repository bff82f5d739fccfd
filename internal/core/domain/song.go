package domain

import (
	"errors"
	"strings"
)

var ErrSongNotFound = errors.New("song not found")
var ErrSongExists = errors.New("song already exists")
var ErrStoreConflict = errors.New("store write conflict")

// Song is a catalog entry keyed by the (Title, Album) pair.
type Song struct {
	Title       string `json:"title" bson:"title"`
	Album       string `json:"album" bson:"album"`
	Artist      string `json:"artist,omitempty" bson:"artist,omitempty"`
	Genre       string `json:"genre,omitempty" bson:"genre,omitempty"`
	ReleaseYear int    `json:"releaseYear,omitempty" bson:"release_year,omitempty"`
}

// SongField names an attribute a catalog scan can filter on.
type SongField string

const (
	FieldTitle       SongField = "title"
	FieldAlbum       SongField = "album"
	FieldArtist      SongField = "artist"
	FieldGenre       SongField = "genre"
	FieldReleaseYear SongField = "release_year"
)

// Normalize trims the key fields in place and reports whether both are
// non-empty afterwards.
func (s *Song) Normalize() bool {
	s.Title = strings.TrimSpace(s.Title)
	s.Album = strings.TrimSpace(s.Album)
	return s.Title != "" && s.Album != ""
}
