package models

import "time"

type Artist struct {
	ArtistID  int        `json:"artistId"`
	Name      string     `json:"name"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Album struct {
	AlbumID   int        `json:"albumId"`
	Name      string     `json:"name"`
	ArtistID  Scalar     `json:"artistId"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Song.ArtistID only ever comes from fixture data; songs created through the
// API reference their album alone.
type Song struct {
	SongID      int        `json:"songId"`
	Name        string     `json:"name"`
	Lyrics      Scalar     `json:"lyrics"`
	TrackNumber Scalar     `json:"trackNumber"`
	AlbumID     Scalar     `json:"albumId"`
	ArtistID    *Scalar    `json:"artistId,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// SongFields carries the mutable part of a song. Nil means the field was
// absent from the request.
type SongFields struct {
	Name        *string
	Lyrics      *Scalar
	TrackNumber *Scalar
}

type Message struct {
	Message string `json:"message"`
}
