package libmanager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lim-bo/songscatalog/models"
)

const (
	ArtistsFile = "artists.json"
	AlbumsFile  = "albums.json"
	SongsFile   = "songs.json"
)

// LoadSeedFiles reads the three fixture files from dir. A missing or
// malformed file is an error.
func LoadSeedFiles(dir string) (Seed, error) {
	var (
		seed Seed
		err  error
	)
	seed.Artists, err = loadFixture(filepath.Join(dir, ArtistsFile),
		func(a models.Artist) int { return a.ArtistID },
		func(a models.Artist, id int) models.Artist { a.ArtistID = id; return a })
	if err != nil {
		return Seed{}, err
	}
	seed.Albums, err = loadFixture(filepath.Join(dir, AlbumsFile),
		func(a models.Album) int { return a.AlbumID },
		func(a models.Album, id int) models.Album { a.AlbumID = id; return a })
	if err != nil {
		return Seed{}, err
	}
	seed.Songs, err = loadFixture(filepath.Join(dir, SongsFile),
		func(s models.Song) int { return s.SongID },
		func(s models.Song, id int) models.Song { s.SongID = id; return s })
	if err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// loadFixture accepts either an object keyed by id or an array of entities
// carrying their own ids.
func loadFixture[T any](path string, idOf func(T) int, withID func(T, int) T) (map[int]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	data = bytes.TrimSpace(data)
	out := make(map[int]T)
	if len(data) > 0 && data[0] == '[' {
		var list []T
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
		}
		for i, v := range list {
			id := idOf(v)
			if id < 1 {
				return nil, fmt.Errorf("fixture %s: entry %d has no id", path, i)
			}
			if _, dup := out[id]; dup {
				return nil, fmt.Errorf("fixture %s: duplicate id %d", path, id)
			}
			out[id] = v
		}
		return out, nil
	}
	var keyed map[string]T
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	for key, v := range keyed {
		id, err := ParseID(key)
		if err != nil {
			return nil, fmt.Errorf("fixture %s: key %q is not an id", path, key)
		}
		if idOf(v) == 0 {
			v = withID(v, id)
		}
		out[id] = v
	}
	return out, nil
}
