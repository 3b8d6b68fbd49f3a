package libmanager

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/lim-bo/songscatalog/models"
)

var (
	ErrMissingEntity error = errors.New(`no entity with such id`)
)

// Seed is the initial content of the three collections, keyed by id.
type Seed struct {
	Artists map[int]models.Artist
	Albums  map[int]models.Album
	Songs   map[int]models.Song
}

// Manager keeps artists, albums and songs in memory. Parent references are
// stored as given and never checked against the parent collection.
type Manager struct {
	mu      *sync.RWMutex
	artists *collection[models.Artist]
	albums  *collection[models.Album]
	songs   *collection[models.Song]
	now     func() time.Time
}

// New takes ownership of the seed maps.
func New(seed Seed) *Manager {
	return &Manager{
		mu:      &sync.RWMutex{},
		artists: newCollection(seed.Artists),
		albums:  newCollection(seed.Albums),
		songs:   newCollection(seed.Songs),
		now:     time.Now,
	}
}

// ParseID resolves a path parameter to an id. Only the canonical decimal
// form of a positive integer is accepted; anything else can never name a
// stored entity.
func ParseID(text string) (int, error) {
	id, err := strconv.Atoi(text)
	if err != nil || id < 1 || strconv.Itoa(id) != text {
		return 0, ErrMissingEntity
	}
	return id, nil
}

func (m *Manager) stamp() *time.Time {
	t := m.now().UTC()
	return &t
}

func (m *Manager) ListArtists() []models.Artist {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.artists.list(nil)
}

func (m *Manager) GetArtist(id int) (models.Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.artists.get(id)
	if !ok {
		return models.Artist{}, ErrMissingEntity
	}
	return a, nil
}

func (m *Manager) CreateArtist(name string) models.Artist {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := models.Artist{ArtistID: m.artists.allocate(), Name: name}
	m.artists.put(a.ArtistID, a)
	return a
}

// UpdateArtist replaces the name when one is given and stamps updatedAt.
func (m *Manager) UpdateArtist(id int, name *string) (models.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.artists.get(id)
	if !ok {
		return models.Artist{}, ErrMissingEntity
	}
	if name != nil {
		a.Name = *name
	}
	a.UpdatedAt = m.stamp()
	m.artists.put(id, a)
	return a, nil
}

// DeleteArtist leaves the artist's albums in place.
func (m *Manager) DeleteArtist(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.artists.remove(id) {
		return ErrMissingEntity
	}
	return nil
}

// AlbumsByArtist returns albums whose artistId is the string artistRef.
func (m *Manager) AlbumsByArtist(artistRef string) []models.Album {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.albums.list(func(a models.Album) bool { return a.ArtistID.Equals(artistRef) })
}

func (m *Manager) GetAlbum(id int) (models.Album, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.albums.get(id)
	if !ok {
		return models.Album{}, ErrMissingEntity
	}
	return a, nil
}

func (m *Manager) CreateAlbum(artistRef string, name string) models.Album {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := models.Album{AlbumID: m.albums.allocate(), Name: name, ArtistID: models.String(artistRef)}
	m.albums.put(a.AlbumID, a)
	return a
}

// UpdateAlbum keeps albumId and artistId, replaces the name when given and
// stamps updatedAt.
func (m *Manager) UpdateAlbum(id int, name *string) (models.Album, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.albums.get(id)
	if !ok {
		return models.Album{}, ErrMissingEntity
	}
	if name != nil {
		a.Name = *name
	}
	a.UpdatedAt = m.stamp()
	m.albums.put(id, a)
	return a, nil
}

func (m *Manager) DeleteAlbum(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.albums.remove(id) {
		return ErrMissingEntity
	}
	return nil
}

// SongsByArtist only finds songs that carry an artistId of their own, which
// only fixture data provides.
func (m *Manager) SongsByArtist(artistRef string) []models.Song {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.songs.list(func(s models.Song) bool { return s.ArtistID != nil && s.ArtistID.Equals(artistRef) })
}

func (m *Manager) SongsByAlbum(albumRef string) []models.Song {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.songs.list(func(s models.Song) bool { return s.AlbumID.Equals(albumRef) })
}

func (m *Manager) SongsByTrackNumber(trackNumber string) []models.Song {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.songs.list(func(s models.Song) bool { return s.TrackNumber.Equals(trackNumber) })
}

func (m *Manager) GetSong(id int) (models.Song, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.songs.get(id)
	if !ok {
		return models.Song{}, ErrMissingEntity
	}
	return s, nil
}

// CreateSong stores lyrics and trackNumber as supplied; absent ones are null.
func (m *Manager) CreateSong(albumRef string, name string, fields models.SongFields) models.Song {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := models.Song{SongID: m.songs.allocate(), Name: name, AlbumID: models.String(albumRef)}
	if fields.Lyrics != nil {
		s.Lyrics = *fields.Lyrics
	}
	if fields.TrackNumber != nil {
		s.TrackNumber = *fields.TrackNumber
	}
	m.songs.put(s.SongID, s)
	return s
}

// UpdateSong keeps songId and the parent references, replaces the fields
// that are present and stamps updatedAt.
func (m *Manager) UpdateSong(id int, fields models.SongFields) (models.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.songs.get(id)
	if !ok {
		return models.Song{}, ErrMissingEntity
	}
	if fields.Name != nil {
		s.Name = *fields.Name
	}
	if fields.Lyrics != nil {
		s.Lyrics = *fields.Lyrics
	}
	if fields.TrackNumber != nil {
		s.TrackNumber = *fields.TrackNumber
	}
	s.UpdatedAt = m.stamp()
	m.songs.put(id, s)
	return s, nil
}

func (m *Manager) DeleteSong(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.songs.remove(id) {
		return ErrMissingEntity
	}
	return nil
}
