package libmanager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/lim-bo/songscatalog/models"
)

type DBConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

func (cfg DBConfig) ConnString() string {
	return "postgresql://" + cfg.Username + ":" + cfg.Password + "@" + cfg.Host + ":" + cfg.Port + "/" + cfg.DBName
}

// Reference columns are read as text so that they filter the same way as
// references created through the API.
const (
	selectArtists = `SELECT artist_id, name FROM artists ORDER BY artist_id;`
	selectAlbums  = `SELECT album_id, name, artist_id::text FROM albums ORDER BY album_id;`
	selectSongs   = `SELECT song_id, name, lyrics, track_number::text, album_id::text FROM songs ORDER BY song_id;`
)

// LoadSeedFromDB reads the initial collections from postgres once. The pool
// is closed before returning; later mutations stay in memory.
func LoadSeedFromDB(ctx context.Context, cfg DBConfig) (Seed, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()
	pool, err := pgxpool.Connect(ctx, cfg.ConnString())
	if err != nil {
		return Seed{}, fmt.Errorf("db connecting error: %w", err)
	}
	defer pool.Close()

	seed := Seed{
		Artists: make(map[int]models.Artist),
		Albums:  make(map[int]models.Album),
		Songs:   make(map[int]models.Song),
	}
	err = queryEach(ctx, pool, selectArtists, func(rows pgx.Rows) error {
		var a models.Artist
		if err := rows.Scan(&a.ArtistID, &a.Name); err != nil {
			return err
		}
		seed.Artists[a.ArtistID] = a
		return nil
	})
	if err != nil {
		return Seed{}, fmt.Errorf("reading artists: %w", err)
	}
	err = queryEach(ctx, pool, selectAlbums, func(rows pgx.Rows) error {
		var (
			a        models.Album
			artistID *string
		)
		if err := rows.Scan(&a.AlbumID, &a.Name, &artistID); err != nil {
			return err
		}
		a.ArtistID = nullableText(artistID)
		seed.Albums[a.AlbumID] = a
		return nil
	})
	if err != nil {
		return Seed{}, fmt.Errorf("reading albums: %w", err)
	}
	err = queryEach(ctx, pool, selectSongs, func(rows pgx.Rows) error {
		var (
			s                            models.Song
			lyrics, trackNumber, albumID *string
		)
		if err := rows.Scan(&s.SongID, &s.Name, &lyrics, &trackNumber, &albumID); err != nil {
			return err
		}
		s.Lyrics = nullableText(lyrics)
		s.TrackNumber = nullableText(trackNumber)
		s.AlbumID = nullableText(albumID)
		seed.Songs[s.SongID] = s
		return nil
	})
	if err != nil {
		return Seed{}, fmt.Errorf("reading songs: %w", err)
	}
	return seed, nil
}

func queryEach(ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Rows) error) error {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func nullableText(s *string) models.Scalar {
	if s == nil {
		return models.Scalar{}
	}
	return models.String(*s)
}
