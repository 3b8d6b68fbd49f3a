package api

import (
	"log/slog"
	"net/http"

	"github.com/lim-bo/songscatalog/models"

	libmanager "github.com/lim-bo/songscatalog/internal/libManager"
	"github.com/lim-bo/songscatalog/internal/pathmatch"
	"github.com/lim-bo/songscatalog/internal/reqbody"
)

const msgDeleted = "Successfully deleted"

func textField(rec reqbody.Record, key string) *string {
	v, ok := rec.Text(key)
	if !ok {
		return nil
	}
	return &v
}

func scalarField(rec reqbody.Record, key string) *models.Scalar {
	v, ok := rec.Get(key)
	if !ok {
		return nil
	}
	return &v
}

func songFields(rec reqbody.Record) models.SongFields {
	return models.SongFields{
		Name:        textField(rec, "name"),
		Lyrics:      scalarField(rec, "lyrics"),
		TrackNumber: scalarField(rec, "trackNumber"),
	}
}

// requiredName reads the name every create needs and answers 400 without it.
func requiredName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, ok := reqbody.FromContext(r.Context()).Text("name")
	if !ok {
		slog.Error("incoming request with lack of required field", slog.String("field", "name"), slog.String("from", r.RemoteAddr))
		writeMessage(w, http.StatusBadRequest, "name is required")
		return "", false
	}
	return name, true
}

//	@Summary		List all artists
//	@produce		json
//	@Success		200	{array}	models.Artist
//	@Router			/artists [get]
func (api *CatalogAPI) ListArtists(w http.ResponseWriter, r *http.Request, _ pathmatch.Params) {
	writeJSON(w, http.StatusOK, api.lm.ListArtists())
}

//	@Summary		Get artist details
//	@Param			id	path	int	true	"artist id"
//	@produce		json
//	@Success		200	{object}	models.Artist
//	@Failure		404	{object}	models.Message
//	@Router			/artists/{id} [get]
func (api *CatalogAPI) GetArtist(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err != nil {
		writeStoreError(w, r, "Artist", err)
		return
	}
	artist, err := api.lm.GetArtist(id)
	if err != nil {
		writeStoreError(w, r, "Artist", err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

//	@Summary		Add an artist
//	@Description	Accepts json or form-urlencoded body with the artist name
//	@accept			json
//	@produce		json
//	@Param			artist	body		models.Artist	true	"only name is read"
//	@Success		201		{object}	models.Artist
//	@Failure		400,500	{object}	models.Message
//	@Router			/artists [post]
func (api *CatalogAPI) CreateArtist(w http.ResponseWriter, r *http.Request, _ pathmatch.Params) {
	name, ok := requiredName(w, r)
	if !ok {
		return
	}
	artist := api.lm.CreateArtist(name)
	slog.Info("created artist", slog.Int("artist_id", artist.ArtistID), slog.String("from", r.RemoteAddr))
	writeJSON(w, http.StatusCreated, artist)
}

//	@Summary		Edit an artist
//	@Description	Replaces the name when given and stamps updatedAt
//	@accept			json
//	@produce		json
//	@Param			id		path		int				true	"artist id"
//	@Param			artist	body		models.Artist	true	"only name is read"
//	@Success		200		{object}	models.Artist
//	@Failure		404		{object}	models.Message
//	@Router			/artists/{id} [patch]
//	@Router			/artists/{id} [put]
func (api *CatalogAPI) EditArtist(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err != nil {
		writeStoreError(w, r, "Artist", err)
		return
	}
	artist, err := api.lm.UpdateArtist(id, textField(reqbody.FromContext(r.Context()), "name"))
	if err != nil {
		writeStoreError(w, r, "Artist", err)
		return
	}
	slog.Info("updated artist", slog.Any("data", artist), slog.String("from", r.RemoteAddr))
	writeJSON(w, http.StatusOK, artist)
}

//	@Summary		Delete an artist
//	@Description	Albums of the artist are kept
//	@Param			id	path	int	true	"artist id"
//	@produce		json
//	@Success		200	{object}	models.Message
//	@Failure		404	{object}	models.Message
//	@Router			/artists/{id} [delete]
func (api *CatalogAPI) DeleteArtist(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err == nil {
		err = api.lm.DeleteArtist(id)
	}
	if err != nil {
		writeStoreError(w, r, "Artist", err)
		return
	}
	slog.Info("deleted artist", slog.Int("artist_id", id), slog.String("from", r.RemoteAddr))
	writeMessage(w, http.StatusOK, msgDeleted)
}

//	@Summary		List albums of an artist
//	@Description	Matches albums whose artistId is the given text
//	@Param			id	path	string	true	"artist id"
//	@produce		json
//	@Success		200	{array}	models.Album
//	@Router			/artists/{id}/albums [get]
func (api *CatalogAPI) ListArtistAlbums(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	writeJSON(w, http.StatusOK, api.lm.AlbumsByArtist(p["id"]))
}

//	@Summary		Get album details
//	@Param			id	path	int	true	"album id"
//	@produce		json
//	@Success		200	{object}	models.Album
//	@Failure		404	{object}	models.Message
//	@Router			/albums/{id} [get]
func (api *CatalogAPI) GetAlbum(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err != nil {
		writeStoreError(w, r, "Album", err)
		return
	}
	album, err := api.lm.GetAlbum(id)
	if err != nil {
		writeStoreError(w, r, "Album", err)
		return
	}
	writeJSON(w, http.StatusOK, album)
}

//	@Summary		Add an album to an artist
//	@Description	The artist id is stored as given and is not checked
//	@accept			json
//	@produce		json
//	@Param			id		path		string			true	"artist id"
//	@Param			album	body		models.Album	true	"only name is read"
//	@Success		201		{object}	models.Album
//	@Failure		400		{object}	models.Message
//	@Router			/artists/{id}/albums [post]
func (api *CatalogAPI) CreateAlbum(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	name, ok := requiredName(w, r)
	if !ok {
		return
	}
	album := api.lm.CreateAlbum(p["id"], name)
	slog.Info("created album", slog.Int("album_id", album.AlbumID), slog.String("from", r.RemoteAddr))
	writeJSON(w, http.StatusCreated, album)
}

//	@Summary		Edit an album
//	@Description	Keeps albumId and artistId, replaces the name when given
//	@accept			json
//	@produce		json
//	@Param			id		path		int				true	"album id"
//	@Param			album	body		models.Album	true	"only name is read"
//	@Success		200		{object}	models.Album
//	@Failure		404		{object}	models.Message
//	@Router			/albums/{id} [patch]
//	@Router			/albums/{id} [put]
func (api *CatalogAPI) EditAlbum(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err != nil {
		writeStoreError(w, r, "Album", err)
		return
	}
	album, err := api.lm.UpdateAlbum(id, textField(reqbody.FromContext(r.Context()), "name"))
	if err != nil {
		writeStoreError(w, r, "Album", err)
		return
	}
	slog.Info("updated album", slog.Any("data", album), slog.String("from", r.RemoteAddr))
	writeJSON(w, http.StatusOK, album)
}

//	@Summary		Delete an album
//	@Param			id	path	int	true	"album id"
//	@produce		json
//	@Success		200	{object}	models.Message
//	@Failure		404	{object}	models.Message
//	@Router			/albums/{id} [delete]
func (api *CatalogAPI) DeleteAlbum(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err == nil {
		err = api.lm.DeleteAlbum(id)
	}
	if err != nil {
		writeStoreError(w, r, "Album", err)
		return
	}
	slog.Info("deleted album", slog.Int("album_id", id), slog.String("from", r.RemoteAddr))
	writeMessage(w, http.StatusOK, msgDeleted)
}

//	@Summary		List songs of an artist
//	@Description	Any third segment other than "albums" lands here
//	@Param			id	path	string	true	"artist id"
//	@produce		json
//	@Success		200	{array}	models.Song
//	@Router			/artists/{id}/songs [get]
func (api *CatalogAPI) ListArtistSongs(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	writeJSON(w, http.StatusOK, api.lm.SongsByArtist(p["id"]))
}

//	@Summary		List songs of an album
//	@Param			id	path	string	true	"album id"
//	@produce		json
//	@Success		200	{array}	models.Song
//	@Router			/albums/{id}/songs [get]
func (api *CatalogAPI) ListAlbumSongs(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	writeJSON(w, http.StatusOK, api.lm.SongsByAlbum(p["id"]))
}

//	@Summary		List songs with a track number
//	@Param			n	path	string	true	"track number"
//	@produce		json
//	@Success		200	{array}	models.Song
//	@Router			/trackNumbers/{n}/songs [get]
func (api *CatalogAPI) ListTrackNumberSongs(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	writeJSON(w, http.StatusOK, api.lm.SongsByTrackNumber(p["n"]))
}

//	@Summary		Get song details
//	@Description	Needs a trailing segment after the id, e.g. /songs/1/ or /songs/1/details
//	@Param			id	path	int	true	"song id"
//	@produce		json
//	@Success		200	{object}	models.Song
//	@Failure		404	{object}	models.Message
//	@Router			/songs/{id}/details [get]
func (api *CatalogAPI) GetSong(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err != nil {
		writeStoreError(w, r, "Song", err)
		return
	}
	song, err := api.lm.GetSong(id)
	if err != nil {
		writeStoreError(w, r, "Song", err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

//	@Summary		Add a song to an album
//	@Description	name is required; lyrics and trackNumber are stored as supplied
//	@accept			json
//	@produce		json
//	@Param			id		path		string		true	"album id"
//	@Param			song	body		models.Song	true	"name, lyrics, trackNumber are read"
//	@Success		201		{object}	models.Song
//	@Failure		400		{object}	models.Message
//	@Router			/albums/{id}/songs [post]
func (api *CatalogAPI) CreateSong(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	name, ok := requiredName(w, r)
	if !ok {
		return
	}
	song := api.lm.CreateSong(p["id"], name, songFields(reqbody.FromContext(r.Context())))
	slog.Info("created song", slog.Int("song_id", song.SongID), slog.String("from", r.RemoteAddr))
	writeJSON(w, http.StatusCreated, song)
}

//	@Summary		Edit a song
//	@Description	Keeps songId and albumId, replaces the fields that are present
//	@accept			json
//	@produce		json
//	@Param			id		path		int			true	"song id"
//	@Param			song	body		models.Song	true	"name, lyrics, trackNumber are read"
//	@Success		200		{object}	models.Song
//	@Failure		404		{object}	models.Message
//	@Router			/songs/{id} [patch]
//	@Router			/songs/{id} [put]
func (api *CatalogAPI) EditSong(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err != nil {
		writeStoreError(w, r, "Song", err)
		return
	}
	song, err := api.lm.UpdateSong(id, songFields(reqbody.FromContext(r.Context())))
	if err != nil {
		writeStoreError(w, r, "Song", err)
		return
	}
	slog.Info("updated song", slog.Any("data", song), slog.String("from", r.RemoteAddr))
	writeJSON(w, http.StatusOK, song)
}

//	@Summary		Delete a song
//	@Param			id	path	int	true	"song id"
//	@produce		json
//	@Success		200	{object}	models.Message
//	@Failure		404	{object}	models.Message
//	@Router			/songs/{id} [delete]
func (api *CatalogAPI) DeleteSong(w http.ResponseWriter, r *http.Request, p pathmatch.Params) {
	id, err := libmanager.ParseID(p["id"])
	if err == nil {
		err = api.lm.DeleteSong(id)
	}
	if err != nil {
		writeStoreError(w, r, "Song", err)
		return
	}
	slog.Info("deleted song", slog.Int("song_id", id), slog.String("from", r.RemoteAddr))
	writeMessage(w, http.StatusOK, msgDeleted)
}
