package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	libmanager "github.com/lim-bo/songscatalog/internal/libManager"
	"github.com/lim-bo/songscatalog/models"
)

func newTestAPI(t *testing.T) *CatalogAPI {
	t.Helper()
	artistRef := models.String("1")
	lm := libmanager.New(libmanager.Seed{
		Artists: map[int]models.Artist{1: {ArtistID: 1, Name: "Red Hot Chili Peppers"}},
		Albums:  map[int]models.Album{1: {AlbumID: 1, Name: "Stadium Arcadium", ArtistID: models.Number("1")}},
		Songs: map[int]models.Song{1: {
			SongID: 1, Name: "Dani California", Lyrics: models.String("..."),
			TrackNumber: models.Number("1"), AlbumID: models.Number("1"), ArtistID: &artistRef,
		}},
	})
	return New(lm, Options{})
}

type response struct {
	status      int
	contentType string
	body        string
}

func do(t *testing.T, h http.Handler, method, path, contentType, body string) response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return response{status: rec.Code, contentType: rec.Header().Get("Content-Type"), body: rec.Body.String()}
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) response {
	return do(t, h, method, path, "application/json", body)
}

func decode[T any](t *testing.T, r response) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(r.body), &v), r.body)
	return v
}

func TestArtistRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	created := doJSON(t, api, http.MethodPost, "/artists", `{"name":"A"}`)
	require.Equal(t, http.StatusCreated, created.status)
	assert.Equal(t, "application/json", created.contentType)
	artist := decode[models.Artist](t, created)
	assert.Equal(t, 2, artist.ArtistID)
	assert.Equal(t, "A", artist.Name)

	got := doJSON(t, api, http.MethodGet, "/artists/2", "")
	require.Equal(t, http.StatusOK, got.status)
	assert.JSONEq(t, created.body, got.body)
}

func TestListArtists(t *testing.T) {
	api := newTestAPI(t)
	doJSON(t, api, http.MethodPost, "/artists", `{"name":"Queen"}`)

	resp := doJSON(t, api, http.MethodGet, "/artists", "")
	require.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `[{"artistId":1,"name":"Red Hot Chili Peppers"},{"artistId":2,"name":"Queen"}]`, resp.body)
}

func TestCreateFormEncoded(t *testing.T) {
	api := newTestAPI(t)
	resp := do(t, api, http.MethodPost, "/artists", "application/x-www-form-urlencoded", "name=Pink+Floyd")
	require.Equal(t, http.StatusCreated, resp.status)
	assert.Equal(t, "Pink Floyd", decode[models.Artist](t, resp).Name)
}

func TestCreateWithoutName(t *testing.T) {
	api := newTestAPI(t)
	tests := []struct {
		name, path, contentType, body string
	}{
		{"no body", "/artists", "", ""},
		{"unknown content type", "/artists", "text/plain", "name=A"},
		{"empty object", "/artists", "application/json", "{}"},
		{"album", "/artists/1/albums", "application/json", `{"title":"x"}`},
		{"song", "/albums/1/songs", "application/json", `{"lyrics":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, api, http.MethodPost, tt.path, tt.contentType, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.status)
			assert.JSONEq(t, `{"message":"name is required"}`, resp.body)
		})
	}
	assert.Len(t, decode[[]models.Artist](t, doJSON(t, api, http.MethodGet, "/artists", "")), 1)
}

func TestMalformedBody(t *testing.T) {
	api := newTestAPI(t)
	paths := []string{"/artists", "/unknown"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp := doJSON(t, api, http.MethodPost, path, `{"name":`)
			assert.Equal(t, http.StatusInternalServerError, resp.status)
			assert.JSONEq(t, `{"message":"malformed request body"}`, resp.body)
		})
	}
	assert.Len(t, decode[[]models.Artist](t, doJSON(t, api, http.MethodGet, "/artists", "")), 1)
}

func TestEditArtist(t *testing.T) {
	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			api := newTestAPI(t)
			resp := doJSON(t, api, method, "/artists/1", `{"name":"RHCP"}`)
			require.Equal(t, http.StatusOK, resp.status)
			artist := decode[models.Artist](t, resp)
			assert.Equal(t, 1, artist.ArtistID)
			assert.Equal(t, "RHCP", artist.Name)
			assert.NotNil(t, artist.UpdatedAt)

			resp = doJSON(t, api, method, "/artists/1", `{}`)
			require.Equal(t, http.StatusOK, resp.status)
			assert.Equal(t, "RHCP", decode[models.Artist](t, resp).Name)
		})
	}
}

func TestDeleteArtist(t *testing.T) {
	api := newTestAPI(t)

	resp := doJSON(t, api, http.MethodDelete, "/artists/1", "")
	require.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `{"message":"Successfully deleted"}`, resp.body)

	resp = doJSON(t, api, http.MethodGet, "/artists/1", "")
	assert.Equal(t, http.StatusNotFound, resp.status)
	assert.Equal(t, "application/json", resp.contentType)
	assert.JSONEq(t, `{"message":"Artist not found"}`, resp.body)

	// albums are not removed with their artist
	assert.Equal(t, http.StatusOK, doJSON(t, api, http.MethodGet, "/albums/1", "").status)
}

func TestMissingEntity(t *testing.T) {
	api := newTestAPI(t)
	tests := []struct {
		method, path, message string
	}{
		{http.MethodGet, "/artists/9", "Artist not found"},
		{http.MethodGet, "/artists/", "Artist not found"},
		{http.MethodGet, "/artists/01", "Artist not found"},
		{http.MethodPatch, "/artists/9", "Artist not found"},
		{http.MethodDelete, "/artists/abc", "Artist not found"},
		{http.MethodGet, "/albums/9", "Album not found"},
		{http.MethodPut, "/albums/9", "Album not found"},
		{http.MethodDelete, "/albums/9", "Album not found"},
		{http.MethodGet, "/songs/9/x", "Song not found"},
		{http.MethodPatch, "/songs/9", "Song not found"},
		{http.MethodDelete, "/songs/9", "Song not found"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := doJSON(t, api, tt.method, tt.path, `{"name":"x"}`)
			assert.Equal(t, http.StatusNotFound, resp.status)
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, resp.body)
		})
	}
	assert.Len(t, decode[[]models.Artist](t, doJSON(t, api, http.MethodGet, "/artists", "")), 1)
}

func TestAlbums(t *testing.T) {
	api := newTestAPI(t)

	t.Run("fixture artistId is numeric and does not match", func(t *testing.T) {
		resp := doJSON(t, api, http.MethodGet, "/artists/1/albums", "")
		require.Equal(t, http.StatusOK, resp.status)
		assert.JSONEq(t, `[]`, resp.body)
	})

	created := doJSON(t, api, http.MethodPost, "/artists/1/albums", `{"name":"Californication"}`)
	require.Equal(t, http.StatusCreated, created.status)
	assert.JSONEq(t, `{"albumId":2,"name":"Californication","artistId":"1"}`, created.body)

	t.Run("any third segment creates an album", func(t *testing.T) {
		resp := doJSON(t, api, http.MethodPost, "/artists/7/whatever", `{"name":"Orphan"}`)
		require.Equal(t, http.StatusCreated, resp.status)
		assert.JSONEq(t, `{"albumId":3,"name":"Orphan","artistId":"7"}`, resp.body)
	})

	t.Run("list by artist", func(t *testing.T) {
		resp := doJSON(t, api, http.MethodGet, "/artists/1/albums", "")
		assert.JSONEq(t, `[{"albumId":2,"name":"Californication","artistId":"1"}]`, resp.body)
	})

	t.Run("edit keeps artist", func(t *testing.T) {
		resp := doJSON(t, api, http.MethodPut, "/albums/2", `{"name":"By the Way","artistId":"9"}`)
		require.Equal(t, http.StatusOK, resp.status)
		album := decode[models.Album](t, resp)
		assert.Equal(t, 2, album.AlbumID)
		assert.Equal(t, "By the Way", album.Name)
		assert.True(t, album.ArtistID.Equals("1"))
		assert.NotNil(t, album.UpdatedAt)
	})

	t.Run("delete", func(t *testing.T) {
		require.Equal(t, http.StatusOK, doJSON(t, api, http.MethodDelete, "/albums/3", "").status)
		assert.Equal(t, http.StatusNotFound, doJSON(t, api, http.MethodGet, "/albums/3", "").status)
		assert.Equal(t, http.StatusOK, doJSON(t, api, http.MethodGet, "/albums/2", "").status)
	})
}

func TestSongs(t *testing.T) {
	api := newTestAPI(t)

	created := doJSON(t, api, http.MethodPost, "/albums/2/songs", `{"name":"Otherside","lyrics":"How long","trackNumber":"3"}`)
	require.Equal(t, http.StatusCreated, created.status)
	assert.JSONEq(t, `{"songId":2,"name":"Otherside","lyrics":"How long","trackNumber":"3","albumId":"2"}`, created.body)

	numeric := doJSON(t, api, http.MethodPost, "/albums/2/", `{"name":"Scar Tissue","trackNumber":3}`)
	require.Equal(t, http.StatusCreated, numeric.status)
	assert.JSONEq(t, `{"songId":3,"name":"Scar Tissue","lyrics":null,"trackNumber":3,"albumId":"2"}`, numeric.body)

	t.Run("by album", func(t *testing.T) {
		songs := decode[[]models.Song](t, doJSON(t, api, http.MethodGet, "/albums/2/songs", ""))
		require.Len(t, songs, 2)
		assert.Equal(t, 2, songs[0].SongID)
		assert.Equal(t, 3, songs[1].SongID)
	})

	t.Run("by track number is representation-sensitive", func(t *testing.T) {
		songs := decode[[]models.Song](t, doJSON(t, api, http.MethodGet, "/trackNumbers/3/songs", ""))
		require.Len(t, songs, 1)
		assert.Equal(t, "Otherside", songs[0].Name)
		assert.JSONEq(t, `[]`, doJSON(t, api, http.MethodGet, "/trackNumbers/1/songs", "").body)
	})

	t.Run("by artist uses the song's own artistId", func(t *testing.T) {
		songs := decode[[]models.Song](t, doJSON(t, api, http.MethodGet, "/artists/1/songs", ""))
		require.Len(t, songs, 1)
		assert.Equal(t, 1, songs[0].SongID)
	})

	t.Run("detail needs three segments", func(t *testing.T) {
		resp := doJSON(t, api, http.MethodGet, "/songs/2/", "")
		require.Equal(t, http.StatusOK, resp.status)
		assert.JSONEq(t, created.body, resp.body)

		resp = doJSON(t, api, http.MethodGet, "/songs/2", "")
		assert.Equal(t, http.StatusNotFound, resp.status)
		assert.Equal(t, notFoundText, resp.body)
	})

	t.Run("edit keeps ids and absent fields", func(t *testing.T) {
		resp := do(t, api, http.MethodPatch, "/songs/2", "application/x-www-form-urlencoded", "name=Otherside+%28Live%29")
		require.Equal(t, http.StatusOK, resp.status)
		song := decode[models.Song](t, resp)
		assert.Equal(t, 2, song.SongID)
		assert.Equal(t, "Otherside (Live)", song.Name)
		assert.True(t, song.AlbumID.Equals("2"))
		assert.True(t, song.Lyrics.Equals("How long"))
		assert.True(t, song.TrackNumber.Equals("3"))
		assert.NotNil(t, song.UpdatedAt)
	})

	t.Run("delete", func(t *testing.T) {
		require.Equal(t, http.StatusOK, doJSON(t, api, http.MethodDelete, "/songs/3", "").status)
		assert.Equal(t, http.StatusNotFound, doJSON(t, api, http.MethodGet, "/songs/3/x", "").status)
		assert.Equal(t, http.StatusOK, doJSON(t, api, http.MethodGet, "/songs/2/x", "").status)
	})
}

func TestSegmentCountDispatch(t *testing.T) {
	api := newTestAPI(t)
	doJSON(t, api, http.MethodPost, "/artists/5/albums", `{"name":"X"}`)

	list := doJSON(t, api, http.MethodGet, "/artists/5/albums", "")
	require.Equal(t, http.StatusOK, list.status)
	assert.True(t, strings.HasPrefix(list.body, "["))

	detail := doJSON(t, api, http.MethodGet, "/artists/1", "")
	require.Equal(t, http.StatusOK, detail.status)
	assert.Equal(t, "Red Hot Chili Peppers", decode[models.Artist](t, detail).Name)

	// a trailing slash makes /artists/5/ a songs listing, not a detail
	trailing := doJSON(t, api, http.MethodGet, "/artists/5/", "")
	require.Equal(t, http.StatusOK, trailing.status)
	assert.JSONEq(t, `[]`, trailing.body)
}

func TestNotFound(t *testing.T) {
	api := newTestAPI(t)
	tests := []struct {
		method, path string
	}{
		{http.MethodGet, "/unknown"},
		{http.MethodPost, "/unknown"},
		{http.MethodDelete, "/unknown"},
		{http.MethodGet, "/"},
		{http.MethodGet, "/albums"},
		{http.MethodPost, "/artists/1"},
		{http.MethodDelete, "/artists"},
		{http.MethodPatch, "/artists/1/albums"},
		{http.MethodGet, "/songs/1"},
		{http.MethodGet, "/artists/1/albums/extra"},
		{http.MethodGet, "/trackNumbers/1"},
		{http.MethodHead, "/artists"},
		{http.MethodGet, "/swagger/index.html"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := doJSON(t, api, tt.method, tt.path, "")
			assert.Equal(t, http.StatusNotFound, resp.status)
			assert.NotContains(t, resp.contentType, "json")
			if tt.method != http.MethodHead {
				assert.Equal(t, notFoundText, resp.body)
			}
		})
	}
}

func TestSkipClean(t *testing.T) {
	api := newTestAPI(t)
	resp := doJSON(t, api, http.MethodGet, "/artists//albums", "")
	assert.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `[]`, resp.body)
}

func TestRoutePrecedence(t *testing.T) {
	api := newTestAPI(t)
	names := map[string]string{
		"/artists":              "ListArtists",
		"/artists/1":            "GetArtist",
		"/artists/1/albums":     "ListArtistAlbums",
		"/artists/1/songs":      "ListArtistSongs",
		"/artists/1/":           "ListArtistSongs",
		"/albums/1":             "GetAlbum",
		"/albums/1/songs":       "ListAlbumSongs",
		"/trackNumbers/1/songs": "ListTrackNumberSongs",
		"/songs/1/x":            "GetSong",
	}
	rts := api.routes()
	for path, want := range names {
		t.Run(path, func(t *testing.T) {
			idx := -1
			for i, rt := range rts {
				if rt.methods[0] != http.MethodGet {
					continue
				}
				if _, ok := rt.pattern.MatchPath(path); ok {
					idx = i
					break
				}
			}
			require.GreaterOrEqual(t, idx, 0)
			assert.Equal(t, want, routeNames[idx])
		})
	}
}

// routeNames mirrors the order of routes().
var routeNames = []string{
	"ListArtists", "GetArtist", "CreateArtist", "EditArtist", "DeleteArtist",
	"ListArtistAlbums", "GetAlbum", "CreateAlbum", "EditAlbum", "DeleteAlbum",
	"ListArtistSongs", "ListAlbumSongs", "ListTrackNumberSongs", "GetSong",
	"CreateSong", "EditSong", "DeleteSong",
}

func TestRouteTableShape(t *testing.T) {
	rts := newTestAPI(t).routes()
	require.Len(t, rts, len(routeNames))
	want := []struct {
		methods  []string
		segments int
	}{
		{[]string{"GET"}, 1}, {[]string{"GET"}, 2}, {[]string{"POST"}, 1}, {editMethods, 2}, {[]string{"DELETE"}, 2},
		{[]string{"GET"}, 3}, {[]string{"GET"}, 2}, {[]string{"POST"}, 3}, {editMethods, 2}, {[]string{"DELETE"}, 2},
		{[]string{"GET"}, 3}, {[]string{"GET"}, 3}, {[]string{"GET"}, 3}, {[]string{"GET"}, 3},
		{[]string{"POST"}, 3}, {editMethods, 2}, {[]string{"DELETE"}, 2},
	}
	for i, rt := range rts {
		assert.Equal(t, want[i].methods, rt.methods, "route %d", i+1)
		assert.Equal(t, want[i].segments, rt.pattern.Segments(), "route %d", i+1)
	}
}
