package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lim-bo/songscatalog/internal/pathmatch"
)

type paramHandler func(w http.ResponseWriter, r *http.Request, params pathmatch.Params)

// route is one row of the dispatch table. The router tries rows in
// declaration order and the first row whose method and shape fit wins.
type route struct {
	methods []string
	pattern pathmatch.Pattern
	handle  paramHandler
}

func (rt route) matches(r *http.Request, _ *mux.RouteMatch) bool {
	_, ok := rt.pattern.MatchPath(r.URL.EscapedPath())
	return ok
}

func (rt route) serve(w http.ResponseWriter, r *http.Request) {
	params, _ := rt.pattern.MatchPath(r.URL.EscapedPath())
	rt.handle(w, r, params)
}

var editMethods = []string{http.MethodPatch, http.MethodPut}

// routes lists the endpoints in precedence order. Several shapes overlap,
// e.g. GET /artists/{id}/albums shadows GET /artists/{id}/{_}, so the order
// here is part of the API.
func (api *CatalogAPI) routes() []route {
	get := []string{http.MethodGet}
	post := []string{http.MethodPost}
	del := []string{http.MethodDelete}
	return []route{
		{get, pathmatch.MustParse("/artists"), api.ListArtists},
		{get, pathmatch.MustParse("/artists/{id}"), api.GetArtist},
		{post, pathmatch.MustParse("/artists"), api.CreateArtist},
		{editMethods, pathmatch.MustParse("/artists/{id}"), api.EditArtist},
		{del, pathmatch.MustParse("/artists/{id}"), api.DeleteArtist},
		{get, pathmatch.MustParse("/artists/{id}/albums"), api.ListArtistAlbums},
		{get, pathmatch.MustParse("/albums/{id}"), api.GetAlbum},
		{post, pathmatch.MustParse("/artists/{id}/{_}"), api.CreateAlbum},
		{editMethods, pathmatch.MustParse("/albums/{id}"), api.EditAlbum},
		{del, pathmatch.MustParse("/albums/{id}"), api.DeleteAlbum},
		{get, pathmatch.MustParse("/artists/{id}/{_}"), api.ListArtistSongs},
		{get, pathmatch.MustParse("/albums/{id}/{_}"), api.ListAlbumSongs},
		{get, pathmatch.MustParse("/trackNumbers/{n}/{_}"), api.ListTrackNumberSongs},
		{get, pathmatch.MustParse("/songs/{id}/{_}"), api.GetSong},
		{post, pathmatch.MustParse("/albums/{id}/{_}"), api.CreateSong},
		{editMethods, pathmatch.MustParse("/songs/{id}"), api.EditSong},
		{del, pathmatch.MustParse("/songs/{id}"), api.DeleteSong},
	}
}
