package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lim-bo/songscatalog/models"

	"github.com/gorilla/mux"
	_ "github.com/lim-bo/songscatalog/cmd/docs"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type libManagerI interface {
	ListArtists() []models.Artist
	GetArtist(id int) (models.Artist, error)
	CreateArtist(name string) models.Artist
	UpdateArtist(id int, name *string) (models.Artist, error)
	DeleteArtist(id int) error

	AlbumsByArtist(artistRef string) []models.Album
	GetAlbum(id int) (models.Album, error)
	CreateAlbum(artistRef string, name string) models.Album
	UpdateAlbum(id int, name *string) (models.Album, error)
	DeleteAlbum(id int) error

	SongsByArtist(artistRef string) []models.Song
	SongsByAlbum(albumRef string) []models.Song
	SongsByTrackNumber(trackNumber string) []models.Song
	GetSong(id int) (models.Song, error)
	CreateSong(albumRef string, name string, fields models.SongFields) models.Song
	UpdateSong(id int, fields models.SongFields) (models.Song, error)
	DeleteSong(id int) error
}

type Options struct {
	// RateLimit is requests per second across all clients; 0 disables it.
	RateLimit float64
	RateBurst int
	// Swagger serves the API docs under /swagger/.
	Swagger bool
}

// main API class
type CatalogAPI struct {
	mux     *mux.Router
	lm      libManagerI
	handler http.Handler
}

func New(lm libManagerI, opts Options) *CatalogAPI {
	api := &CatalogAPI{
		mux: mux.NewRouter().SkipClean(true),
		lm:  lm,
	}
	for _, rt := range api.routes() {
		api.mux.Methods(rt.methods...).MatcherFunc(rt.matches).HandlerFunc(rt.serve)
	}
	if opts.Swagger {
		api.mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	}
	api.mux.NotFoundHandler = http.HandlerFunc(notFound)
	api.mux.MethodNotAllowedHandler = http.HandlerFunc(notFound)
	api.mux.Use(CORSMiddleware)

	var h http.Handler = BodyMiddleware(api.mux)
	if opts.RateLimit > 0 {
		h = RateLimitMiddleware(opts.RateLimit, opts.RateBurst)(h)
	}
	api.handler = LoggingMiddleware(h)
	return api
}

func (api *CatalogAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.handler.ServeHTTP(w, r)
}

// Run serves on host:port until ctx is cancelled, then shuts down gracefully.
func (api *CatalogAPI) Run(ctx context.Context, host string, port string) error {
	srv := &http.Server{
		Addr:              host + ":" + port,
		Handler:           api,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server is listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
