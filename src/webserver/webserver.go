// Package webserver contains the webserver which deals with processing requests
// from the user, presenting them with the interface of the application.
package webserver

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ironsmile/wrapfs"

	"github.com/ironsmile/musicmustard/src/catalog"
	"github.com/ironsmile/musicmustard/src/config"
	"github.com/ironsmile/musicmustard/src/quiz"
)

// shutdownTimeout is how long in-flight requests are given to finish once the
// server is stopping.
const shutdownTimeout = 10 * time.Second

// Dependencies are the services used by the Server for answering requests.
type Dependencies struct {
	// Catalog is used for looking up artists.
	Catalog catalog.Catalog

	// Generator creates the quiz questions.
	Generator *quiz.Generator

	// Sessions keeps the quizzes which are being taken.
	Sessions quiz.SessionStore

	// HTTPRoot contains the static files served under /static/.
	HTTPRoot fs.FS

	// Templates contains the HTML templates.
	Templates fs.FS
}

// Server represents our webserver. It will be controlled from here
type Server struct {
	// Configuration of this server
	cfg config.Config

	deps Dependencies

	// secret is the key for signing result tokens.
	secret []byte

	// started is used as modification time of the static files.
	started time.Time
}

// NewServer returns a new Server using the supplied configuration cfg. The returned
// server is ready and calling its Serve method will start it.
func NewServer(cfg config.Config, deps Dependencies) (*Server, error) {
	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		log.Println("no secret configured, result links will not work after restart")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generating secret: %w", err)
		}
	}

	return &Server{
		cfg:     cfg,
		deps:    deps,
		secret:  secret,
		started: time.Now(),
	}, nil
}

// Handler returns the handler for all requests to the server with all of its
// middlewares.
func (srv *Server) Handler() (http.Handler, error) {
	allTpls, err := NewFSTemplates(srv.deps.Templates).All()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	router := mux.NewRouter()
	router.StrictSlash(true)

	staticFS := wrapfs.WithModTime(srv.deps.HTTPRoot, srv.started)
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
	).Methods(http.MethodGet, http.MethodHead)

	quizPages := &quizHandlers{
		quizTpl:       allTpls.quiz,
		cheatsheetTpl: allTpls.cheatsheet,
		generator:     srv.deps.Generator,
		sessions:      srv.deps.Sessions,
		sessionTTL:    srv.cfg.SessionTTL(),
		secret:        srv.secret,
	}

	router.Handle("/", NewHomeHandler(allTpls.home)).Methods(http.MethodGet)
	router.Handle(
		"/explore/",
		NewExploreHandler(allTpls.explore, srv.deps.Catalog),
	).Methods(http.MethodPost)
	router.Handle("/artist/qr", NewArtistQRHandler(srv.deps.Catalog)).Methods(http.MethodGet)
	router.Handle("/quiz/", WithInternalError(quizPages.page)).Methods(http.MethodGet)
	router.Handle("/quiz/start", WithInternalError(quizPages.start)).Methods(http.MethodPost)
	router.Handle("/quiz/submit", WithInternalError(quizPages.submit)).Methods(http.MethodPost)
	router.Handle(
		"/quiz/cheatsheet",
		WithInternalError(quizPages.cheatsheet),
	).Methods(http.MethodGet)
	router.Handle("/quiz/reset", WithInternalError(quizPages.reset)).Methods(http.MethodPost)
	router.Handle(
		"/result/",
		NewResultHandler(allTpls.result, srv.secret),
	).Methods(http.MethodGet)

	apiQuiz := &apiQuizHandlers{
		generator: srv.deps.Generator,
		sessions:  srv.deps.Sessions,
		secret:    srv.secret,
	}

	sessionHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			apiQuiz.discard(w, r)
			return
		}
		apiQuiz.get(w, r)
	})

	apiHandlers := map[string]http.Handler{
		APIv1EndpointAbout:       NewAboutHandler(),
		APIv1EndpointArtistLink:  NewArtistLinkHandler(srv.deps.Catalog),
		APIv1EndpointQuiz:        http.HandlerFunc(apiQuiz.create),
		APIv1EndpointQuizSession: sessionHandler,
		APIv1EndpointQuizAnswer:  http.HandlerFunc(apiQuiz.answer),
		APIv1EndpointQuizSubmit:  http.HandlerFunc(apiQuiz.submit),
	}

	for endpoint, handler := range apiHandlers {
		router.Handle(endpoint, handler).Methods(APIv1Methods[endpoint]...)
	}

	var handler http.Handler = router

	if srv.cfg.Gzip {
		handler = NewGzipHandler(handler, []string{"/artist/qr"})
	}

	handler = NewAccessHandler(handler)
	handler = NewHeadersHandler(handler)

	return handler, nil
}

// Serve starts listening on the configured address and serves requests until
// `ctx` is done. Then the server is shut down gracefully.
func (srv *Server) Serve(ctx context.Context) error {
	handler, err := srv.Handler()
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:           srv.cfg.Listen,
		Handler:        handler,
		ReadTimeout:    time.Duration(srv.cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(srv.cfg.WriteTimeout) * time.Second,
		MaxHeaderBytes: srv.cfg.MaxHeadersSize,
	}

	lsn, err := net.Listen("tcp", srv.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", srv.cfg.Listen, err)
	}
	log.Printf("webserver listening on http://%s", lsn.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpSrv.Serve(lsn)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Println("stopping webserver")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down webserver: %w", err)
	}

	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Println("webserver stopped")
	return nil
}
