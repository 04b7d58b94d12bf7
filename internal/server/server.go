// Package server renders the catalogue website: slug-addressed category and
// detail pages, the searchable libraries, and the AI generator screens.
package server

import (
	"html/template"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"kaomojiworld/internal/catalog"
	"kaomojiworld/internal/config"
	"kaomojiworld/internal/generation"
	"kaomojiworld/internal/library"
)

// Server wires handlers, templates, the catalogue indexes, and the
// generation collaborator together. The catalogue and its indexes are built
// once in NewServer and read-only afterwards.
type Server struct {
	cfg        config.Config
	log        zerolog.Logger
	gen        generation.Service
	control    *generation.Control
	catalogue  catalog.Catalogue
	index      *catalog.Index
	categories *catalog.CategoryIndex
	emoji      []library.Section
	symbols    []library.Section
	templates  *template.Template
	mux        *http.ServeMux
	handler    http.Handler

	// Process-lifetime caches for AI-written copy, deduped via genGroup.
	genGroup     singleflight.Group
	cacheMu      sync.RWMutex
	summaries    map[string]string
	descriptions map[string]string
	variations   map[string][]string

	// Auto-generate handoff tokens from the home-page preview generator.
	autoIssued atomic.Uint64
	autoMu     sync.Mutex
	autoSeen   uint64
}

// NewServer constructs an HTTP handler ready to serve the site.
func NewServer(cfg config.Config, log zerolog.Logger, gen generation.Service) (*Server, error) {
	tmpl, err := template.New("base").Funcs(template.FuncMap{
		"itemSlug":     catalog.ItemSlug,
		"categorySlug": catalog.CategorySlug,
	}).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}

	catalogue := catalog.Default()
	srv := &Server{
		cfg:          cfg,
		log:          log,
		gen:          gen,
		control:      generation.NewControl(gen, cfg.GenerateTimeout),
		catalogue:    catalogue,
		index:        catalog.BuildIndex(catalogue),
		categories:   catalog.BuildCategoryIndex(catalogue),
		emoji:        library.Emoji(),
		symbols:      library.Symbols(),
		templates:    tmpl,
		mux:          http.NewServeMux(),
		summaries:    make(map[string]string),
		descriptions: make(map[string]string),
		variations:   make(map[string][]string),
	}

	srv.mux.HandleFunc("/", srv.handleHome)
	srv.mux.HandleFunc("/category/", srv.handleCategory)
	srv.mux.HandleFunc("/kaomoji/", srv.handleDetail)
	srv.mux.HandleFunc("/generator", srv.handleGenerator)
	srv.mux.HandleFunc("/generator/preview", srv.handlePreview)
	srv.mux.HandleFunc("/generator/retry", srv.handleRetry)
	srv.mux.HandleFunc("/ai-art", srv.handleArt)
	srv.mux.HandleFunc("/emoji", srv.handleEmoji)
	srv.mux.HandleFunc("/symbol", srv.handleSymbol)
	srv.mux.HandleFunc("/how-to-use", srv.handleHowToUse)
	srv.mux.HandleFunc("/blog", srv.handleBlog)

	srv.handler = srv.withRequestLog(securityHeaders(srv.mux))
	return srv, nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// page carries the fields every template shares.
type page struct {
	Site      string
	Title     string
	Desc      string
	Canonical string
	Query     string
}

func (s *Server) page(title, desc, path string) page {
	return page{
		Site:      s.cfg.SiteName,
		Title:     title,
		Desc:      desc,
		Canonical: s.cfg.BaseURL + path,
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	data := struct {
		page
	}{page: s.page("Page Not Found", "That page does not exist.", "")}
	if err := s.templates.ExecuteTemplate(w, "notfound.gohtml", data); err != nil {
		s.log.Error().Err(err).Msg("render not-found failed")
	}
}
