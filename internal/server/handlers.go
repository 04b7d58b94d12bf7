package server

import (
	"net/http"
	"strings"

	"kaomojiworld/internal/catalog"
	"kaomojiworld/internal/library"
)

var exampleSearches = []string{"happy", "crying", "cat", "dance", "shrug", "love"}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderNotFound(w)
		return
	}

	query := r.FormValue("q")
	data := struct {
		page
		Categories catalog.Catalogue
		Sidebar    []*catalog.CategoryEntry
		Examples   []string
		Styles     []string
	}{
		page:       s.page(s.cfg.SiteName+" - AI Kaomoji Generator & Finder", "Search, find, and generate thousands of curated kaomoji.", "/"),
		Categories: catalog.Filter(s.catalogue, query),
		Sidebar:    s.categories.Entries(),
		Examples:   exampleSearches,
		Styles:     styleOptions(),
	}
	data.Query = query
	s.render(w, "home.gohtml", data)
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/category/")
	slug, err := normalizePathSlug(raw)
	if err != nil {
		s.renderNotFound(w)
		return
	}

	top := s.categories.Lookup(slug)
	if top == nil {
		s.renderNotFound(w)
		return
	}

	summary, sumErr := s.categorySummary(r, slug, top.Name)
	if sumErr != nil {
		s.log.Warn().Err(sumErr).Str("category", slug).Msg("category summary failed")
	}

	data := struct {
		page
		Category   *catalog.TopCategory
		Slug       string
		Summary    string
		SummaryErr bool
	}{
		page:       s.page(top.Name+" Kaomoji", "Browse the "+top.Name+" kaomoji collection.", "/category/"+slug),
		Category:   top,
		Slug:       slug,
		Summary:    summary,
		SummaryErr: sumErr != nil,
	}
	s.render(w, "category.gohtml", data)
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/kaomoji/")
	slug, err := normalizePathSlug(raw)
	if err != nil {
		s.renderNotFound(w)
		return
	}

	entry := s.index.Lookup(slug)
	if entry == nil {
		s.renderNotFound(w)
		return
	}

	description, descErr := s.itemDescription(r, slug, entry.Item.Value)
	if descErr != nil {
		s.log.Warn().Err(descErr).Str("slug", slug).Msg("item description failed")
	}
	variations, varsErr := s.itemVariations(r, slug, entry.Item.Value)
	if varsErr != nil {
		s.log.Warn().Err(varsErr).Str("slug", slug).Msg("item variations failed")
	}

	data := struct {
		page
		Entry          *catalog.Entry
		Description    string
		DescriptionErr bool
		Variations     []string
		VariationsErr  bool
	}{
		page:           s.page(entry.Item.Name+" "+entry.Item.Value, "Copy the "+entry.Item.Name+" kaomoji and explore AI variations.", "/kaomoji/"+slug),
		Entry:          entry,
		Description:    description,
		DescriptionErr: descErr != nil,
		Variations:     variations,
		VariationsErr:  varsErr != nil,
	}
	s.render(w, "detail.gohtml", data)
}

func (s *Server) handleEmoji(w http.ResponseWriter, r *http.Request) {
	s.renderLibrary(w, r, "Emoji Library", "Search, discover, and copy your favorite emojis.", "/emoji", s.emoji)
}

func (s *Server) handleSymbol(w http.ResponseWriter, r *http.Request) {
	s.renderLibrary(w, r, "Symbol Library", "Search and copy useful characters for any occasion.", "/symbol", s.symbols)
}

func (s *Server) renderLibrary(w http.ResponseWriter, r *http.Request, title, desc, path string, sections []library.Section) {
	query := r.FormValue("q")
	data := struct {
		page
		Path     string
		Sections []library.Section
	}{
		page:     s.page(title, desc, path),
		Path:     path,
		Sections: library.Filter(sections, query),
	}
	data.Query = query
	s.render(w, "library.gohtml", data)
}

func (s *Server) handleHowToUse(w http.ResponseWriter, r *http.Request) {
	data := struct{ page }{page: s.page("How to Use", "How to copy and paste kaomoji anywhere.", "/how-to-use")}
	s.render(w, "howtouse.gohtml", data)
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	data := struct{ page }{page: s.page("Blog", "Notes on kaomoji culture and history.", "/blog")}
	s.render(w, "blog.gohtml", data)
}
