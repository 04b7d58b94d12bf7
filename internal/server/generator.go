package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"kaomojiworld/internal/generation"
)

const (
	artMinWidth     = 20
	artMaxWidth     = 80
	artDefaultWidth = 50
)

func styleOptions() []string {
	return generation.StyleOptions
}

// settingsFromForm reads the generator settings out of query or form
// values, falling back to defaults for anything absent or malformed.
func settingsFromForm(r *http.Request) generation.Settings {
	settings := generation.DefaultSettings()

	style := r.FormValue("style")
	for _, opt := range generation.StyleOptions {
		if style == opt {
			settings.Style = style
			break
		}
	}

	if raw := r.FormValue("creativity"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			settings.Creativity = v
		}
	}
	return settings
}

type generatorData struct {
	page
	Prompt    string
	Settings  generation.Settings
	Styles    []string
	Snapshot  generation.Snapshot
	StatePend bool
	StateOK   bool
	StateFail bool
}

func (s *Server) renderGenerator(w http.ResponseWriter, prompt string, settings generation.Settings, snap generation.Snapshot) {
	data := generatorData{
		page:      s.page("Kaomoji Generator", "Describe a kaomoji and let AI craft it.", "/generator"),
		Prompt:    prompt,
		Settings:  settings,
		Styles:    styleOptions(),
		Snapshot:  snap,
		StatePend: snap.State == generation.StatePending,
		StateOK:   snap.State == generation.StateSuccess,
		StateFail: snap.State == generation.StateFailed,
	}
	s.render(w, "generator.gohtml", data)
}

// handleGenerator serves the full generator. A GET carrying an unseen
// auto-generate token (issued by the home-page preview handoff) runs the
// generation immediately; a plain GET just renders the current slot.
func (s *Server) handleGenerator(w http.ResponseWriter, r *http.Request) {
	settings := settingsFromForm(r)
	prompt := r.FormValue("prompt")

	switch r.Method {
	case http.MethodGet:
		if s.claimAutoToken(r.FormValue("auto")) && prompt != "" {
			snap := s.control.Generate(r.Context(), prompt, settings)
			s.renderGenerator(w, prompt, settings, snap)
			return
		}
		s.renderGenerator(w, prompt, settings, s.control.Snapshot())
	case http.MethodPost:
		if prompt == "" {
			s.renderGenerator(w, prompt, settings, s.control.Snapshot())
			return
		}
		snap := s.control.Generate(r.Context(), prompt, settings)
		s.renderGenerator(w, prompt, settings, snap)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handlePreview receives the home-page preview submission and hands it off
// to the full generator with a fresh auto-generate token.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	settings := settingsFromForm(r)
	token := s.autoIssued.Add(1)

	params := url.Values{}
	params.Set("prompt", r.FormValue("prompt"))
	params.Set("style", settings.Style)
	params.Set("creativity", fmt.Sprintf("%g", settings.Creativity))
	params.Set("auto", strconv.FormatUint(token, 10))
	http.Redirect(w, r, "/generator?"+params.Encode(), http.StatusSeeOther)
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.control.Retry()
	http.Redirect(w, r, "/generator", http.StatusSeeOther)
}

// claimAutoToken reports whether the token is fresh. Tokens are monotonic,
// so a reload of a handed-off URL does not re-trigger generation.
func (s *Server) claimAutoToken(raw string) bool {
	if raw == "" {
		return false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return false
	}
	s.autoMu.Lock()
	defer s.autoMu.Unlock()
	if n <= s.autoSeen {
		return false
	}
	s.autoSeen = n
	return true
}

func (s *Server) handleArt(w http.ResponseWriter, r *http.Request) {
	data := struct {
		page
		Prompt string
		Width  int
		Art    string
		ArtErr string
	}{
		page:  s.page("AI Art Generator", "Turn a prompt into multi-line kaomoji art.", "/ai-art"),
		Width: artDefaultWidth,
	}

	switch r.Method {
	case http.MethodGet:
		s.render(w, "art.gohtml", data)
	case http.MethodPost:
		data.Prompt = r.FormValue("prompt")
		data.Width = clampWidth(r.FormValue("width"))
		if data.Prompt == "" {
			data.ArtErr = "Describe what you want the art to show."
			s.render(w, "art.gohtml", data)
			return
		}

		ctx, cancel := s.genContext(r)
		defer cancel()
		art, err := s.gen.GenerateArt(ctx, data.Prompt, data.Width)
		if err != nil {
			s.log.Warn().Err(err).Msg("art generation failed")
			data.ArtErr = "Art generation failed. Please try again."
		} else {
			data.Art = art
		}
		s.render(w, "art.gohtml", data)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func clampWidth(raw string) int {
	width, err := strconv.Atoi(raw)
	if err != nil {
		return artDefaultWidth
	}
	if width < artMinWidth {
		return artMinWidth
	}
	if width > artMaxWidth {
		return artMaxWidth
	}
	return width
}
