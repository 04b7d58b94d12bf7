package server

import (
	"context"
	"net/http"
)

// AI-written copy (category summaries, item descriptions, variations) is
// generated on first view, deduped across concurrent requests with
// singleflight, and cached for the process lifetime. The catalogue itself
// is static, so there is nothing to invalidate. Failures are not cached;
// the next page load simply tries again.

func (s *Server) categorySummary(r *http.Request, slug, label string) (string, error) {
	s.cacheMu.RLock()
	cached, ok := s.summaries[slug]
	s.cacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := s.genGroup.Do("summary:"+slug, func() (interface{}, error) {
		ctx, cancel := s.genContext(r)
		defer cancel()
		text, err := s.gen.GenerateCategorySummary(ctx, label)
		if err != nil {
			return nil, err
		}
		s.cacheMu.Lock()
		s.summaries[slug] = text
		s.cacheMu.Unlock()
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *Server) itemDescription(r *http.Request, slug, value string) (string, error) {
	s.cacheMu.RLock()
	cached, ok := s.descriptions[slug]
	s.cacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := s.genGroup.Do("description:"+slug, func() (interface{}, error) {
		ctx, cancel := s.genContext(r)
		defer cancel()
		text, err := s.gen.GenerateDescription(ctx, value)
		if err != nil {
			return nil, err
		}
		s.cacheMu.Lock()
		s.descriptions[slug] = text
		s.cacheMu.Unlock()
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (s *Server) itemVariations(r *http.Request, slug, value string) ([]string, error) {
	s.cacheMu.RLock()
	cached, ok := s.variations[slug]
	s.cacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := s.genGroup.Do("variations:"+slug, func() (interface{}, error) {
		ctx, cancel := s.genContext(r)
		defer cancel()
		vars, err := s.gen.GenerateVariations(ctx, value)
		if err != nil {
			return nil, err
		}
		s.cacheMu.Lock()
		s.variations[slug] = vars
		s.cacheMu.Unlock()
		return vars, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

func (s *Server) genContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.cfg.GenerateTimeout)
}
