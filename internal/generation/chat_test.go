package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func chatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); !strings.HasPrefix(got, "Bearer ") {
			t.Errorf("missing bearer auth, got %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Messages) != 2 {
			t.Errorf("want system+user messages, got %d", len(req.Messages))
		}
		w.WriteHeader(status)
		resp := chatResponse{}
		resp.Choices = []struct {
			Message chatMessage `json:"message"`
		}{{Message: chatMessage{Role: "assistant", Content: content}}}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChatClientGenerateItem(t *testing.T) {
	srv := chatServer(t, `{"kaomoji": "(=^･ω･^=)"}`, http.StatusOK)
	defer srv.Close()

	c := NewChatClient(srv.URL, "test-model", "test-key", srv.Client())
	got, err := c.GenerateItem(context.Background(), "a cat")
	if err != nil {
		t.Fatalf("GenerateItem returned error: %v", err)
	}
	if got != "(=^･ω･^=)" {
		t.Fatalf("GenerateItem = %q", got)
	}
}

func TestChatClientGenerateVariations(t *testing.T) {
	srv := chatServer(t, `{"variations": ["(^_^)", "(T_T)", "(o_O)", "(>_<)"]}`, http.StatusOK)
	defer srv.Close()

	c := NewChatClient(srv.URL, "test-model", "test-key", srv.Client())
	got, err := c.GenerateVariations(context.Background(), "(^ω^)")
	if err != nil {
		t.Fatalf("GenerateVariations returned error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("want 4 variations, got %v", got)
	}
}

func TestChatClientSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "test-model", "test-key", srv.Client())
	if _, err := c.GenerateItem(context.Background(), "a cat"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestChatClientKeylessStub(t *testing.T) {
	c := NewChatClient("", "", "", nil)

	item, err := c.GenerateItem(context.Background(), "a happy cat")
	if err != nil {
		t.Fatalf("keyless GenerateItem returned error: %v", err)
	}
	if item == "" {
		t.Fatal("keyless GenerateItem returned empty value")
	}
	again, _ := c.GenerateItem(context.Background(), "a happy cat")
	if item != again {
		t.Fatalf("stub output should be deterministic: %q vs %q", item, again)
	}

	vars, err := c.GenerateVariations(context.Background(), item)
	if err != nil || len(vars) != 4 {
		t.Fatalf("keyless variations = %v, %v", vars, err)
	}

	art, err := c.GenerateArt(context.Background(), "a city", 40)
	if err != nil {
		t.Fatalf("keyless GenerateArt returned error: %v", err)
	}
	if !strings.Contains(art, "\n") {
		t.Fatalf("stub art should be multi-line: %q", art)
	}
}
