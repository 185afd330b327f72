package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resume-ats/internal/insight"
)

func withServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-4")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func chatReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func TestEnrichParsesSummary(t *testing.T) {
	var gotBody map[string]any
	client := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatReply(`{
			"skills": ["Go", "SQL"],
			"experience": [{"role": "Engineer", "company": "Initech", "duration": "2019-2023", "highlights": ["led platform team"]}],
			"education": [{"degree": "B.S.", "institution": "State University", "year": "2018"}],
			"jobMatches": ["Backend Engineer"],
			"summary": "Experienced engineer."
		}`)))
	})

	summary, err := client.Enrich(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if summary.Summary != "Experienced engineer." {
		t.Fatalf("Summary = %q", summary.Summary)
	}
	if len(summary.Skills) != 2 || len(summary.Experience) != 1 || len(summary.Education) != 1 {
		t.Fatalf("unexpected summary shape: %+v", summary)
	}
	if summary.Experience[0].Role != "Engineer" {
		t.Fatalf("Role = %q", summary.Experience[0].Role)
	}
	if gotBody["response_format"].(map[string]any)["type"] != "json_object" {
		t.Fatalf("response_format = %v", gotBody["response_format"])
	}
}

func TestEnrichStripsCodeFences(t *testing.T) {
	client := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatReply("```json\n{\"summary\": \"fenced\"}\n```")))
	})

	summary, err := client.Enrich(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if summary.Summary != "fenced" {
		t.Fatalf("Summary = %q", summary.Summary)
	}
}

func TestEnrichProviderError(t *testing.T) {
	client := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "bad key", "type": "invalid_request_error"}}`))
	})

	_, err := client.Enrich(context.Background(), "resume text")
	if !errors.Is(err, insight.ErrProviderError) {
		t.Fatalf("err = %v, want ErrProviderError", err)
	}
}

func TestEnrichMissingChoices(t *testing.T) {
	client := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.Enrich(context.Background(), "resume text")
	if !errors.Is(err, insight.ErrProviderError) {
		t.Fatalf("err = %v, want ErrProviderError", err)
	}
}

func TestEnrichMalformedContent(t *testing.T) {
	client := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatReply("not json at all")))
	})

	_, err := client.Enrich(context.Background(), "resume text")
	if !errors.Is(err, insight.ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestEnrichUnreachableProvider(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })
	// Reserved TEST-NET-1 address, nothing listens there.
	apiURL = "http://192.0.2.1:1/v1/chat/completions"

	client, err := NewClient("test-key", "gpt-4")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = client.Enrich(ctx, "resume text")
	if !errors.Is(err, insight.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestEnrichCancelledContext(t *testing.T) {
	client := withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatReply(`{}`)))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Enrich(ctx, "resume text")
	if !errors.Is(err, insight.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient("", "gpt-4"); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatal("expected error for missing model")
	}
}
