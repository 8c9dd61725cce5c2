package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateContentNativeShape(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		w.Write([]byte(`{"response": "1. What is a goroutine?"}`))
	}))
	defer server.Close()

	client := New(server.URL, "llama3", 0, nil)

	output, err := client.GenerateContent(context.Background(), "ask me something")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "1. What is a goroutine?" {
		t.Fatalf("unexpected output: %q", output)
	}

	if gotBody["model"] != "llama3" {
		t.Fatalf("expected model llama3, got %v", gotBody["model"])
	}
	if gotBody["stream"] != false {
		t.Fatalf("expected stream false, got %v", gotBody["stream"])
	}
}

func TestGenerateContentChatShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices": [{"message": {"content": "chat style answer"}}]}`))
	}))
	defer server.Close()

	client := New(server.URL, "", 0, nil)

	output, err := client.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "chat style answer" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestGenerateContentErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	client := New(server.URL, "", 0, nil)

	if _, err := client.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for error payload")
	}
}

func TestGenerateContentBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, "", 0, nil)

	if _, err := client.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestGenerateContentUnexpectedStructure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"something": "else"}`))
	}))
	defer server.Close()

	client := New(server.URL, "", 0, nil)

	if _, err := client.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for unexpected structure")
	}
}

func TestGenerateContentEmptyPrompt(t *testing.T) {
	client := New("", "", 0, nil)

	if _, err := client.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestNewDefaults(t *testing.T) {
	client := New("", "", 0, nil)

	if client.Model() != defaultModel {
		t.Fatalf("expected default model, got %q", client.Model())
	}
	if client.Provider() != "ollama" {
		t.Fatalf("unexpected provider: %q", client.Provider())
	}
}
