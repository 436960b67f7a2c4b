package fireflies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/pulsehq/meeting-relevance/errors"
)

func TestListTranscripts_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer K1" {
			t.Fatalf("expected bearer auth, got %q", got)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if q, _ := payload["query"].(string); !strings.Contains(q, "transcripts") {
			t.Fatalf("unexpected query %q", q)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"transcripts": []map[string]string{
					{"id": "t1", "title": "Revenue sync"},
					{"id": "t2", "title": "Standup"},
				},
			},
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	transcripts, err := client.ListTranscripts(context.Background(), "K1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transcripts) != 2 || transcripts[0].ID != "t1" || transcripts[1].Title != "Standup" {
		t.Fatalf("unexpected transcripts %+v", transcripts)
	}
}

func TestTranscriptSummary_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Variables map[string]string `json:"variables"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Variables["id"] != "t1" {
			t.Fatalf("expected transcript id variable, got %+v", payload.Variables)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"transcript": map[string]interface{}{
					"id":    "t1",
					"title": "Revenue sync",
					"summary": map[string]interface{}{
						"short_summary": "Discussed Q3 revenue growth",
						"keywords":      []string{"revenue", "Q3"},
					},
				},
			},
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	tr, err := client.TranscriptSummary(context.Background(), "K1", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Summary == nil || tr.Summary.ShortSummary != "Discussed Q3 revenue growth" {
		t.Fatalf("unexpected summary %+v", tr.Summary)
	}
	if len(tr.Summary.Keywords) != 2 {
		t.Errorf("expected keywords, got %+v", tr.Summary.Keywords)
	}
}

func TestRequest_NonOKStatusIsSourceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	_, err := client.ListTranscripts(context.Background(), "bad-key")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !apperrors.HasCode(err, apperrors.ErrorCode_SOURCE) {
		t.Errorf("expected SOURCE error, got %v", err)
	}
}

func TestRequest_MalformedPayloadIsSourceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	_, err := client.ListTranscripts(context.Background(), "K1")
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if !apperrors.HasCode(err, apperrors.ErrorCode_SOURCE) {
		t.Errorf("expected SOURCE error, got %v", err)
	}
}

func TestFetchTranscripts_KeepsTranscriptWhenSummaryLookupFails(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var payload struct {
			Query string `json:"query"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		if strings.Contains(payload.Query, "transcript(") {
			// Summary lookups fail hard.
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"transcripts": []map[string]string{{"id": "t1", "title": "Revenue sync"}},
			},
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	transcripts, err := client.FetchTranscripts(context.Background(), "K1")
	if err != nil {
		t.Fatalf("summary failure must not lose the batch: %v", err)
	}
	if len(transcripts) != 1 || transcripts[0].Summary != nil {
		t.Fatalf("expected t1 without summary, got %+v", transcripts)
	}
}
