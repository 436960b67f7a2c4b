package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	apperrors "github.com/pulsehq/meeting-relevance/errors"
)

// Client is a minimal client for the Fireflies GraphQL API. API keys are
// per-organization credentials passed on each call, not client state.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Fireflies client for the given GraphQL endpoint
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Transcript is one meeting recording's metadata plus its summary as
// returned by Fireflies. A nil Summary means the meeting is not yet
// relevance-checkable.
type Transcript struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Summary *Summary `json:"summary,omitempty"`
}

// Summary holds the Fireflies summary fields the pipeline consumes
type Summary struct {
	ShortSummary string   `json:"short_summary"`
	Keywords     []string `json:"keywords,omitempty"`
	ActionItems  string   `json:"action_items,omitempty"`
	Overview     string   `json:"overview,omitempty"`
}

// graphQLRequest is the wire shape of a Fireflies query
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type listResponse struct {
	Data struct {
		Transcripts []Transcript `json:"transcripts"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

type summaryResponse struct {
	Data struct {
		Transcript *Transcript `json:"transcript"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

const listQuery = `query Transcripts { transcripts { id title } }`

const summaryQuery = `query Transcript($id: String!) {
  transcript(id: $id) {
    id
    title
    summary { short_summary keywords action_items overview }
  }
}`

// ListTranscripts returns the transcript list (id, title) visible to the
// credential's API key
func (c *Client) ListTranscripts(ctx context.Context, apiKey string) ([]Transcript, error) {
	var out listResponse
	if err := c.request(ctx, apiKey, graphQLRequest{Query: listQuery}, &out); err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, apperrors.ErrSourcePayload(fmt.Errorf("graphql error: %s", out.Errors[0].Message))
	}
	return out.Data.Transcripts, nil
}

// TranscriptSummary returns one transcript with its summary
func (c *Client) TranscriptSummary(ctx context.Context, apiKey, transcriptID string) (*Transcript, error) {
	var out summaryResponse
	req := graphQLRequest{
		Query:     summaryQuery,
		Variables: map[string]any{"id": transcriptID},
	}
	if err := c.request(ctx, apiKey, req, &out); err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, apperrors.ErrSourcePayload(fmt.Errorf("graphql error: %s", out.Errors[0].Message))
	}
	if out.Data.Transcript == nil {
		return nil, apperrors.ErrSourcePayload(fmt.Errorf("transcript %s missing from response", transcriptID))
	}
	return out.Data.Transcript, nil
}

// FetchTranscripts lists transcripts and resolves each one's summary.
// A transcript whose summary lookup fails is returned without a summary;
// the caller skips it rather than losing the whole batch.
func (c *Client) FetchTranscripts(ctx context.Context, apiKey string) ([]Transcript, error) {
	listed, err := c.ListTranscripts(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	transcripts := make([]Transcript, 0, len(listed))
	for _, t := range listed {
		full, err := c.TranscriptSummary(ctx, apiKey, t.ID)
		if err != nil {
			transcripts = append(transcripts, t)
			continue
		}
		transcripts = append(transcripts, *full)
	}
	return transcripts, nil
}

// request posts one GraphQL query with bearer auth and retries transient
// failures with exponential backoff. Non-200 responses are hard errors.
func (c *Client) request(ctx context.Context, apiKey string, payload graphQLRequest, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.ErrSource(err)
	}

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := apperrors.ErrSourceStatus(resp.StatusCode)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(apperrors.ErrSourcePayload(err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		if apperrors.HasCode(err, apperrors.ErrorCode_SOURCE) {
			return err
		}
		return apperrors.ErrSource(err)
	}
	return nil
}
