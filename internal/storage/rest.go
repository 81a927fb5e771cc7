package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/normalize"
)

// DefaultTimeout is the transport timeout when the caller does not supply
// an http.Client of its own.
const DefaultTimeout = 30 * time.Second

// RESTStore talks to the persistence collaborator's JSON API:
//
//	GET  /resume -> 200 {data: wire} | 404 (no resume yet)
//	POST /resume -> 200/201 {data: wire with server id}
//	PUT  /resume -> 200 {data: wire}
type RESTStore struct {
	baseURL string
	token   string
	client  *http.Client
}

// dataEnvelope is the collaborator's response wrapper.
type dataEnvelope struct {
	Data *normalize.WireDocument `json:"data"`
}

// NewRESTStore creates a REST-backed store. token is the bearer token used
// on every request; client may be nil, in which case a default-timeout
// client is used.
func NewRESTStore(baseURL, token string, client *http.Client) *RESTStore {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &RESTStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

// Fetch retrieves the current user's resume. A 404 means no resume exists
// yet and yields (nil, nil).
func (s *RESTStore) Fetch(ctx context.Context) (*normalize.WireDocument, error) {
	resp, err := s.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, &TransportError{Op: "load", Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: "load", Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	return decodeEnvelope(resp.Body, "load")
}

// Create stores a new resume and returns the wire document carrying the
// server-assigned identifier.
func (s *RESTStore) Create(ctx context.Context, doc *normalize.WireDocument) (*normalize.WireDocument, error) {
	return s.write(ctx, http.MethodPost, doc)
}

// Update replaces the already-identified remote resume.
func (s *RESTStore) Update(ctx context.Context, doc *normalize.WireDocument) (*normalize.WireDocument, error) {
	return s.write(ctx, http.MethodPut, doc)
}

func (s *RESTStore) write(ctx context.Context, method string, doc *normalize.WireDocument) (*normalize.WireDocument, error) {
	op := "save"
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, &TransportError{Op: op, Message: "failed to encode document", Cause: err}
	}

	resp, err := s.do(ctx, method, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: op, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &TransportError{Op: op, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	return decodeEnvelope(resp.Body, op)
}

func (s *RESTStore) do(ctx context.Context, method string, body io.Reader) (*http.Response, error) {
	if err := checkToken(s.token); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/resume", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.client.Do(req)
}

func decodeEnvelope(r io.Reader, op string) (*normalize.WireDocument, error) {
	var env dataEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, &TransportError{Op: op, Message: "failed to decode response body", Cause: err}
	}
	if env.Data == nil {
		return nil, &TransportError{Op: op, Message: "response body missing data envelope"}
	}
	return env.Data, nil
}
