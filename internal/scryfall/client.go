// Package scryfall resolves card names against the Scryfall API and
// classifies each response into a closed set of outcomes.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.scryfall.com"

	// requestTimeout bounds each API call so a hung lookup can't stall the
	// message loop indefinitely.
	requestTimeout = 15 * time.Second

	// requestsPerSecond spaces outgoing requests per Scryfall's API terms
	// (50-100ms between requests).
	requestsPerSecond = 10

	// maxSuggestions is the cap on candidate names returned in a NotFound
	// outcome; the API's total count is reported separately.
	maxSuggestions = 10

	userAgent = "scrybot/1.0"
)

// Client is a Scryfall API client. Each Resolve call owns its own
// request/response cycle; the client keeps no per-lookup state.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a Client. baseURL is the API root; empty means the public
// Scryfall endpoint (tests point it at a local server).
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// namedResponse covers both shapes of /cards/named: a card object and a
// typed error object, distinguished by the "object" field.
type namedResponse struct {
	Object      string     `json:"object"`
	Name        string     `json:"name"`
	ScryfallURI string     `json:"scryfall_uri"`
	ImageURIs   *imageURIs `json:"image_uris"`
	CardFaces   []cardFace `json:"card_faces"`

	Code    string `json:"code"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

type imageURIs struct {
	PNG string `json:"png"`
}

type cardFace struct {
	ImageURIs *imageURIs `json:"image_uris"`
}

type searchResponse struct {
	Object     string `json:"object"`
	TotalCards int    `json:"total_cards"`
	Data       []struct {
		Name string `json:"name"`
	} `json:"data"`
}

// Resolve looks up one card name and returns exactly one Outcome, or a
// classified error. An ambiguous or missing name escalates to a free-text
// search whose candidates become a NotFound outcome; any other API error or
// unrecognized body is returned as an error.
func (c *Client) Resolve(ctx context.Context, name string) (Outcome, error) {
	body, err := c.get(ctx, "/cards/named", url.Values{"exact": {name}})
	if err != nil {
		return nil, err
	}

	var rec namedResponse
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, &ShapeError{Payload: string(body)}
	}

	switch rec.Object {
	case "card":
		return classifyCard(rec), nil
	case "error":
		if rec.Type == "ambiguous" || rec.Code == "not_found" {
			return c.search(ctx, name)
		}
		return nil, &APIError{Code: rec.Code, Details: rec.Details, Payload: string(body)}
	default:
		return nil, &ShapeError{Payload: string(body)}
	}
}

// classifyCard maps a matched card record to Card or CardFaces. A multi-face
// record whose faces carry no images degrades to an imageless Card so that
// CardFaces.ImageURLs is never empty.
func classifyCard(rec namedResponse) Outcome {
	if rec.ImageURIs != nil && rec.ImageURIs.PNG != "" {
		return Card{Name: rec.Name, ImageURL: rec.ImageURIs.PNG, URL: rec.ScryfallURI}
	}

	var faces []string
	for _, f := range rec.CardFaces {
		if f.ImageURIs != nil && f.ImageURIs.PNG != "" {
			faces = append(faces, f.ImageURIs.PNG)
		}
	}
	if len(faces) > 0 {
		return CardFaces{Name: rec.Name, ImageURLs: faces, URL: rec.ScryfallURI}
	}

	return Card{Name: rec.Name, URL: rec.ScryfallURI}
}

// search runs the fallback free-text query after an ambiguous/not_found
// answer. Zero candidates or an unexpected list shape yield an empty NotFound
// rather than an error: "nothing matched" is a valid outcome here.
func (c *Client) search(ctx context.Context, name string) (Outcome, error) {
	body, err := c.get(ctx, "/cards/search", url.Values{"q": {name}})
	if err != nil {
		return nil, err
	}

	var res searchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return NotFound{Name: name}, nil
	}
	if res.Object != "list" || len(res.Data) == 0 {
		return NotFound{Name: name}, nil
	}

	names := make([]string, 0, maxSuggestions)
	for _, card := range res.Data {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, card.Name)
	}

	total := res.TotalCards
	if total < len(names) {
		// The API omits total_cards on some list responses; the candidate
		// count is a lower bound either way.
		total = len(names)
	}

	return NotFound{Name: name, Suggestions: names, Total: total}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Status codes are deliberately ignored: Scryfall pairs its error
	// objects with 4xx statuses and classification is body-driven.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
