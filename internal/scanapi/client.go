// Package scanapi is the HTTP client for the artifact analysis server. It
// covers the two endpoints the app uses: the health probe and the multipart
// analysis upload.
package scanapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/zyarat-mobile/zyarat/internal/artifact"
	"github.com/zyarat-mobile/zyarat/internal/config"
	"github.com/zyarat-mobile/zyarat/internal/imageprep"
)

// ProbeResult reports whether the analysis server is ready to accept uploads.
type ProbeResult struct {
	Ready  bool
	Detail string
}

// Client talks to the analysis server.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	healthTimeout  time.Duration
	analyzeTimeout time.Duration
	useSampleData  bool
}

// New builds a client from configuration.
func New(cfg config.Config) *Client {
	return &Client{
		baseURL:        cfg.APIURL,
		httpClient:     &http.Client{},
		healthTimeout:  cfg.HealthTimeout,
		analyzeTimeout: cfg.AnalyzeTimeout,
		useSampleData:  cfg.UseSampleData,
	}
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status string `json:"status"`
}

// Probe checks whether the analysis server is reachable and ready. The
// server is ready iff the health endpoint answers 2xx with status "ok";
// anything else (non-2xx, timeout, wrong sentinel) is reported as not ready
// with a human-readable detail. Probe never retries; that decision belongs
// to the caller.
func (c *Client) Probe(ctx context.Context) ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return ProbeResult{Detail: fmt.Sprintf("invalid health request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("Server health check failed", "url", c.baseURL, "err", err)
		return ProbeResult{Detail: fmt.Sprintf("server unreachable: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ProbeResult{Detail: fmt.Sprintf("health check returned status %d", resp.StatusCode)}
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return ProbeResult{Detail: fmt.Sprintf("failed to decode health response: %v", err)}
	}

	if health.Status != "ok" {
		return ProbeResult{Detail: fmt.Sprintf("server is not ready: %s", health.Status)}
	}

	slog.Debug("Server health check successful", "url", c.baseURL)
	return ProbeResult{Ready: true, Detail: "ok"}
}

// analyzeResponse mirrors the JSON the analysis server returns for both the
// recognized and the unrecognized path.
type analyzeResponse struct {
	Title        string  `json:"title"`
	Period       string  `json:"period"`
	Description  string  `json:"description"`
	Significance string  `json:"significance"`
	Location     string  `json:"location"`
	Confidence   float64 `json:"confidence"`

	Error                  string `json:"error"`
	PossibleIdentification string `json:"possible_identification"`
	Explanation            string `json:"explanation"`
}

// Submit uploads a prepared image for analysis and maps the server's JSON
// into a Result. Classification follows the response shape: a body carrying
// the error marker becomes an unrecognized result, a well-formed artifact
// payload becomes a recognized one, and every transport/HTTP/parse problem
// is returned as an error with the cause wrapped — a single call yields
// exactly one of the three.
func (c *Client) Submit(ctx context.Context, img *imageprep.Prepared) (*artifact.Result, error) {
	if c.useSampleData {
		sample := artifact.Samples[rand.Intn(len(artifact.Samples))]
		slog.Info("Using sample data", "title", sample.Title)
		return &artifact.Result{Outcome: artifact.OutcomeRecognized, Artifact: &sample}, nil
	}

	body, contentType, err := buildMultipartBody(img.Data)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.analyzeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	slog.Info("Uploading image for analysis", "url", c.baseURL, "bytes", len(img.Data))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send image to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, string(detail))
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	return classify(parsed)
}

func classify(parsed analyzeResponse) (*artifact.Result, error) {
	if parsed.Error != "" {
		slog.Info("Not recognized as artifact",
			"possible_identification", parsed.PossibleIdentification,
			"confidence", parsed.Confidence)
		return &artifact.Result{
			Outcome:                artifact.OutcomeUnrecognized,
			PossibleIdentification: parsed.PossibleIdentification,
			Explanation:            parsed.Explanation,
			Confidence:             parsed.Confidence,
		}, nil
	}

	if parsed.Title == "" {
		return nil, fmt.Errorf("malformed analysis response: no error marker and no title")
	}

	slog.Info("Artifact recognized", "title", parsed.Title, "confidence", parsed.Confidence)
	return &artifact.Result{
		Outcome: artifact.OutcomeRecognized,
		Artifact: &artifact.Details{
			Title:        parsed.Title,
			Period:       parsed.Period,
			Description:  parsed.Description,
			Significance: parsed.Significance,
			Location:     parsed.Location,
			Confidence:   parsed.Confidence,
		},
	}, nil
}

// buildMultipartBody wraps JPEG bytes into the multipart form the server
// expects: a single part named "image" with an image/jpeg content type.
func buildMultipartBody(data []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="artifact.jpg"`)
	header.Set("Content-Type", "image/jpeg")

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
