package scanapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyarat-mobile/zyarat/internal/artifact"
	"github.com/zyarat-mobile/zyarat/internal/config"
	"github.com/zyarat-mobile/zyarat/internal/imageprep"
)

func testClient(baseURL string) *Client {
	cfg := config.Load()
	cfg.APIURL = baseURL
	cfg.HealthTimeout = 2 * time.Second
	cfg.AnalyzeTimeout = 5 * time.Second
	return New(cfg)
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantReady bool
	}{
		{name: "ready", status: http.StatusOK, body: `{"status":"ok"}`, wantReady: true},
		{name: "wrong sentinel", status: http.StatusOK, body: `{"status":"starting"}`, wantReady: false},
		{name: "server error", status: http.StatusInternalServerError, body: `{"status":"ok"}`, wantReady: false},
		{name: "not json", status: http.StatusOK, body: "OK", wantReady: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			result := testClient(srv.URL).Probe(context.Background())
			assert.Equal(t, tt.wantReady, result.Ready)
			if !tt.wantReady {
				assert.NotEmpty(t, result.Detail)
			}
		})
	}
}

func TestProbeUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // probe a dead server

	result := testClient(srv.URL).Probe(context.Background())
	assert.False(t, result.Ready)
	assert.Contains(t, result.Detail, "unreachable")
}

func TestProbeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer srv.Close()

	cfg := config.Load()
	cfg.APIURL = srv.URL
	cfg.HealthTimeout = 50 * time.Millisecond
	result := New(cfg).Probe(context.Background())
	assert.False(t, result.Ready)
}

func preparedImage() *imageprep.Prepared {
	return &imageprep.Prepared{
		Data:      []byte("jpeg bytes"),
		Width:     900,
		Height:    600,
		SourceURI: "file:///tmp/photo.jpg",
	}
}

func TestSubmitRecognized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "artifact.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))

		fmt.Fprint(w, `{
			"title": "Roman Mosaic",
			"period": "Roman Period (146 BCE-439 CE)",
			"description": "A detailed floor mosaic.",
			"significance": "Among the finest in the Mediterranean.",
			"location": "Bardo National Museum, Tunis",
			"confidence": 0.92
		}`)
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Submit(context.Background(), preparedImage())
	require.NoError(t, err)

	assert.Equal(t, artifact.OutcomeRecognized, result.Outcome)
	require.NotNil(t, result.Artifact)
	assert.Equal(t, "Roman Mosaic", result.Artifact.Title)
	assert.InDelta(t, 0.92, result.Artifact.Confidence, 1e-9)
}

func TestSubmitUnrecognized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"error": "Not a Tunisian artifact",
			"possible_identification": "A modern coffee mug",
			"explanation": "The image shows an everyday object.",
			"confidence": 0.3
		}`)
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Submit(context.Background(), preparedImage())
	require.NoError(t, err)

	assert.Equal(t, artifact.OutcomeUnrecognized, result.Outcome)
	assert.Nil(t, result.Artifact)
	assert.Equal(t, "A modern coffee mug", result.PossibleIdentification)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestSubmitFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not json at all")
			},
		},
		{
			name: "shapeless body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"confidence": 0.5}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			result, err := testClient(srv.URL).Submit(context.Background(), preparedImage())
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestSubmitSampleDataMode(t *testing.T) {
	cfg := config.Load()
	cfg.APIURL = "http://127.0.0.1:1" // unroutable; must never be contacted
	cfg.UseSampleData = true

	result, err := New(cfg).Submit(context.Background(), preparedImage())
	require.NoError(t, err)
	require.True(t, result.Recognized())
	assert.NotEmpty(t, result.Artifact.Title)
}
