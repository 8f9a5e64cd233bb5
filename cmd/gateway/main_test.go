package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"product-copy/internal/app"
	"product-copy/internal/config"
	"product-copy/internal/llm"
	"product-copy/internal/product"
)

func newTestDeps(gen *product.Generator, sug *product.Suggester) app.Deps {
	return app.Deps{
		Config:    config.Config{AllowedOrigins: []string{"*"}},
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Generator: gen,
		Suggester: sug,
	}
}

func fixedRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGenerateHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name          string
		body          string
		setup         func(*llm.MockClient)
		mockMode      bool
		wantStatus    int
		checkResponse func(*testing.T, product.ProductResponse)
	}{
		{
			name:       "mock mode",
			body:       `{"product_name":"Aero Bottle","features":["insulated","light"],"target_audience":"Hikers"}`,
			mockMode:   true,
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp product.ProductResponse) {
				assert.Equal(t, "Aero Bottle", resp.ProductName)
				assert.Contains(t, resp.Description, "insulated, light")
				assert.Contains(t, resp.Keywords, "aero")
				assert.Contains(t, resp.Keywords, "hikers")
			},
		},
		{
			name: "remote success",
			body: `{"product_name":"Widget","features":["fast","cheap"],"target_audience":"developers"}`,
			setup: func(c *llm.MockClient) {
				c.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
					return strings.Contains(p, "professional")
				})).Return(`{"description":"X","keywords":["a","b"]}`, nil).Once()
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp product.ProductResponse) {
				assert.Equal(t, "X", resp.Description)
				assert.Equal(t, []string{"a", "b"}, resp.Keywords)
			},
		},
		{
			name: "remote failure stays 200 with error marker",
			body: `{"product_name":"Widget","features":[],"target_audience":"developers","tone":"bold"}`,
			setup: func(c *llm.MockClient) {
				c.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp product.ProductResponse) {
				assert.True(t, strings.HasPrefix(resp.Description, "[ERROR]"))
				assert.Equal(t, []string{"error"}, resp.Keywords)
			},
		},
		{
			name:       "invalid json",
			body:       `{invalid json}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing product name",
			body:       `{"features":["fast"],"target_audience":"developers"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(llm.MockClient)
			if tt.setup != nil {
				tt.setup(client)
			}
			gen := product.NewRemoteGenerator(client, log)
			if tt.mockMode {
				gen = product.NewMockGenerator(log, product.WithRand(fixedRand))
			}
			router := newRouter(newTestDeps(gen, product.NewSuggester(client, log)))

			w := do(t, router, http.MethodPost, "/generate", tt.body)

			require.Equal(t, tt.wantStatus, w.Code, "body: %s", w.Body.String())
			if tt.checkResponse != nil {
				var resp product.ProductResponse
				require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp))
				tt.checkResponse(t, resp)
			}
			client.AssertExpectations(t)
		})
	}
}

func TestSuggestAudiencesHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no api key", func(t *testing.T) {
		sug := product.NewSuggester(llm.Unavailable{Err: product.ErrMissingCredential}, log)
		router := newRouter(newTestDeps(product.NewMockGenerator(log), sug))

		w := do(t, router, http.MethodPost, "/suggest_audiences", `{"product_name":"Widget","features":["fast","cheap"]}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp product.AudienceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Audiences, 1)
		assert.Contains(t, resp.Audiences[0], "No API key")
	})

	t.Run("remote success", func(t *testing.T) {
		client := new(llm.MockClient)
		client.On("Complete", mock.Anything, mock.Anything).
			Return("```json\n{\"audiences\":[\"Students\",\"Gamers\"]}\n```", nil).Once()
		router := newRouter(newTestDeps(product.NewMockGenerator(log), product.NewSuggester(client, log)))

		w := do(t, router, http.MethodPost, "/suggest_audiences", `{"product_name":"Widget","features":["fast"]}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp product.AudienceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"Students", "Gamers"}, resp.Audiences)
		client.AssertExpectations(t)
	})

	t.Run("invalid payload", func(t *testing.T) {
		router := newRouter(newTestDeps(product.NewMockGenerator(log), product.NewSuggester(nil, log)))

		w := do(t, router, http.MethodPost, "/suggest_audiences", `not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRootAndHealth(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := newRouter(newTestDeps(product.NewMockGenerator(log), product.NewSuggester(nil, log)))

	w := do(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])

	w = do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
