package zenquotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/inspiration/internal/fetch"
	"github.com/ytget/inspiration/internal/logging"
	"github.com/ytget/inspiration/internal/model"
)

func newTestProvider(baseURL string) *Provider {
	logger := logging.Discard()
	return NewProviderWithURL(baseURL, fetch.NewClient(5*time.Second, logger), logger)
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/random", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProvider_RandomQuote_Success(t *testing.T) {
	srv := serve(t, http.StatusOK, `[{"q":"Stay hungry","a":"Anon","h":"<blockquote/>"}]`)

	quote, err := newTestProvider(srv.URL).RandomQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Quote{Text: "Stay hungry", Author: "Anon"}, quote)
	assert.Equal(t, "Stay hungry - Anon", quote.Display())
}

func TestProvider_RandomQuote_TakesFirst(t *testing.T) {
	srv := serve(t, http.StatusOK, `[{"q":"one","a":"A"},{"q":"two","a":"B"}]`)

	quote, err := newTestProvider(srv.URL).RandomQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one", quote.Text)
}

func TestProvider_RandomQuote_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"object instead of array", `{"q":"x","a":"y"}`},
		{"missing author", `[{"q":"x"}]`},
		{"numeric text", `[{"q":1,"a":"y"}]`},
		{"string element", `["x"]`},
		{"not json", `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tt.body)
			_, err := newTestProvider(srv.URL).RandomQuote(context.Background())
			assert.ErrorIs(t, err, fetch.ErrParse)
		})
	}
}

func TestProvider_RandomQuote_HTTPError(t *testing.T) {
	srv := serve(t, http.StatusTooManyRequests, `{}`)

	_, err := newTestProvider(srv.URL).RandomQuote(context.Background())
	assert.ErrorIs(t, err, fetch.ErrHTTPStatus)
	assert.NotErrorIs(t, err, fetch.ErrQuotaExceeded)
}
