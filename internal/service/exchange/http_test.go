package exchange

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbhik/walletgpt/backend/internal/model/chat"
	walletmodel "github.com/nirbhik/walletgpt/backend/internal/model/wallet"
)

func TestHTTPEndpointPostsExplainRequest(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/explain", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"reply":"all good"}`))
	}))
	defer srv.Close()

	req := Request{
		Wallet:   walletmodel.Snapshot{Address: "0xABC", BalanceEth: "1.5"},
		Messages: []chat.Turn{chat.UserTurn("hi")},
	}

	reply, err := NewHTTPEndpoint(srv.URL + "/").Explain(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "all good", reply)
	assert.Equal(t, req, got)
}

func TestHTTPEndpointSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"LLM error 503: rate limited"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPEndpoint(srv.URL).Explain(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, "LLM error 503: rate limited", err.Error())
}

func TestHTTPEndpointGenericErrorOnOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := NewHTTPEndpoint(srv.URL).Explain(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, "API error (502)", err.Error())
}
