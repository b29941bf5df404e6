package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPComparator_Compare(t *testing.T) {
	var got compareRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/compare", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"similar":    true,
			"similarity": 0.87,
		})
	}))
	defer srv.Close()

	hc := NewHTTPComparator(srv.URL)
	res, err := hc.Compare(context.Background(), "ref-img", "cap-img")
	require.NoError(t, err)

	assert.True(t, res.Similar)
	assert.InDelta(t, 0.87, res.Similarity, 1e-9)
	assert.Equal(t, "ref-img", got.RegisteredFace)
	assert.Equal(t, "cap-img", got.CapturedFace)
}

func TestHTTPComparator_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPComparator(srv.URL).Compare(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "face service returned 500")
}

func TestHTTPComparator_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := NewHTTPComparator(srv.URL).Compare(context.Background(), "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "face service unreachable")
}
