package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowQuery(t *testing.T) {
	clubID, year, month = "club1", "2024", "3"
	defer func() { clubID, year, month = "", "", "" }()

	assert.Equal(t, "club=club1&month=3&year=2024", windowQuery().Encode())
}

func TestGameQuery(t *testing.T) {
	dryRun = true
	defer func() { dryRun = false }()

	assert.Equal(t, "dry_run=true&game=g1", gameQuery("g1").Encode())
}

func TestPerformRequest(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	host = srv.URL
	defer func() { host = "http://localhost:8080" }()

	require.NoError(t, performRequest(http.MethodPost, "/api/games/complete", gameQuery("g1")))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/games/complete", gotPath)
	assert.Equal(t, "game=g1", gotQuery)
}
