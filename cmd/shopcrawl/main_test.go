package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	main "github.com/fwojciec/shopcrawl/cmd/shopcrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "shopcrawl")
	assert.Contains(t, stdout.String(), "urls")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"https://example.com", "--frobnicate"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_SinglePageSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Shop</title></head><body><p>Hand-made widgets since 1999</p></body></html>`))
	}))
	defer srv.Close()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{srv.URL, "--single-page", "--skip-profiling"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "WEBSITE DATA FROM")
	assert.Contains(t, stdout.String(), "Hand-made widgets since 1999")
}

func TestMain_Run_AllSessionsFailing(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// Nothing listens on port 1.
	err := m.Run(context.Background(), []string{
		"http://127.0.0.1:1/", "--single-page", "--skip-profiling", "--timeout", "5s",
	}, &stdout, &stderr)

	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "failed")
}

func TestMain_Run_CommaSeparatedSeeds(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>Storefront ` + r.Host + `</p></body></html>`))
	}))
	defer srv.Close()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	seeds := srv.URL + "/a," + srv.URL + "/b"
	err := m.Run(context.Background(), []string{seeds, "--single-page", "--skip-profiling"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(stdout.Bytes(), []byte("WEBSITE DATA FROM")))
}
