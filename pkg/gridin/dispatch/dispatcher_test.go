package dispatch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/payload"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func okResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"data":{"createNode":{"errors":[]}}}`))
}

func TestClientSubmit(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		okResponse(w)
	}))
	defer server.Close()

	client := NewClient(server.URL, map[string]string{"Authorization": "Bearer secret"}, time.Second)
	env := payload.New("mutation {}", "node", map[string]any{"name": "n1"})

	resp, err := client.Submit(context.Background(), env)
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, http.StatusOK, resp.Status)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	var decoded payload.Envelope
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "mutation {}", decoded.Query)
}

func TestClientGraphQLErrorsFailItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"createNode":{"errors":[{"field":"name","message":"taken"}]}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, time.Second)
	resp, err := client.Submit(context.Background(), payload.Envelope{Query: "mutation {}"})
	require.NoError(t, err)

	assert.False(t, resp.OK())
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "taken")
}

func TestClientNonJSONBodyKeptVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, time.Second)
	resp, err := client.Submit(context.Background(), payload.Envelope{Query: "mutation {}"})
	require.NoError(t, err)

	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusBadGateway, resp.Status)
	assert.Equal(t, "upstream exploded", resp.Body)
	assert.Empty(t, resp.Errors)
}

func TestDispatcherOrder(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var env payload.Envelope
		_ = json.Unmarshal(body, &env)
		calls = append(calls, env.Query)
		okResponse(w)
	}))
	defer server.Close()

	batches := []Batch{
		{Stage: "node_groups", Items: []Item{
			{Name: "zone_a", Envelope: payload.Envelope{Query: "create group zone_a"}},
		}},
		{Stage: "node_memberships", Items: []Item{
			{Name: "n1_zone_a", Envelope: payload.Envelope{Query: "add n1 to zone_a"}},
		}},
		{Stage: "topologies", Items: []Item{
			{Name: "p1_n1", Envelope: payload.Envelope{Query: "create topology p1 n1"}},
		}},
	}

	d := NewDispatcher(NewClient(server.URL, nil, time.Second), quietLogger())
	summary := d.Run(context.Background(), batches)

	assert.Equal(t, 3, summary.Submitted)
	assert.Zero(t, summary.Failed)
	// a membership goes out strictly after its group's creation, and a
	// topology after both of those stages
	require.Equal(t, []string{
		"create group zone_a",
		"add n1 to zone_a",
		"create topology p1 n1",
	}, calls)
}

func TestDispatcherContinuesPastFailure(t *testing.T) {
	var n int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n++
		if n == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		okResponse(w)
	}))
	defer server.Close()

	batches := []Batch{
		{Stage: "nodes", Items: []Item{
			{Name: "bad", Envelope: payload.Envelope{Query: "a"}},
			{Name: "good", Envelope: payload.Envelope{Query: "b"}},
		}},
		{Stage: "processes", Items: []Item{
			{Name: "later", Envelope: payload.Envelope{Query: "c"}},
		}},
	}

	d := NewDispatcher(NewClient(server.URL, nil, time.Second), quietLogger())
	summary := d.Run(context.Background(), batches)

	assert.Equal(t, 3, summary.Submitted)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "nodes", summary.Failures[0].Stage)
	assert.Equal(t, "bad", summary.Failures[0].Name)
	assert.Equal(t, http.StatusInternalServerError, summary.Failures[0].Status)
	// all three items reached the server despite the first failing
	assert.Equal(t, 3, n)
}

func TestDispatcherSkipsEmptyBatches(t *testing.T) {
	var n int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n++
		okResponse(w)
	}))
	defer server.Close()

	d := NewDispatcher(NewClient(server.URL, nil, time.Second), quietLogger())
	summary := d.Run(context.Background(), []Batch{{Stage: "risks"}})

	assert.Zero(t, summary.Submitted)
	assert.Zero(t, n)
}
