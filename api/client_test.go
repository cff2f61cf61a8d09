package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"poolbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refreshingCredentials swaps to a second token on Refresh and counts calls
type refreshingCredentials struct {
	current  string
	next     string
	refreshs int32
}

func (c *refreshingCredentials) Token(ctx context.Context) (string, error) {
	return c.current, nil
}

func (c *refreshingCredentials) Refresh(ctx context.Context) (string, error) {
	atomic.AddInt32(&c.refreshs, 1)
	c.current = c.next
	return c.current, nil
}

func TestClient_AttachesBearerAndHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(models.Bet{ID: "bet-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, NewStaticCredentials("tok-1"))
	bet, err := client.GetBet(context.Background(), "bet-1")

	require.NoError(t, err)
	assert.Equal(t, "bet-1", bet.ID)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_RefreshesOnceOn401(t *testing.T) {
	var calls int32
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(body))

		if atomic.AddInt32(&calls, 1) == 1 {
			assert.Equal(t, "Bearer stale", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	creds := &refreshingCredentials{current: "stale", next: "fresh"}
	client := NewClient(server.URL, creds)

	err := client.Contribute(context.Background(), ContributionRequest{
		BetID:    "bet-1",
		BetSide:  models.SideFor,
		Quantity: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&creds.refreshs))
	// The retry resends the identical payload
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
	assert.JSONEq(t, `{"bet_id":"bet-1","bet_side":"for","quantity":20}`, bodies[1])
}

func TestClient_SecondUnauthorizedAborts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	creds := &refreshingCredentials{current: "stale", next: "still-stale"}
	client := NewClient(server.URL, creds)

	err := client.Contribute(context.Background(), ContributionRequest{
		BetID:    "bet-1",
		BetSide:  models.SideFor,
		Quantity: 20,
	})

	require.ErrorIs(t, err, ErrUnauthorized)
	// Exactly one retry, never a third attempt
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, NewStaticCredentials("tok"))
	_, err := client.GetBet(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ForbiddenMapsToUpgradeRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, NewStaticCredentials("tok"))
	_, err := client.CreateGroup(context.Background(), CreateGroupRequest{Name: "x", IsPrivate: true})

	assert.ErrorIs(t, err, ErrUpgradeRequired)
}

func TestClient_DecodesBackendDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "quantity exceeds remaining target"})
	}))
	defer server.Close()

	client := NewClient(server.URL, NewStaticCredentials("tok"))
	err := client.Contribute(context.Background(), ContributionRequest{
		BetID:    "bet-1",
		BetSide:  models.SideFor,
		Quantity: 9999,
	})

	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "quantity exceeds remaining target", apiErr.Message)
}

func TestClient_CreateBetRoutesByTopology(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		json.NewEncoder(w).Encode(models.Bet{ID: "bet-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, NewStaticCredentials("tok"))
	ctx := context.Background()

	_, err := client.CreateBet(ctx, CreateBetRequest{Topology: models.TopologySinglePool, Description: "x"})
	require.NoError(t, err)
	_, err = client.CreateBet(ctx, CreateBetRequest{Topology: models.TopologyTwoSided, Description: "x"})
	require.NoError(t, err)
	_, err = client.CreateBet(ctx, CreateBetRequest{Topology: "sideways", Description: "x"})
	require.Error(t, err)

	assert.Equal(t, []string{"/api/bets/one-to-many", "/api/bets/many-to-many"}, paths)
}

func TestClient_ListGroupBetsQueryParams(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode([]*models.Bet{})
	}))
	defer server.Close()

	client := NewClient(server.URL, NewStaticCredentials("tok"))
	_, err := client.ListGroupBets(context.Background(), "group-1", 25, 50)

	require.NoError(t, err)
	assert.Equal(t, "limit=25&offset=50", query)
}
