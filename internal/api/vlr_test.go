package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"vlr-growth/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.Config{VLRAPIBaseURL: baseURL, PageLimit: 2})
}

func TestGetPlayer_DecodesDetailEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/629" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"status":"OK","data":{"info":{"id":"629","user":"aspas","country":"br"},"team":{"id":"11058","name":"Leviatán","tag":"LEV"},"results":[],"pastTeams":[],"socials":{}}}`)
	}))
	defer ts.Close()

	resp, err := newTestClient(ts.URL).GetPlayer(context.Background(), "629")
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if resp.Data == nil || resp.Data.Info.User != "aspas" {
		t.Errorf("decoded detail = %+v", resp.Data)
	}
	if resp.Data.Team == nil || resp.Data.Team.Tag != "LEV" {
		t.Errorf("decoded team = %+v", resp.Data.Team)
	}
}

func TestGetPlayer_MissingDataDecodesToNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OK"}`)
	}))
	defer ts.Close()

	resp, err := newTestClient(ts.URL).GetPlayer(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if resp.Data != nil {
		t.Errorf("data = %+v, want nil for absent payload", resp.Data)
	}
}

func TestDoRequest_NonSuccessIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "rate limited")
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GetPlayer(context.Background(), "629")
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if transportErr.StatusCode != http.StatusTooManyRequests || transportErr.Body != "rate limited" {
		t.Errorf("transport error = %+v", transportErr)
	}
}

func TestDoRequest_MalformedBodyIsDecodeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GetPlayer(context.Background(), "629")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}
}

func TestGetAllPlayers_WalksPagesSequentially(t *testing.T) {
	pages := map[string]string{
		"1": `{"status":"OK","pagination":{"page":1,"hasNextPage":true},"data":[{"id":"1","name":"a"},{"id":"2","name":"b"}]}`,
		"2": `{"status":"OK","pagination":{"page":2,"hasNextPage":true},"data":[{"id":"3","name":"c"}]}`,
		"3": `{"status":"OK","pagination":{"page":3,"hasNextPage":false},"data":[{"id":"4","name":"d"}]}`,
	}
	var requested []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		requested = append(requested, page)
		fmt.Fprint(w, pages[page])
	}))
	defer ts.Close()

	players, err := newTestClient(ts.URL).GetAllPlayers(context.Background(), "")
	if err != nil {
		t.Fatalf("GetAllPlayers: %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("players = %d, want 4 across 3 pages", len(players))
	}
	if len(requested) != 3 || requested[0] != "1" || requested[2] != "3" {
		t.Errorf("requested pages = %v, want sequential 1..3", requested)
	}
}

func TestGetAllPlayers_ErrorDiscardsPartialResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page >= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"status":"OK","pagination":{"page":1,"hasNextPage":true},"data":[{"id":"1","name":"a"}]}`)
	}))
	defer ts.Close()

	players, err := newTestClient(ts.URL).GetAllPlayers(context.Background(), "")
	if err == nil {
		t.Fatal("expected error from failing page")
	}
	if players != nil {
		t.Errorf("players = %+v, want nil (partials discarded)", players)
	}
}

func TestGetTeams_FilterForwarded(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("region"); got != "emea" {
			t.Errorf("region = %q, want emea", got)
		}
		fmt.Fprint(w, `{"status":"OK","pagination":{"hasNextPage":false},"data":[{"id":"1","name":"FUT","region":"emea"}]}`)
	}))
	defer ts.Close()

	resp, err := newTestClient(ts.URL).GetTeams(context.Background(), 1, 10, "emea")
	if err != nil {
		t.Fatalf("GetTeams: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "FUT" {
		t.Errorf("teams = %+v", resp.Data)
	}
}
