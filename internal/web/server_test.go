package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sweeney/nev-ttl/internal/ttl"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	res := &ttl.Result{
		Times: []float64{0, 1, 2.5, 4},
		Unit:  ttl.UnitSeconds,
	}
	res.Pulses[5] = []ttl.Pulse{{Start: 1, End: 2.5}}

	srv := New(":0", NewView("session1/Events.csv", res))
	ts := httptest.NewServer(srv.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestJSONEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/pulses.json")
	if err != nil {
		t.Fatalf("GET /pulses.json: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var rj ResultJSON
	if err := json.NewDecoder(resp.Body).Decode(&rj); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}

	if rj.Recording.Source != "session1/Events.csv" {
		t.Errorf("source: got %q", rj.Recording.Source)
	}
	if rj.Recording.TimeUnit != "seconds" {
		t.Errorf("time_unit: got %q", rj.Recording.TimeUnit)
	}
	if rj.Recording.Events != 4 {
		t.Errorf("events: got %d, want 4", rj.Recording.Events)
	}
	if rj.Recording.Span != 4 {
		t.Errorf("span: got %v, want 4", rj.Recording.Span)
	}
	if len(rj.Recording.Channels) != 1 {
		t.Fatalf("channels: got %d, want 1", len(rj.Recording.Channels))
	}
	ch := rj.Recording.Channels[0]
	if ch.Channel != 5 {
		t.Errorf("channel: got %d, want 5", ch.Channel)
	}
	if len(ch.Pulses) != 1 || ch.Pulses[0] != [2]float64{1, 2.5} {
		t.Errorf("pulses: got %v", ch.Pulses)
	}
}

func TestIndexEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	html := string(body)
	if !strings.Contains(html, "session1/Events.csv") {
		t.Error("index should name the source")
	}
	if !strings.Contains(html, "seconds") {
		t.Error("index should show the time unit")
	}
}

func TestChartEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/chart")
	if err != nil {
		t.Fatalf("GET /chart: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "TTL pulse counts") {
		t.Error("chart should contain the pulse count chart title")
	}
}

func TestUnknownPath(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
}
