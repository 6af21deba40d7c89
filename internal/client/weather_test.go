package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTodayWeatherFound(t *testing.T) {
	today := time.Now().Format("01-02")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `[{"date":"01-01","weather":"Snowy"},{"date":%q,"weather":"Sunny"}]`, today)
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL)
	weather, err := c.TodayWeather(context.Background())
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if weather != "Sunny" {
		t.Fatalf("expected Sunny, got %q", weather)
	}
}

func TestTodayWeatherMissingEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"date":"13-32","weather":"Impossible"}]`)
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL)
	if _, err := c.TodayWeather(context.Background()); err == nil {
		t.Fatal("expected error when today's entry is missing")
	}
}

func TestTodayWeatherUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewWeatherClient(srv.URL)
	if _, err := c.TodayWeather(context.Background()); err == nil {
		t.Fatal("expected error on upstream failure")
	}
}
