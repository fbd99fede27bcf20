package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientGeocode(t *testing.T) {
	t.Run("successful forward lookup", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/forward" {
				t.Errorf("path = %q, want /v1/forward", r.URL.Path)
			}
			gotQuery = r.URL.Query().Get("query")
			if r.URL.Query().Get("access_key") != "test-key" {
				t.Errorf("missing access key")
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":[{
				"name": "1308 William H Taft Road",
				"longitude": -84.51,
				"latitude": 39.13,
				"number": "1308",
				"street": "William H Taft Road",
				"locality": "Cincinnati",
				"county": "Hamilton County",
				"region": "Ohio",
				"region_code": "OH",
				"postal_code": "45206",
				"confidence": 1.0
			}]}`))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL, 100)
		res, err := client.Geocode(context.Background(), "1308 WILLIAM H TAFT RD", "603-0A23-0254-00")
		if err != nil {
			t.Fatalf("Geocode() error = %v", err)
		}

		if gotQuery != "1308 WILLIAM H TAFT RD" {
			t.Errorf("query = %q", gotQuery)
		}
		if !res.Resolved() {
			t.Fatalf("expected resolved result: %+v", res)
		}
		if *res.Longitude != -84.51 || *res.Latitude != 39.13 {
			t.Errorf("coordinates = %v,%v", *res.Longitude, *res.Latitude)
		}
		if res.APICity == nil || *res.APICity != "CINCINNATI" {
			t.Errorf("APICity = %v, want CINCINNATI", res.APICity)
		}
		if res.APIState == nil || *res.APIState != "OH" {
			t.Errorf("APIState = %v, want OH", res.APIState)
		}
		if res.FormattedAddress == nil || *res.FormattedAddress != "1308 William H Taft Road, Cincinnati, OH 45206" {
			t.Errorf("FormattedAddress = %v", res.FormattedAddress)
		}
	})

	t.Run("no candidates is a null result, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		client := NewClient("test-key", server.URL, 100)
		res, err := client.Geocode(context.Background(), "NO SUCH PLACE", "P1")
		if err != nil {
			t.Fatalf("Geocode() error = %v", err)
		}
		if res.Resolved() {
			t.Errorf("empty candidate list reported as resolved")
		}
	})

	t.Run("API error status surfaces as error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid access key"}`))
		}))
		defer server.Close()

		client := NewClient("bad-key", server.URL, 100)
		if _, err := client.Geocode(context.Background(), "123 MAIN ST", "P1"); err == nil {
			t.Errorf("expected error on 401 response")
		}
	})
}
