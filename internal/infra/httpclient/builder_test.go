package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

func TestBuildRequestSetsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected method GET, got %s", r.Method)
		}
		if r.URL.Query().Get("id") != "ECOLI:EG11345" {
			t.Errorf("expected id query, got %q", r.URL.RawQuery)
		}
		if r.Header.Get("Accept") != acceptXML {
			t.Errorf("expected xml accept header, got %q", r.Header.Get("Accept"))
		}
		if r.Header.Get("User-Agent") != "ecocyc-test" {
			t.Errorf("expected user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := BuildRequest(context.Background(), server.URL+"/apixml?id=ECOLI:EG11345", "ecocyc-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed request: %v", err)
	}
	resp.Body.Close()
}

func TestBuildRequestEmptyURL(t *testing.T) {
	_, err := BuildRequest(context.Background(), "  ", "")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestBuildRequestInvalidURL(t *testing.T) {
	_, err := BuildRequest(context.Background(), "http://[::1", "")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
