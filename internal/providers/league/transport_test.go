package league

import (
	"net/http"
	"testing"
)

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base URL, got %s", got)
	}
	if got := normalizeBaseURL("http://example.com/v1/"); got != "http://example.com/v1" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
}

func TestResolveHTTPClient(t *testing.T) {
	custom := &http.Client{}
	if got := resolveHTTPClient(custom); got != custom {
		t.Fatalf("expected custom client returned")
	}
	if got := resolveHTTPClient(nil); got == nil {
		t.Fatalf("expected default client for nil")
	}
}

func TestResolveMaxPages(t *testing.T) {
	if got := resolveMaxPages(0); got != defaultMaxPages {
		t.Fatalf("expected default max pages, got %d", got)
	}
	if got := resolveMaxPages(9); got != 9 {
		t.Fatalf("expected explicit max pages, got %d", got)
	}
}
