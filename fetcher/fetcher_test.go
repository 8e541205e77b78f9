package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func TestFetchSuccess(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		io.WriteString(w, "<html><body><h1>Hello</h1></body></html>")
	}))
	defer server.Close()

	f := New(time.Second, "TestAgent/1.0")
	res, err := f.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if res.HTML != "<html><body><h1>Hello</h1></body></html>" {
		t.Errorf("Unexpected body: %q", res.HTML)
	}
	if res.StatusCode != http.StatusOK || res.Elapsed <= 0 {
		t.Errorf("Unexpected result: %+v", res)
	}
	if gotUA != "TestAgent/1.0" {
		t.Errorf("Expected user agent to be sent, got %q", gotUA)
	}
}

func TestFetchFailures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		timeout    time.Duration
		wantKind   Kind
		wantStatus int
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantKind:   KindHTTPStatus,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantKind:   KindHTTPStatus,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, "  \n ")
			},
			wantKind: KindEmptyResponse,
		},
		{
			name: "slow server",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
			},
			timeout:  50 * time.Millisecond,
			wantKind: KindTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			timeout := tt.timeout
			if timeout == 0 {
				timeout = time.Second
			}
			_, err := New(timeout, "").Fetch(context.Background(), server.URL)

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("Expected *FetchError, got %v", err)
			}
			if fetchErr.Kind != tt.wantKind {
				t.Errorf("Expected kind %s, got %s (%v)", tt.wantKind, fetchErr.Kind, err)
			}
			if tt.wantStatus != 0 && fetchErr.StatusCode != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, fetchErr.StatusCode)
			}
		})
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	target := server.URL
	server.Close()

	_, err := New(time.Second, "").Fetch(context.Background(), target)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Kind != KindConnectionRefused {
		t.Errorf("Expected connection-refused, got %v", err)
	}
}

func TestFetchUntrustedCertificate(t *testing.T) {
	server := httptest.NewTLSServer(http.NotFoundHandler())
	defer server.Close()

	_, err := New(time.Second, "").Fetch(context.Background(), server.URL)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Kind != KindTLS {
		t.Errorf("Expected tls, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), KindTimeout},
		{"dns", &url.Error{Op: "Get", URL: "http://nope.invalid", Err: &net.DNSError{Err: "no such host", Name: "nope.invalid"}}, KindDNS},
		{"other", errors.New("boom"), KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.err); got != tt.want {
				t.Errorf("classify(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestFetchErrorUnwrap(t *testing.T) {
	cause := errors.New("reset")
	err := error(&FetchError{Kind: KindOther, URL: "https://example.com", Err: cause})
	if !errors.Is(err, cause) {
		t.Error("FetchError should unwrap to its cause")
	}
}

func TestHTTPClientUsesOtelTransport(t *testing.T) {
	f := New(0, "")
	if _, ok := f.client.Transport.(*otelhttp.Transport); !ok {
		t.Error("Fetcher HTTP client does not use otelhttp.Transport")
	}
	if f.client.Timeout != DefaultTimeout || f.userAgent != DefaultUserAgent {
		t.Errorf("Expected defaults, got timeout=%v ua=%q", f.client.Timeout, f.userAgent)
	}
}
