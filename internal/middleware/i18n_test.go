package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		fallback string
		lookup   CountryLookup
		want     string
	}{
		{
			name: "x-locale wins",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "ID")
				r.Header.Set("Accept-Language", "en-US")
			},
			want: "id",
		},
		{
			name: "accept-language english",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en-US,en;q=0.9")
			},
			want: "en",
		},
		{
			name: "accept-language indonesian",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "id-ID,en;q=0.8")
			},
			want: "id",
		},
		{
			name: "unknown language collapses to en",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "fr-FR")
			},
			want: "en",
		},
		{
			name: "cdn country header indonesian",
			setup: func(r *http.Request) {
				r.Header.Set("CF-IPCountry", "id")
			},
			want: "id",
		},
		{
			name: "country header beats geoip lookup",
			setup: func(r *http.Request) {
				r.Header.Set("X-Country-Code", "us")
			},
			lookup: func(ip string) (string, error) {
				t.Fatalf("lookup must not be called, got %s", ip)
				return "", nil
			},
			want: "en",
		},
		{
			name: "geoip lookup indonesian",
			lookup: func(ip string) (string, error) {
				if ip != "203.0.113.4" {
					t.Fatalf("unexpected ip: %s", ip)
				}
				return "id", nil
			},
			want: "id",
		},
		{
			name: "geoip lookup other country",
			lookup: func(ip string) (string, error) {
				return "MY", nil
			},
			fallback: "id",
			want:     "en",
		},
		{
			name: "geoip error falls back",
			lookup: func(ip string) (string, error) {
				return "", errors.New("database unavailable")
			},
			fallback: "id",
			want:     "id",
		},
		{
			name:     "configured fallback",
			fallback: "id",
			want:     "id",
		},
		{
			name: "default to en",
			want: "en",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.4:80"
			if tc.setup != nil {
				tc.setup(req)
			}
			if got := detectLocale(req, tc.fallback, tc.lookup); got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestI18NStoresLocaleInContext(t *testing.T) {
	var got string
	handler := I18N("en", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/generate-image", nil)
	req.Header.Set("X-Locale", "id")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != "id" {
		t.Fatalf("locale in context = %q, want %q", got, "id")
	}
}

func TestLocaleFromContextDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := LocaleFromContext(req.Context()); got != "en" {
		t.Fatalf("LocaleFromContext() default = %q, want %q", got, "en")
	}
}
