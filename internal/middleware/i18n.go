package middleware

import (
	"context"
	"net/http"
	"strings"
)

type localeKey struct{}

// CountryLookup resolves an ISO country code for an IP address. The geoip
// resolver provides one; nil disables the lookup step.
type CountryLookup func(ip string) (string, error)

// countryHeaders are the proxy hints checked before paying for a GeoIP
// lookup. CF-IPCountry is what the public deployment's CDN sets.
var countryHeaders = [...]string{"CF-IPCountry", "X-Country-Code"}

// I18N stores the response locale in the request context. The service is
// bilingual (Indonesian market plus an English default), so every input
// collapses to "id" or "en": explicit X-Locale first, then Accept-Language,
// then the client's country, then the configured fallback.
func I18N(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, defaultLocale, lookup)
			ctx := context.WithValue(r.Context(), localeKey{}, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback string, lookup CountryLookup) string {
	if v := r.Header.Get("X-Locale"); v != "" {
		return normalizeLocale(v)
	}
	if v := firstAcceptLanguage(r.Header.Get("Accept-Language")); v != "" {
		return normalizeLocale(v)
	}
	if country := clientCountry(r, lookup); country != "" {
		if country == "ID" {
			return "id"
		}
		return "en"
	}
	if fallback != "" {
		return fallback
	}
	return "en"
}

// clientCountry prefers proxy headers over the GeoIP database; the headers
// are free and already resolved at the edge.
func clientCountry(r *http.Request, lookup CountryLookup) string {
	for _, key := range countryHeaders {
		if v := strings.TrimSpace(r.Header.Get(key)); v != "" {
			return strings.ToUpper(v)
		}
	}
	if lookup == nil {
		return ""
	}
	ip := clientIPForRateLimit(r)
	if ip == "" {
		return ""
	}
	country, err := lookup(ip)
	if err != nil {
		return ""
	}
	return strings.ToUpper(country)
}

// firstAcceptLanguage returns the first language tag of an Accept-Language
// header, ignoring quality weights. Order is preference enough here.
func firstAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if tag != "" {
			return tag
		}
	}
	return ""
}

func normalizeLocale(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), "id") {
		return "id"
	}
	return "en"
}

// LocaleFromContext returns the detected locale, defaulting to "en" when the
// middleware did not run.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok {
		return v
	}
	return "en"
}
