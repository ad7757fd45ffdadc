// Package geoip maps client IPs to countries so responses can default to the
// right locale when no explicit language preference is sent.
package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"

	"fotostudio/internal/infra"
)

// ErrUnavailable is returned when no GeoIP database is loaded.
var ErrUnavailable = errors.New("geoip: resolver unavailable")

// Resolver answers country lookups from a MaxMind GeoIP2 database. The zero
// value (and a nil resolver) is safe to call and reports ErrUnavailable.
type Resolver struct {
	reader *geoip2.Reader
	logger infra.Logger
}

// Open loads the GeoIP2 database at path. An empty path is not an error: it
// returns a nil resolver and every request falls back to the default locale.
func Open(path string, logger infra.Logger) (*Resolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("geoip: database loaded")
	return &Resolver{reader: reader, logger: logger}, nil
}

// CountryCode returns the upper-case ISO country code for ip. Private and
// loopback addresses resolve to the empty code since the database cannot know
// them; that keeps local development on the default locale.
func (r *Resolver) CountryCode(ip string) (string, error) {
	if r == nil || r.reader == nil {
		return "", ErrUnavailable
	}
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return "", fmt.Errorf("geoip: invalid ip %q", ip)
	}
	if parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return "", nil
	}
	record, err := r.reader.Country(parsed)
	if err != nil {
		return "", fmt.Errorf("geoip: lookup %s: %w", parsed, err)
	}
	if record == nil {
		return "", nil
	}
	return strings.ToUpper(record.Country.IsoCode), nil
}

// Close releases the underlying database reader.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
