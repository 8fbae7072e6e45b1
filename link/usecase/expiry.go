package usecase

import (
	"time"

	"github.com/zyreny/zye/domain"
)

// taipei is the service's fixed zone (UTC+8) used for stored timestamps
var taipei = time.FixedZone("UTC+8", 8*60*60)

// formatLocal renders t in the service zone, RFC3339 with milliseconds
func formatLocal(t time.Time) string {
	return t.In(taipei).Format("2006-01-02T15:04:05.000-07:00")
}

// expired reports whether the link's expiration timestamp is strictly in
// the past. A link without exp never expires. An unparsable exp is operator
// data entered at creation time, so it fails open and never expires either.
func expired(l *domain.Link, now time.Time) bool {
	if l.Exp == "" {
		return false
	}

	expTime, err := time.Parse(time.RFC3339, l.Exp)
	if err != nil {
		return false
	}

	return now.After(expTime)
}
