package usecase

import (
	"regexp"

	"github.com/zyreny/zye/domain"
)

var crawlerPattern = regexp.MustCompile(`(?i)bot|crawl|spider|slurp|mediapartners`)

// IsCrawler reports whether the client identification string looks like an
// automated fetcher. Advisory only: a false positive shows a human the
// preview page, a false negative shows a crawler the redirect.
func IsCrawler(userAgent string) bool {
	return crawlerPattern.MatchString(userAgent)
}

// wantsPreview combines the crawler heuristic with the explicit override
func wantsPreview(v domain.Visitor) bool {
	return v.Preview || IsCrawler(v.UserAgent)
}
