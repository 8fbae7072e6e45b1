package preview

import (
	"fmt"
	"regexp"
	"strings"
)

var titleTag = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)

var entities = map[string]string{
	"&amp;":  "&",
	"&lt;":   "<",
	"&gt;":   ">",
	"&quot;": `"`,
	"&#039;": "'",
	"&#x27;": "'",
	"&apos;": "'",
	"&nbsp;": " ",
}

var entityRef = regexp.MustCompile(`&[#\w]+;`)

// metaPatterns holds, per meta property, the four tag shapes to try: the
// property/name attribute and the content attribute can appear in either
// order within the tag.
var metaPatterns = map[string][]*regexp.Regexp{}

func init() {
	props := []string{
		"og:title", "twitter:title",
		"og:description", "twitter:description", "description",
		"og:image", "twitter:image",
	}
	for _, prop := range props {
		p := regexp.QuoteMeta(prop)
		metaPatterns[prop] = []*regexp.Regexp{
			regexp.MustCompile(fmt.Sprintf(`(?i)<meta[^>]*property=['"]%s['"][^>]*content=['"]([^'"]*?)['"][^>]*>`, p)),
			regexp.MustCompile(fmt.Sprintf(`(?i)<meta[^>]*content=['"]([^'"]*?)['"][^>]*property=['"]%s['"][^>]*>`, p)),
			regexp.MustCompile(fmt.Sprintf(`(?i)<meta[^>]*name=['"]%s['"][^>]*content=['"]([^'"]*?)['"][^>]*>`, p)),
			regexp.MustCompile(fmt.Sprintf(`(?i)<meta[^>]*content=['"]([^'"]*?)['"][^>]*name=['"]%s['"][^>]*>`, p)),
		}
	}
}

// extractMeta pulls the social metadata out of a fetched document,
// preferring Open Graph and Twitter tags and falling back to the title
// element and the fixed fallback string.
func extractMeta(doc string) pageMeta {
	title := metaContent(doc, "og:title", "twitter:title")
	if title == "" {
		if m := titleTag.FindStringSubmatch(doc); m != nil {
			title = m[1]
		}
	}
	if title == "" {
		title = fallbackTitle
	}

	return pageMeta{
		Title:       decodeEntities(strings.TrimSpace(title)),
		Description: decodeEntities(strings.TrimSpace(metaContent(doc, "og:description", "twitter:description", "description"))),
		Image:       metaContent(doc, "og:image", "twitter:image"),
	}
}

func metaContent(doc string, props ...string) string {
	for _, prop := range props {
		for _, re := range metaPatterns[prop] {
			if m := re.FindStringSubmatch(doc); m != nil && strings.TrimSpace(m[1]) != "" {
				return m[1]
			}
		}
	}
	return ""
}

// decodeEntities resolves the common HTML entities; unknown references are
// kept as written.
func decodeEntities(text string) string {
	return entityRef.ReplaceAllStringFunc(text, func(ref string) string {
		if v, ok := entities[ref]; ok {
			return v
		}
		return ref
	})
}
