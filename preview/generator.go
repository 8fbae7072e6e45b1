// Package preview builds the crawler-facing page for a short link: an HTML
// document carrying Open Graph / Twitter Card metadata plus a client-side
// redirect that real browsers follow and crawlers rendering static markup
// do not.
package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zyreny/zye/domain"
)

const (
	fetchTimeout = 5 * time.Second
	cacheTTL     = 300 * time.Second
	maxBodySize  = 1 << 20

	fetcherUA = "Mozilla/5.0 (compatible; facebookexternalhit/1.1; +http://www.facebook.com/externalhit_uatext.php)"

	fallbackTitle    = "查看連結內容"
	redirectingTitle = "正在重新導向..."
)

type pageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Generator implements domain.PreviewGenerator
type Generator struct {
	client  *http.Client
	cache   *redis.Client
	logger  *zap.Logger
	baseURL string
}

// NewGenerator creates a preview generator. cache may be nil, in which case
// every request without custom metadata fetches the destination.
func NewGenerator(baseURL string, cache *redis.Client, logger *zap.Logger) *Generator {
	return &Generator{
		client:  &http.Client{Timeout: fetchTimeout},
		cache:   cache,
		logger:  logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Generate produces the preview document for a link. Operator metadata wins
// unconditionally; otherwise the destination is fetched once with a bounded
// timeout and any failure degrades to the fixed fallback metadata. The
// returned document is always valid, this method cannot fail.
func (g *Generator) Generate(ctx context.Context, destURL string, meta *domain.LinkMeta, code string) string {
	var pm pageMeta
	var htmlTitle string

	if meta.HasValues() {
		pm = pageMeta{
			Title:       meta.Title,
			Description: meta.Description,
			Image:       meta.Image,
		}
		if pm.Title == "" {
			pm.Title = redirectingTitle
		}
		htmlTitle = pm.Title
	} else {
		pm = g.fetchMeta(ctx, destURL)
		htmlTitle = redirectingTitle
	}

	return renderPage(htmlTitle, pm, g.baseURL+"/"+code, destURL)
}

// fetchMeta loads the destination's metadata, going through the cache when
// one is configured. It never returns an error: fetch failures produce the
// fallback metadata.
func (g *Generator) fetchMeta(ctx context.Context, destURL string) pageMeta {
	fallback := pageMeta{Title: fallbackTitle}

	cacheKey := "preview:" + destURL
	if g.cache != nil {
		if raw, err := g.cache.Get(ctx, cacheKey).Result(); err == nil {
			var pm pageMeta
			if err = json.Unmarshal([]byte(raw), &pm); err == nil {
				return pm
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, destURL, nil)
	if err != nil {
		return fallback
	}
	req.Header.Set("User-Agent", fetcherUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	res, err := g.client.Do(req)
	if err != nil {
		return fallback
	}
	defer func() {
		if err = res.Body.Close(); err != nil {
			g.logger.Error("can't close response body: ", zap.Error(err))
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fallback
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return fallback
	}

	pm := extractMeta(string(body))

	if g.cache != nil {
		if raw, err := json.Marshal(pm); err == nil {
			if err = g.cache.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
				g.logger.Warn("can't cache preview metadata: ", zap.Error(err))
			}
		}
	}

	return pm
}

func renderPage(htmlTitle string, pm pageMeta, shortURL, destURL string) string {
	ogImage := ""
	twImage := ""
	if pm.Image != "" {
		ogImage = fmt.Sprintf("<meta property=\"og:image\" content=\"%s\">", html.EscapeString(pm.Image))
		twImage = fmt.Sprintf("<meta property=\"twitter:image\" content=\"%s\">", html.EscapeString(pm.Image))
	}

	return fmt.Sprintf(previewPage,
		html.EscapeString(htmlTitle),
		html.EscapeString(shortURL),
		html.EscapeString(pm.Title),
		html.EscapeString(pm.Description),
		ogImage,
		html.EscapeString(shortURL),
		html.EscapeString(pm.Title),
		html.EscapeString(pm.Description),
		twImage,
		html.EscapeString(destURL),
	)
}

// previewPage doubles as a social card and a self-redirecting page: the
// script re-checks the crawler heuristic on the client so that a human who
// lands here is forwarded while a crawler keeps the static markup.
const previewPage = `<!DOCTYPE html>
<html lang="zh-TW">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>

    <link rel="icon" href="/favicon.ico" sizes="32x32" />
    <link rel="icon" type="image/svg+xml" href="/icon.svg" />
    <link rel="apple-touch-icon" href="/apple-touch-icon.png" />
    <link rel="manifest" href="/site.webmanifest" />

    <meta property="og:type" content="website">
    <meta property="og:url" content="%s">
    <meta property="og:title" content="%s">
    <meta property="og:description" content="%s">
    %s

    <meta property="twitter:card" content="summary_large_image">
    <meta property="twitter:url" content="%s">
    <meta property="twitter:title" content="%s">
    <meta property="twitter:description" content="%s">
    %s

    <style>
        body {
            min-height: 100vh;
            display: flex;
            flex-direction: column;
            justify-content: center;
            align-items: center;
        }
    </style>
</head>

<body>
    <h1>正在重新導向...</h1>
    <p>如果沒有自動跳轉，請點擊 <a href="">這裡</a></p>

    <script>
        function isCrawler() {
            const userAgent = navigator.userAgent.toLowerCase();
            const crawlers = [
                "facebookexternalhit", "twitterbot", "linkedinbot", "whatsapp",
                "telegram", "skype", "line", "discord", "slackbot", "googlebot",
                "bingbot", "yandexbot", "baiduspider", "pinterest", "instagram"
            ];
            return crawlers.some(crawler => userAgent.includes(crawler));
        }

        if (!isCrawler()) {
            window.location.replace("%s");
        }
    </script>
</body>
</html>
`
