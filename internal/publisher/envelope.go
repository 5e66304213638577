package publisher

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/edgard/restobot/internal/database"
)

// Telegram limits for outbound content.
const (
	MaxTextLength    = 4096
	MaxCaptionLength = 1000
	MaxMediaGroup    = 10
)

// Envelope is the content sent to every recipient of one news item.
type Envelope struct {
	Text    string
	Caption string
	Photos  []string
}

// BuildEnvelope renders news into plain text with a "📰 <title>" header and
// resolves image paths against baseURL.
func BuildEnvelope(news *database.News, baseURL string) Envelope {
	header := "📰 " + strings.TrimSpace(news.Title)
	body := PlainText(news.Body)

	full := header
	if body != "" {
		full += "\n\n" + body
	}

	photos := make([]string, 0, min(len(news.Images), MaxMediaGroup))
	for _, img := range news.Images {
		if len(photos) == MaxMediaGroup {
			break
		}
		if resolved := resolveURL(baseURL, img); resolved != "" {
			photos = append(photos, resolved)
		}
	}

	return Envelope{
		Text:    truncateRunes(full, MaxTextLength),
		Caption: truncateRunes(full, MaxCaptionLength),
		Photos:  photos,
	}
}

// blockElements get a separator so adjacent blocks do not run together.
const blockElements = "br, p, div, li, tr, h1, h2, h3, h4, h5, h6, blockquote"

// PlainText strips HTML tags and collapses whitespace.
func PlainText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapseWhitespace(html)
	}
	doc.Find("script, style").Remove()
	doc.Find(blockElements).AfterHtml(" ")
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func resolveURL(baseURL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		return ref
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil || base.Host == "" {
		return ""
	}
	return base.ResolveReference(u).String()
}
