// Package extractor turns the raw HTML of the news dashboard into the
// article block that is embedded in the briefing prompt.
// It uses goquery CSS selectors to locate news cards and never fails on
// malformed markup: anything it cannot find simply yields no articles.
package extractor

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"briefing-proxy/internal/domain/entity"
	"briefing-proxy/internal/utils/text"
)

// Default selectors matching the dashboard markup.
const (
	DefaultItemSelector    = ".news-card"
	DefaultTitleSelector   = "h1 a, h2 a, h3 a, h4 a"
	DefaultSummarySelector = ".summary, .news-summary"
)

// defaultURL is used when a news card's heading link carries no href.
const defaultURL = "#"

// Selectors configures how news cards are located inside the document.
type Selectors struct {
	// Item matches one news card container.
	Item string
	// Title matches the heading link inside a card.
	Title string
	// Summary matches the summary text node inside a card.
	Summary string
}

// DefaultSelectors returns the selectors used by the dashboard.
func DefaultSelectors() Selectors {
	return Selectors{
		Item:    DefaultItemSelector,
		Title:   DefaultTitleSelector,
		Summary: DefaultSummarySelector,
	}
}

// Extractor extracts articles from dashboard HTML.
type Extractor struct {
	selectors Selectors
}

// New creates an Extractor. Empty or unparsable selectors are replaced by the
// corresponding default with a warning.
func New(selectors Selectors) *Extractor {
	defaults := DefaultSelectors()
	return &Extractor{
		selectors: Selectors{
			Item:    selectorOrDefault("item", selectors.Item, defaults.Item),
			Title:   selectorOrDefault("title", selectors.Title, defaults.Title),
			Summary: selectorOrDefault("summary", selectors.Summary, defaults.Summary),
		},
	}
}

// Selectors returns the effective selectors.
func (e *Extractor) Selectors() Selectors {
	return e.selectors
}

func selectorOrDefault(name, selector, fallback string) string {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return fallback
	}
	if _, err := cascadia.ParseGroup(selector); err != nil {
		slog.Warn("invalid extractor selector, using default",
			slog.String("selector", name),
			slog.String("value", selector),
			slog.String("default", fallback),
			slog.String("error", err.Error()))
		return fallback
	}
	return selector
}

// Articles parses htmlContent and returns every complete news card in
// document order. Cards without a title or a summary are skipped.
func (e *Extractor) Articles(htmlContent string) []entity.Article {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		slog.Debug("failed to parse dashboard HTML", slog.String("error", err.Error()))
		return nil
	}

	var articles []entity.Article
	doc.Find(e.selectors.Item).Each(func(i int, card *goquery.Selection) {
		link := card.Find(e.selectors.Title).First()
		article := entity.Article{
			Title:   strings.TrimSpace(link.Text()),
			URL:     defaultURL,
			Summary: strings.TrimSpace(card.Find(e.selectors.Summary).First().Text()),
		}
		if href, ok := link.Attr("href"); ok && href != "" {
			article.URL = href
		}

		if !article.IsComplete() {
			slog.Debug("skipping incomplete news card",
				slog.Int("index", i),
				slog.Bool("has_title", article.Title != ""),
				slog.Bool("has_summary", article.Summary != ""))
			return
		}
		articles = append(articles, article)
	})

	return articles
}

// Extract returns the prompt block for every complete news card in
// htmlContent, or "" when there is nothing to summarize.
func (e *Extractor) Extract(htmlContent string) string {
	return Format(e.Articles(htmlContent))
}

// Format renders articles with the package-level Format.
func (e *Extractor) Format(articles []entity.Article) string {
	return Format(articles)
}

// Format renders articles as numbered blocks:
//
//	[ARTICLE 1]
//	Title: ...
//	URL: ...
//	Summary: <first 300 characters>
//	---
//
// Blocks are joined with a newline. An empty slice renders as "".
func Format(articles []entity.Article) string {
	blocks := make([]string, 0, len(articles))
	for i, a := range articles {
		blocks = append(blocks, fmt.Sprintf("[ARTICLE %d]\nTitle: %s\nURL: %s\nSummary: %s\n---",
			i+1, a.Title, a.URL, text.TruncateRunes(a.Summary, entity.MaxSummaryChars)))
	}
	return strings.Join(blocks, "\n")
}
