package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/champion-scraper/internal/domain"
)

// ParseRoster extracts champion entries from the roster table's HTML. The
// champion name lives in the first cell's data-sort-value attribute, the
// last-changed patch in the fourth cell, and the stat page link in the
// first cell's anchor.
func ParseRoster(tableHTML, baseURL string) ([]domain.ChampionEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return nil, fmt.Errorf("parse roster table: %w", err)
	}

	var entries []domain.ChampionEntry
	doc.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return // header or spacer row
		}
		name, ok := cells.Eq(0).Attr("data-sort-value")
		if !ok || name == "" {
			return
		}
		href, _ := cells.Eq(0).Find("a").First().Attr("href")

		entries = append(entries, domain.ChampionEntry{
			Name:             name,
			LastChangedPatch: strings.TrimSpace(cells.Eq(3).Text()),
			StatsURL:         resolveURL(baseURL, href),
		})
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no champion rows found in roster table")
	}
	return entries, nil
}

func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
