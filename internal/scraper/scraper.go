package scraper

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/user/champion-scraper/internal/browser"
	"github.com/user/champion-scraper/internal/config"
	"github.com/user/champion-scraper/internal/domain"
	"github.com/user/champion-scraper/internal/monitoring"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Selectors are tied to the wiki's current markup; they are a fixture-level
// detail, not a stable contract.
const (
	rosterPath     = "/wiki/List_of_champions"
	rosterSelector = `div#content table.article-table`
	statsSelector  = `div#content div.parser-output div.lvlselect`
	levelSelector  = `div#content div.parser-output div.lvlselect select[id^="lvl_"]`

	// Value of the level dropdown that shows base stats.
	baseLevelValue = "-1"
)

// pageFetcher is the slice of the browser session the scraper needs;
// *browser.Session satisfies it.
type pageFetcher interface {
	OuterHTML(ctx context.Context, url, sel string, extra ...chromedp.Action) (string, error)
}

var _ pageFetcher = (*browser.Session)(nil)

// Scraper drives the browser session over the roster page and every
// champion stat page.
type Scraper struct {
	cfg     *config.Config
	session pageFetcher
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

func New(cfg *config.Config, session pageFetcher, m *monitoring.Metrics, l *zap.Logger) *Scraper {
	return &Scraper{
		cfg:     cfg,
		session: session,
		metrics: m,
		logger:  l,
	}
}

// Run scrapes the roster, then each champion's stat page with a bounded
// number of pages in flight. The first page that fails aborts the run;
// results keep roster order.
func (s *Scraper) Run(ctx context.Context) ([]domain.Champion, error) {
	entries, err := s.scrapeRoster(ctx)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxChampions > 0 && len(entries) > s.cfg.MaxChampions {
		entries = entries[:s.cfg.MaxChampions]
	}
	s.logger.Info("roster scraped", zap.Int("champions", len(entries)))

	champions := make([]domain.Champion, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrentParsers)
	for i, entry := range entries {
		g.Go(func() error {
			stats, err := s.scrapeStats(gctx, entry)
			if err != nil {
				return err
			}
			champions[i] = domain.Champion{Entry: entry, Stats: stats}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return champions, nil
}

func (s *Scraper) scrapeRoster(ctx context.Context) ([]domain.ChampionEntry, error) {
	url := s.cfg.WikiBaseURL + rosterPath
	tableHTML, err := s.session.OuterHTML(ctx, url, rosterSelector)
	if err != nil {
		s.metrics.IncErrorsTotal("roster_fetch")
		return nil, err
	}
	s.metrics.IncPagesFetched()

	entries, err := ParseRoster(tableHTML, s.cfg.WikiBaseURL)
	if err != nil {
		s.metrics.IncErrorsTotal("roster_extract")
		return nil, fmt.Errorf("extract roster: %w", err)
	}
	return entries, nil
}

func (s *Scraper) scrapeStats(ctx context.Context, entry domain.ChampionEntry) (domain.ChampionStats, error) {
	infoboxHTML, err := s.session.OuterHTML(ctx, entry.StatsURL, statsSelector,
		chromedp.SetValue(levelSelector, baseLevelValue, chromedp.ByQuery),
	)
	if err != nil {
		s.metrics.IncErrorsTotal("stats_fetch")
		return domain.ChampionStats{}, err
	}
	s.metrics.IncPagesFetched()

	stats, err := ParseChampionStats(entry.Name, infoboxHTML, s.logger)
	if err != nil {
		s.metrics.IncErrorsTotal("stats_extract")
		return domain.ChampionStats{}, fmt.Errorf("extract stats: %w", err)
	}

	s.metrics.IncChampionsScraped()
	s.logger.Debug("champion scraped", zap.String("name", entry.Name))
	return stats, nil
}
