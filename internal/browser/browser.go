package browser

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Session owns a single headless Chrome process. Page fetches run in their
// own tab contexts derived from the shared browser, so a failed navigation
// never poisons the next one.
type Session struct {
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
	timeout       time.Duration
	retries       int
	logger        *zap.Logger
}

func NewSession(navTimeout time.Duration, navRetries int, logger *zap.Logger) (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Launch the browser up front so contexts derived from browserCtx open
	// tabs in it instead of spawning one Chrome process per fetch.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	if navRetries < 1 {
		navRetries = 1
	}
	return &Session{
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
		timeout:       navTimeout,
		retries:       navRetries,
		logger:        logger,
	}, nil
}

// Close terminates the browser process. Safe to call on all exit paths.
func (s *Session) Close() {
	s.browserCancel()
	s.allocCancel()
}

// OuterHTML navigates to url, waits for sel to be present, runs any extra
// actions, and returns the outer HTML of the first node matching sel. The
// whole fetch is retried up to the configured attempt count; a page that
// still fails afterwards is reported to the caller.
func (s *Session) OuterHTML(ctx context.Context, url, sel string, extra ...chromedp.Action) (string, error) {
	var html string
	attempt := 0

	op := func() error {
		attempt++
		h, err := s.fetch(ctx, url, sel, extra...)
		if err != nil {
			s.logger.Warn("page fetch failed",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		html = h
		return nil
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), uint64(s.retries-1)),
		ctx,
	)
	if err := backoff.Retry(op, b); err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return html, nil
}

func (s *Session) fetch(ctx context.Context, url, sel string, extra ...chromedp.Action) (string, error) {
	taskCtx, cancel := chromedp.NewContext(s.browserCtx)
	defer cancel()
	taskCtx, cancel = context.WithTimeout(taskCtx, s.timeout)
	defer cancel()

	// Propagate caller cancellation (signals) into the browser context.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var status atomic.Int64
	chromedp.ListenTarget(taskCtx, func(ev interface{}) {
		if resp, ok := ev.(*network.EventResponseReceived); ok {
			if resp.Type == network.ResourceTypeDocument {
				status.CompareAndSwap(0, resp.Response.Status)
			}
		}
	})

	var html string
	actions := []chromedp.Action{
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.WaitReady(sel, chromedp.ByQuery),
	}
	actions = append(actions, extra...)
	actions = append(actions, chromedp.OuterHTML(sel, &html, chromedp.ByQuery))

	if err := chromedp.Run(taskCtx, actions...); err != nil {
		return "", err
	}
	if code := status.Load(); code >= 400 {
		return "", fmt.Errorf("document request returned status %d", code)
	}
	return html, nil
}
