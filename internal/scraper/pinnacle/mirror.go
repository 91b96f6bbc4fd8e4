package pinnacle

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const mirrorUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

// resolveMirror follows a mirror link to the currently working API host.
// Plain HTTP redirects are tried first; mirrors that bounce via a JavaScript
// redirect fall back to a headless browser.
func resolveMirror(ctx context.Context, mirrorURL string, timeout time.Duration) (string, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, mirrorURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", mirrorUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return resolveMirrorWithJS(ctx, mirrorURL, timeout)
	}
	resp.Body.Close()

	final := resp.Request.URL.String()
	if final != mirrorURL {
		slog.Info("resolved mirror via http redirect", "mirror", mirrorURL, "resolved", final)
		return apiBaseFor(final)
	}
	return resolveMirrorWithJS(ctx, mirrorURL, timeout)
}

func resolveMirrorWithJS(ctx context.Context, mirrorURL string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(mirrorUserAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var final string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(mirrorURL),
		// Give any JavaScript redirect time to fire.
		chromedp.Sleep(2*time.Second),
		chromedp.Location(&final),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp navigation: %w", err)
	}
	if final == "" || final == mirrorURL {
		return "", fmt.Errorf("mirror %s did not redirect", mirrorURL)
	}

	slog.Info("resolved mirror via headless browser", "mirror", mirrorURL, "resolved", final)
	return apiBaseFor(final)
}

// apiBaseFor maps a resolved site URL to the guest API base on the same
// domain, e.g. https://pin123.example/ -> https://guest.api.arcadia.pin123.example/0.1.
func apiBaseFor(siteURL string) (string, error) {
	u, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("parse resolved url: %w", err)
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host == "" {
		return "", fmt.Errorf("resolved url %q has no host", siteURL)
	}
	return fmt.Sprintf("https://guest.api.arcadia.%s/0.1", host), nil
}
