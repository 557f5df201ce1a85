// Command crawlkit is a thin CLI wrapper around the crawlkit engine: it
// builds a CrawlConfig from flags, runs one crawl, and prints the
// resulting CrawlResult. It is outside the core engine's scope (spec §6)
// and owns the one thing the core deliberately doesn't: printing and
// graceful shutdown on SIGINT/SIGTERM.
//
// Rebuilt on cobra from the teacher's hand-rolled flag wrapper
// (cametumbling-web-crawler/cmd/crawler/main.go), matching the pack's
// convention for a crawler's outer CLI shell (see DESIGN.md); the
// signal-handling shape (cancel the context, wait up to 5s, force-exit)
// is kept verbatim.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cametumbling/crawlkit"
	"github.com/cametumbling/crawlkit/internal/platform/httpclient"
	"github.com/spf13/cobra"
)

var (
	seedURL        string
	maxDepth       int
	maxPages       int
	workerCount    int
	timeoutMs      int
	followExternal bool
	startDomain    string
	userAgent      string
	outputFormat   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crawlkit",
	Short: "Crawl a site from a seed URL and report fetched pages and failures.",
	Long: `crawlkit crawls a site starting from a seed URL, bounded by a maximum
depth and a maximum page count, respecting a same-domain policy, and
reports the set of successfully fetched pages and failed URLs.`,
	RunE: runCrawl,
}

func init() {
	rootCmd.Flags().StringVar(&seedURL, "url", "", "seed URL to crawl (required)")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 2, "maximum link depth from the seed")
	rootCmd.Flags().IntVar(&maxPages, "max-pages", 100, "maximum number of pages to fetch")
	rootCmd.Flags().IntVar(&workerCount, "workers", 8, "number of concurrent workers (1 selects the sequential reference mode)")
	rootCmd.Flags().IntVar(&timeoutMs, "timeout-ms", 10_000, "per-fetch timeout in milliseconds")
	rootCmd.Flags().BoolVar(&followExternal, "follow-external", false, "follow links outside the seed's domain")
	rootCmd.Flags().StringVar(&startDomain, "start-domain", "", "domain substring children must contain when --follow-external is false (default: the seed's host)")
	rootCmd.Flags().StringVar(&userAgent, "user-agent", httpclient.DefaultUserAgent, "User-Agent header sent with each fetch")
	rootCmd.Flags().StringVar(&outputFormat, "output", "text", `output format: "text" or "json"`)

	if err := rootCmd.MarkFlagRequired("url"); err != nil {
		panic(err)
	}
}

func runCrawl(cmd *cobra.Command, args []string) error {
	if startDomain == "" {
		if u, err := url.Parse(seedURL); err == nil {
			startDomain = u.Hostname()
		}
	}

	cfg := crawlkit.CrawlConfig{
		MaxDepth:            maxDepth,
		MaxPages:            maxPages,
		TimeoutMs:           timeoutMs,
		FollowExternalLinks: followExternal,
		StartDomain:         startDomain,
		WorkerCount:         workerCount,
	}

	fetcher := httpclient.New(httpclient.Config{UserAgent: userAgent})

	c, err := crawlkit.New(cfg, fetcher, nil)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	resultCh := make(chan crawlkit.CrawlResult, 1)
	go func() {
		resultCh <- c.Crawl(ctx, seedURL)
	}()

	var result crawlkit.CrawlResult
	select {
	case result = <-resultCh:
	case sig := <-sigCh:
		fmt.Fprintf(os.Stderr, "\nreceived signal %v, shutting down gracefully...\n", sig)
		cancel()
		select {
		case result = <-resultCh:
		case <-time.After(5 * time.Second):
			fmt.Fprintln(os.Stderr, "shutdown timeout exceeded, forcing exit")
			os.Exit(1)
		}
	}

	return printResult(result)
}

// summary is the CLI's own JSON shape, kept separate from model.CrawlResult
// so the core's data model stays free of presentation concerns (the
// teacher's Coordinator conflated the two in its PageResult/printResult;
// crawlkit's CLI wrapper is where that job belongs per spec §6).
type summary struct {
	SuccessfulPages   []crawlkit.PageRecord `json:"successfulPages"`
	FailedURLs        []string              `json:"failedUrls"`
	TotalPagesCrawled int                   `json:"totalPagesCrawled"`
	TotalFailures     int                   `json:"totalFailures"`
	DurationMs        int64                 `json:"durationMs"`
}

func printResult(result crawlkit.CrawlResult) error {
	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary{
			SuccessfulPages:   result.SuccessfulPages,
			FailedURLs:        result.FailedURLs,
			TotalPagesCrawled: result.TotalPagesCrawled(),
			TotalFailures:     result.TotalFailures(),
			DurationMs:        result.DurationMs(),
		})
	}

	fmt.Println("=== Crawl Summary ===")
	fmt.Printf("Pages crawled: %d\n", result.TotalPagesCrawled())
	fmt.Printf("Failures:      %d\n", result.TotalFailures())
	fmt.Printf("Duration:      %dms\n", result.DurationMs())
	for _, page := range result.SuccessfulPages {
		fmt.Printf("OK   %s (%d) %q\n", page.URL, page.StatusCode, page.Title)
	}
	for _, u := range result.FailedURLs {
		fmt.Printf("FAIL %s\n", u)
	}
	return nil
}
