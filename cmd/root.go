package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gocolly/colly/v2"
	"github.com/spf13/cobra"

	"github.com/draftscout/draftscout/pkg/browser"
	"github.com/draftscout/draftscout/pkg/scrape"
)

var c *colly.Collector

var cacheDir = "/draftscout/web-cache"
var dbFile = "/draftscout/draftscout.db"

var noCache bool
var useBrowser bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "draftscout",
	Short: "A tool for scraping NFL combine and college football data",
	Long: `Scrapes NFL combine results and college football statistics from
pro-football-reference.com into a format suitable for analysis. Given a
range of years, this application can generate CSV files or send the
results to BigQuery.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initColly)

	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the web cache (default: false)")
	rootCmd.PersistentFlags().BoolVar(&useBrowser, "browser", false, "Fetch pages through a headless browser (default: false)")
}

func initColly() {
	c = colly.NewCollector()
	c.AllowURLRevisit = true
	if !noCache {
		userCacheDir, _ := os.UserCacheDir()
		c.CacheDir = userCacheDir + cacheDir
	}
}

// newFetcher picks how pages are retrieved. The browser session, when used,
// is held for the whole run and released by the returned cleanup func.
func newFetcher() (scrape.Fetcher, func(), error) {
	if useBrowser {
		session, err := browser.New()
		if err != nil {
			return nil, nil, err
		}
		return session, session.Close, nil
	}
	return scrape.NewCollyFetcher(c), func() {}, nil
}

func sqlitePath() string {
	userCacheDir, _ := os.UserCacheDir()
	return userCacheDir + dbFile
}

// yearRange reads one or two year arguments; a single year means [y, y].
func yearRange(args []string) (int, int, error) {
	start, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a year", args[0])
	}
	end := start
	if len(args) > 1 {
		end, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%q is not a year", args[1])
		}
	}
	if end < start {
		return 0, 0, fmt.Errorf("year range %d-%d is backwards", start, end)
	}
	return start, end, nil
}
