package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/draftscout/draftscout/pkg/database"
	"github.com/draftscout/draftscout/pkg/report"
	"github.com/draftscout/draftscout/pkg/scrape"
)

var categoryFlag string

// collegeCmd represents the college command
var collegeCmd = &cobra.Command{
	Use:   "college <start> [<end>]",
	Short: "Scrape college stats for combine participants",
	Long: `Given a range of combine years this command resolves each
participant's college stats page and scrapes the requested category
tables (passing, rushing, receiving, defense) into per-category CSV
files and a local SQLite database. Each player page is fetched once,
no matter how many categories are requested. Players without a
profile page are skipped; players missing a category are reported.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := yearRange(args)
		if err != nil {
			return err
		}

		categories := scrape.AllCategories
		if categoryFlag != "all" {
			cat, err := scrape.ParseCategory(categoryFlag)
			if err != nil {
				return err
			}
			categories = []scrape.Category{cat}
		}

		fetcher, cleanup, err := newFetcher()
		if err != nil {
			return err
		}
		defer cleanup()

		// Scrape the combine years to find the players
		combine, failedYears := scrape.GetCombineRange(fetcher, start, end)
		for _, ye := range failedYears {
			log.Warn("Skipping year", "year", ye.Year, "err", ye.Err)
		}
		links := scrape.PlayerLinks(combine)
		log.Info("Resolved player pages", "players", len(links), "rows", combine.Len())
		if len(links) == 0 {
			return fmt.Errorf("no player pages resolved for %d-%d", start, end)
		}

		// Scrape each player's stats
		stats, failed := scrape.GetCollegeStats(fetcher, links, categories...)
		for _, pe := range failed {
			log.Warn("Skipping", "player", pe.Player.ID, "category", string(pe.Category), "err", pe.Err)
		}

		// Save all the data to the database
		sqlite := database.NewSqlite(sqlitePath())
		defer sqlite.Close()
		for _, cat := range categories {
			table := stats[cat]
			if table.Len() == 0 {
				log.Warn("No rows scraped", "category", string(cat))
				continue
			}
			if err := saveCategory(sqlite, cat, table); err != nil {
				return err
			}

			name := fmt.Sprintf("college_%s_%d_%d.csv", cat, start, end)
			if err := report.WriteTable(table, name); err != nil {
				return err
			}
			log.Info("Wrote to file", "file", name, "rows", table.Len())
		}
		return nil
	},
}

func saveCategory(db database.Database, cat scrape.Category, t scrape.Table) error {
	switch cat {
	case scrape.Passing:
		return db.SavePassing(scrape.PassingRows(t))
	case scrape.Rushing:
		return db.SaveRushing(scrape.RushingRows(t))
	case scrape.Receiving:
		return db.SaveReceiving(scrape.ReceivingRows(t))
	case scrape.Defense:
		return db.SaveDefense(scrape.DefenseRows(t))
	}
	return fmt.Errorf("unknown category %q", cat)
}

func init() {
	rootCmd.AddCommand(collegeCmd)

	collegeCmd.Flags().StringVar(&categoryFlag, "category", "all",
		"Category to scrape: all, passing, rushing, receiving or defense")
}
