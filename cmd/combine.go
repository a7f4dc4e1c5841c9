package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/draftscout/draftscout/pkg/database"
	"github.com/draftscout/draftscout/pkg/report"
	"github.com/draftscout/draftscout/pkg/scrape"
)

// combineCmd represents the combine command
var combineCmd = &cobra.Command{
	Use:   "combine <start> [<end>]",
	Short: "Scrape combine results to a CSV file",
	Long: `Given a range of years this command will scrape the combine results
for each year and output one CSV file. The results will also be
inserted into a local SQLite database. Years that fail to fetch or
parse are skipped and reported.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := yearRange(args)
		if err != nil {
			return err
		}

		fetcher, cleanup, err := newFetcher()
		if err != nil {
			return err
		}
		defer cleanup()

		// Scrape the data
		table, failed := scrape.GetCombineRange(fetcher, start, end)
		for _, ye := range failed {
			log.Warn("Skipping year", "year", ye.Year, "err", ye.Err)
		}
		if table.Len() == 0 {
			return fmt.Errorf("no combine data for %d-%d (%d years failed)", start, end, len(failed))
		}
		rows := scrape.CombineRows(table)
		log.Info("Found records", "count", len(rows))

		// Save all the data to the database
		sqlite := database.NewSqlite(sqlitePath())
		if err := sqlite.SaveCombine(rows); err != nil {
			return err
		}
		_ = sqlite.Close()
		log.Info("Saved to database", "file", dbFile)

		// Write to CSV
		name := fmt.Sprintf("combine_%d_%d", start, end)
		if err := report.WriteCombine(name, rows); err != nil {
			return err
		}
		log.Info("Wrote to file", "file", name+".csv")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
}
