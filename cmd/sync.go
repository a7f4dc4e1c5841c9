package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/draftscout/draftscout/pkg/database"
	"github.com/draftscout/draftscout/pkg/scrape"
)

const (
	projectID = "draftscout-8c2f1"
	datasetID = "draftscout"
	topicID   = "combine-refreshed"
)

var dryRun bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync <start> <end>",
	Short: "Scrape combine and college data to BigQuery",
	Long: `This command takes a range of years and scrapes the combine results
and the college stats of every participant with a profile page, then
merges the rows into BigQuery and publishes a refresh event.`,
	Args: cobra.ExactArgs(2),
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

		// Scrape the combine years
		combine, failedYears := scrape.GetCombineRange(fetcher, start, end)
		for _, ye := range failedYears {
			log.Warn("Skipping year", "year", ye.Year, "err", ye.Err)
		}
		if combine.Len() == 0 {
			return fmt.Errorf("no combine data for %d-%d", start, end)
		}

		// Scrape every participant with a profile page
		links := scrape.PlayerLinks(combine)
		stats, failed := scrape.GetCollegeStats(fetcher, links)
		for _, pe := range failed {
			log.Warn("Skipping", "player", pe.Player.ID, "category", string(pe.Category), "err", pe.Err)
		}

		if dryRun {
			fmt.Println("Dry run: data will not be inserted")
			return nil
		}

		// Connect to BigQuery
		bq, err := database.NewBigQuery(projectID, datasetID)
		if err != nil {
			return fmt.Errorf("failed to connect to bigquery: %v", err)
		}

		// Insert (merge) the combine rows and the category tables
		if err := bq.InsertCombine(scrape.CombineRows(combine)); err != nil {
			return fmt.Errorf("failed to insert combine rows: %v", err)
		}
		if err := bq.InsertPassing(scrape.PassingRows(stats[scrape.Passing])); err != nil {
			return fmt.Errorf("failed to insert passing rows: %v", err)
		}
		if err := bq.InsertRushing(scrape.RushingRows(stats[scrape.Rushing])); err != nil {
			return fmt.Errorf("failed to insert rushing rows: %v", err)
		}
		if err := bq.InsertReceiving(scrape.ReceivingRows(stats[scrape.Receiving])); err != nil {
			return fmt.Errorf("failed to insert receiving rows: %v", err)
		}
		if err := bq.InsertDefense(scrape.DefenseRows(stats[scrape.Defense])); err != nil {
			return fmt.Errorf("failed to insert defense rows: %v", err)
		}

		// Connect to PubSub
		ctx := context.Background()
		client, err := pubsub.NewClient(ctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to create client: %v", err)
		}

		msg, err := json.Marshal(struct {
			StartYear int `json:"startYear"`
			EndYear   int `json:"endYear"`
		}{start, end})
		if err != nil {
			return fmt.Errorf("failed to create message: %v", err)
		}

		// Publish an event
		topic := client.Topic(topicID)
		res := topic.Publish(ctx, &pubsub.Message{Data: msg})
		if _, err := res.Get(ctx); err != nil {
			return fmt.Errorf("failed to publish message: %v", err)
		}

		fmt.Println("Done.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Run without modifying the database (default: false)")
}
