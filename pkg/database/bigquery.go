package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"

	"github.com/draftscout/draftscout/pkg/scrape"
)

type BigQuery struct {
	ctx     context.Context
	client  *bigquery.Client
	dataset *bigquery.Dataset
	name    string
}

func NewBigQuery(projectID, datasetID string) (BigQuery, error) {
	var bq BigQuery

	// Set up BigQuery
	ctx := context.Background()
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return bq, fmt.Errorf("failed to create client: %v", err)
	}

	dataset := client.Dataset(datasetID)
	if err := dataset.Create(ctx, nil); err != nil {
		if !isDuplicateError(err) {
			return bq, fmt.Errorf("failed to create dataset: %v", err)
		}
	}

	bq = BigQuery{ctx, client, dataset, datasetID}
	return bq, nil
}

func (bq BigQuery) InsertCombine(rows []scrape.CombineRow) error {
	on := "t.year = s.year AND t.player = s.player AND t.school = s.school"
	return bq.insert(scrape.CombineRow{}, "combine", rows, on)
}

func (bq BigQuery) InsertPassing(rows []scrape.PassingRow) error {
	return bq.insert(scrape.PassingRow{}, "passing", rows, seasonKey)
}

func (bq BigQuery) InsertRushing(rows []scrape.RushingRow) error {
	return bq.insert(scrape.RushingRow{}, "rushing", rows, seasonKey)
}

func (bq BigQuery) InsertReceiving(rows []scrape.ReceivingRow) error {
	return bq.insert(scrape.ReceivingRow{}, "receiving", rows, seasonKey)
}

func (bq BigQuery) InsertDefense(rows []scrape.DefenseRow) error {
	return bq.insert(scrape.DefenseRow{}, "defense", rows, seasonKey)
}

const seasonKey = "t.playerid = s.playerid AND t.season = s.season"

func (bq BigQuery) insert(st interface{}, tableName string, data interface{}, onClause string) error {
	// Infer the table schema
	schema, err := bigquery.InferSchema(st)
	if err != nil {
		return fmt.Errorf("failed to infer schema: %v", err)
	}

	// Get a reference to the table
	table := bq.dataset.Table(tableName)
	if err := table.Create(bq.ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		if !isDuplicateError(err) {
			return fmt.Errorf("failed to create table: %v", err)
		}
	}

	// Create a temp table
	// Uses a different table each time: https://stackoverflow.com/a/51998193/5623874
	tempName := tableName + "_" + strconv.Itoa(int(time.Now().Unix()))
	newArrivals := bq.dataset.Table(tempName)
	if err := newArrivals.Create(bq.ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		if !isDuplicateError(err) {
			return fmt.Errorf("failed to create arrivals table: %v", err)
		}
	}

	// Upload data
	u := newArrivals.Inserter()
	if err := u.Put(bq.ctx, data); err != nil {
		return fmt.Errorf("failed to insert rows: %v", err)
	}

	// Merge data
	q := bq.client.Query(fmt.Sprintf(`
		MERGE %s.%s t
		USING %s.%s s
		ON %s
		WHEN NOT MATCHED THEN
		  INSERT ROW`, bq.name, tableName, bq.name, tempName, onClause))
	if _, err := q.Run(bq.ctx); err != nil {
		return fmt.Errorf("failed to execute query: %v", err)
	}

	// Keep the temp table around so insertions can be audited by hand

	return nil
}

func isDuplicateError(err error) bool {
	if e, ok := err.(*googleapi.Error); ok {
		return e.Code == 409
	}
	return false
}
