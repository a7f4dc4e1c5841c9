package report

import (
	"encoding/csv"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/draftscout/draftscout/pkg/scrape"
)

func WriteCsv(in interface{}, fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(in, file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteTable writes a scraped table as-is: its column set is only known at
// runtime, so this goes through encoding/csv rather than struct tags.
func WriteTable(t scrape.Table, fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := w.Write(t.Columns); err != nil {
		_ = file.Close()
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		_ = file.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
