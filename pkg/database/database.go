package database

import (
	"io"

	"github.com/draftscout/draftscout/pkg/scrape"
)

type Database interface {
	io.Closer
	SaveCombine([]scrape.CombineRow) error
	SavePassing([]scrape.PassingRow) error
	SaveRushing([]scrape.RushingRow) error
	SaveReceiving([]scrape.ReceivingRow) error
	SaveDefense([]scrape.DefenseRow) error
}
