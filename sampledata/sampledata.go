// Package sampledata generates a small deterministic import file for demos
// and tests: three book titles and two patrons.
package sampledata

import (
	"errors"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/openshelf/circulation-ledger-go/circulation"
	"github.com/openshelf/circulation-ledger-go/importer"
)

// DefaultFileName is the import file written when no path is given.
const DefaultFileName = "sample_data.json"

// ErrWriteSampleData is returned when the sample file cannot be written.
var ErrWriteSampleData = errors.New("cannot write sample data file")

// Payload returns the canonical sample set. The second title starts with
// three copies so a full issue/return cycle is visible in the demo.
func Payload() importer.Payload {
	return importer.Payload{
		Books: []circulation.BookRecord{
			{Title: "One Hundred Years of Solitude", Author: "Gabriel García Márquez", ISBN: "978-3-16-148410-0", Copies: 5},
			{Title: "1984", Author: "George Orwell", ISBN: "978-0-345-33968-3", Copies: 3},
			{Title: "Brave New World", Author: "Aldous Huxley", ISBN: "978-0-06-112008-4", Copies: 2},
		},
		Patrons: []circulation.PatronRecord{
			{Name: "Ana López", ID: "U001"},
			{Name: "Juan Pérez", ID: "U002"},
		},
	}
}

// WriteFile writes the sample payload as an import file.
func WriteFile(path string) error {
	payloadJSON, err := jsoniter.ConfigFastest.MarshalIndent(Payload(), "", "    ")
	if err != nil {
		return errors.Join(ErrWriteSampleData, err)
	}

	if writeErr := os.WriteFile(path, payloadJSON, 0o644); writeErr != nil {
		return errors.Join(ErrWriteSampleData, writeErr)
	}

	return nil
}
