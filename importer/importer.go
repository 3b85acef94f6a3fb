package importer

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/openshelf/circulation-ledger-go/circulation"
)

// ErrImportFile is returned when the import file cannot be read or decoded.
var ErrImportFile = errors.New("cannot load import file")

// Payload mirrors the import file layout: two named collections.
type Payload struct {
	Books   []circulation.BookRecord   `json:"books"`
	Patrons []circulation.PatronRecord `json:"patrons"`
}

// LoadFile reads and decodes an import file. A missing file or malformed
// JSON fails the load as a whole; bad individual records do not, they are
// reported later by the Library during registration.
func LoadFile(path string) (Payload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, errors.Join(ErrImportFile, err)
	}

	var payload Payload
	if unmarshalErr := jsoniter.ConfigFastest.Unmarshal(raw, &payload); unmarshalErr != nil {
		return Payload{}, errors.Join(ErrImportFile, fmt.Errorf("malformed JSON in %s: %w", path, unmarshalErr))
	}

	return payload, nil
}

// ImportFile loads an import file and registers its records with the
// library, returning the per-record import result.
func ImportFile(library *circulation.Library, path string) (circulation.ImportResult, error) {
	payload, err := LoadFile(path)
	if err != nil {
		return circulation.ImportResult{}, err
	}

	return library.ImportRecords(payload.Books, payload.Patrons), nil
}
