package seeder

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrijs2005/electro/internal/docstore"
)

// DecodeDump reads a JSON array of product records. Identifiers from the
// dump are dropped so that every record gets a fresh one on insert.
func DecodeDump(r io.Reader) ([]docstore.Document, error) {
	var docs []docstore.Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode dump: %w", err)
	}
	for i, d := range docs {
		if d == nil {
			return nil, fmt.Errorf("decode dump: record %d is not an object", i)
		}
		delete(d, docstore.IDField)
	}
	return docs, nil
}
