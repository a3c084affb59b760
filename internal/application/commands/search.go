package commands

import (
	"slices"

	"github.com/sahilm/fuzzy"

	"kennel/internal/domain"
)

// fieldSource exposes one searchable field per (record, column) pair
type fieldSource struct {
	records []domain.Record
	fields  []string
}

func (s fieldSource) String(i int) string {
	return s.records[i/len(s.fields)].Field(s.fields[i%len(s.fields)])
}

func (s fieldSource) Len() int {
	return len(s.records) * len(s.fields)
}

// Search keeps the records where term fuzzy-matches at least one of fields.
// Matching is case-insensitive and the input order is preserved. An empty
// term returns records unchanged.
func Search(records []domain.Record, term string, fields []string) []domain.Record {
	if term == "" || len(fields) == 0 {
		return records
	}

	matches := fuzzy.FindFrom(term, fieldSource{records: records, fields: fields})
	hit := make([]bool, len(records))
	for _, m := range matches {
		hit[m.Index/len(fields)] = true
	}

	out := make([]domain.Record, 0, len(matches))
	for i, r := range records {
		if hit[i] {
			out = append(out, r)
		}
	}
	return out
}

// SearchFields returns the columns of kind that the search term is matched
// against: every data column, never the actions column
func SearchFields(kind domain.EntityKind) []string {
	ids := domain.ColumnIDs(kind.Columns())
	return slices.DeleteFunc(ids, func(id string) bool {
		return id == domain.ActionsColumn
	})
}
