package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennel/internal/application/liststate"
	"kennel/internal/domain"
)

func names(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Field("name")
	}
	return out
}

func sampleRecords() []domain.Record {
	return toRecords([]domain.Pet{
		{ID: "1", Name: "Max", Species: "dog", Breed: "Collie", Status: domain.StatusActive, CreatedAt: created.AddDate(0, 0, 3)},
		{ID: "2", Name: "bella", Species: "cat", Status: domain.StatusInactive, CreatedAt: created.AddDate(0, 0, 1)},
		{ID: "3", Name: "Maxine", Species: "dog", Status: domain.StatusActive, CreatedAt: created.AddDate(0, 0, 2)},
		{ID: "4", Name: "Rex", Species: "Dog", Status: domain.StatusActive},
	})
}

func TestSearch(t *testing.T) {
	fields := SearchFields(domain.KindPets)
	assert.NotContains(t, fields, domain.ActionsColumn)

	t.Run("fuzzy and case-insensitive", func(t *testing.T) {
		got := Search(sampleRecords(), "MAX", fields)
		assert.Equal(t, []string{"Max", "Maxine"}, names(got))
	})

	t.Run("matches any field", func(t *testing.T) {
		got := Search(sampleRecords(), "collie", fields)
		assert.Equal(t, []string{"Max"}, names(got))
	})

	t.Run("empty term keeps everything", func(t *testing.T) {
		assert.Len(t, Search(sampleRecords(), "", fields), 4)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search(sampleRecords(), "zzz", fields))
	})
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		view    string
		filters map[string]any
		want    []string
	}{
		{"all", domain.ViewAll, nil, []string{"Max", "bella", "Maxine", "Rex"}},
		{"view", domain.StatusInactive, nil, []string{"bella"}},
		{"equality ignores case", domain.ViewAll, map[string]any{"species": "dog"}, []string{"Max", "Maxine", "Rex"}},
		{"falsy values do not narrow", domain.ViewAll, map[string]any{"species": "", "breed": nil}, []string{"Max", "bella", "Maxine", "Rex"}},
		{"view and filter", domain.StatusActive, map[string]any{"breed": "collie"}, []string{"Max"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(sampleRecords(), tt.view, tt.filters)))
		})
	}
}

func TestSortRecords(t *testing.T) {
	t.Run("text ascending ignores case", func(t *testing.T) {
		r := sampleRecords()
		SortRecords(r, liststate.Sort{Key: "name", Direction: liststate.Asc})
		assert.Equal(t, []string{"bella", "Max", "Maxine", "Rex"}, names(r))
	})

	t.Run("descending", func(t *testing.T) {
		r := sampleRecords()
		SortRecords(r, liststate.Sort{Key: "name", Direction: liststate.Desc})
		assert.Equal(t, []string{"Rex", "Maxine", "Max", "bella"}, names(r))
	})

	t.Run("dates chronologically with unset first", func(t *testing.T) {
		r := sampleRecords()
		SortRecords(r, liststate.Sort{Key: "created", Direction: liststate.Asc})
		assert.Equal(t, []string{"Rex", "bella", "Maxine", "Max"}, names(r))
	})

	t.Run("stable on ties", func(t *testing.T) {
		r := sampleRecords()
		SortRecords(r, liststate.Sort{Key: "species", Direction: liststate.Asc})
		assert.Equal(t, []string{"bella", "Max", "Maxine", "Rex"}, names(r))
	})

	t.Run("numbers numerically", func(t *testing.T) {
		day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		r := toRecords([]domain.Booking{
			{ID: "a", PetName: "ten", CheckIn: day, CheckOut: day.AddDate(0, 0, 10)},
			{ID: "b", PetName: "two", CheckIn: day, CheckOut: day.AddDate(0, 0, 2)},
		})
		SortRecords(r, liststate.Sort{Key: "nights", Direction: liststate.Asc})
		assert.Equal(t, []string{"two", "ten"}, names(r))
	})

	t.Run("empty key keeps order", func(t *testing.T) {
		r := sampleRecords()
		SortRecords(r, liststate.Sort{})
		assert.Equal(t, []string{"Max", "bella", "Maxine", "Rex"}, names(r))
	})
}

func TestApplyQuery(t *testing.T) {
	sf := liststate.NewSortFilter("name", map[string]any{"species": ""})
	sf.SetSearchTerm("max")
	sf.UpdateFilter("species", "dog")
	sf.HandleSort("name") // already the default key, so this reverses it

	q := QueryFrom(sf)
	require.Equal(t, liststate.Desc, q.Sort.Direction)

	got := ApplyQuery(domain.KindPets, sampleRecords(), q)
	assert.Equal(t, []string{"Maxine", "Max"}, names(got))
}

func TestFormatCell(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	r := sampleRecords()

	assert.Equal(t, "6 days ago", FormatCell(r[0], "created", now))
	assert.Equal(t, "Max", FormatCell(r[0], "name", now))
	assert.Equal(t, "", FormatCell(r[3], "created", now), "unset dates fall back to the raw field")
}
