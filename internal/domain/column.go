package domain

// ActionsColumn is the id of the sentinel column holding row actions.
// New columns are inserted before it so actions stay rightmost.
const ActionsColumn = "actions"

// Column describes a column of an entity list view
type Column struct {
	ID    string // e.g., "breed"
	Title string // e.g., "Breed"
	Width int    // preferred render width in cells
}

// ColumnIDs returns the ids of cols in order
func ColumnIDs(cols []Column) []string {
	ids := make([]string, len(cols))
	for i, c := range cols {
		ids[i] = c.ID
	}
	return ids
}

var (
	PetColumns = []Column{
		{ID: "name", Title: "Name", Width: 16},
		{ID: "species", Title: "Species", Width: 10},
		{ID: "breed", Title: "Breed", Width: 18},
		{ID: "owner", Title: "Owner", Width: 12},
		{ID: "status", Title: "Status", Width: 10},
		{ID: "created", Title: "Added", Width: 14},
		{ID: ActionsColumn, Title: "", Width: 3},
	}

	OwnerColumns = []Column{
		{ID: "name", Title: "Name", Width: 20},
		{ID: "email", Title: "Email", Width: 26},
		{ID: "phone", Title: "Phone", Width: 14},
		{ID: "status", Title: "Status", Width: 10},
		{ID: "created", Title: "Added", Width: 14},
		{ID: ActionsColumn, Title: "", Width: 3},
	}

	BookingColumns = []Column{
		{ID: "name", Title: "Pet", Width: 16},
		{ID: "kennel", Title: "Kennel", Width: 8},
		{ID: "check_in", Title: "Check-in", Width: 12},
		{ID: "check_out", Title: "Check-out", Width: 12},
		{ID: "nights", Title: "Nights", Width: 7},
		{ID: "status", Title: "Status", Width: 12},
		{ID: ActionsColumn, Title: "", Width: 3},
	}
)
