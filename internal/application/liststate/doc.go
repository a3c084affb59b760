// Package liststate holds the view state of entity list screens.
//
// Five independent controllers each own one concern of a tabular list:
// row selection, sorting and filtering, dialogs, pagination and column
// configuration. EntityList composes them into the single object a list
// view works with. None of the controllers calls into another; a view
// derives its rows by filtering and sorting with SortFilter's state and
// slicing the result with PaginateData.
//
// Controllers are plain state machines driven from one goroutine (the UI
// event loop). They are not safe for concurrent use.
package liststate
