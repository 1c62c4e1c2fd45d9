package table

// UnsortedSortOrderID is the reserved order id meaning "no sort order". A
// default-sort-order-id of this value is always valid and never has to
// resolve against the sort-orders collection.
const UnsortedSortOrderID = 0

// SortOrder describes how rows are ordered within data files
type SortOrder struct {
	OrderID int         `json:"order-id"`
	Fields  []SortField `json:"fields"`
}

// SortField is a single sort dimension
type SortField struct {
	SourceID  int    `json:"source-id"`
	Transform string `json:"transform"`
	Direction string `json:"direction"`  // asc or desc
	NullOrder string `json:"null-order"` // nulls-first or nulls-last
}

// UnsortedSortOrder is the order synthesized when a document supplies none
func UnsortedSortOrder() SortOrder {
	return SortOrder{OrderID: UnsortedSortOrderID}
}
