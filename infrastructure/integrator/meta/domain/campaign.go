package metadomain

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Page é o envelope paginado padrão da Graph API
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}
