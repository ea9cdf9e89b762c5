package domain

import "context"

// CatalogPage is one page of the remote catalog.
type CatalogPage struct {
	Records []MediaRecord
	Total   int // total announced by the source
}

// CatalogClient fetches catalog pages from the remote source.
// Pages are 1-indexed.
type CatalogClient interface {
	FetchPage(ctx context.Context, page int) (CatalogPage, error)
}

// Launcher hands a player URL off to an external program.
type Launcher interface {
	Launch(url string) error
}
