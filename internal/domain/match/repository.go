package match

import "context"

// ListFilter narrows match listings. Active always applies; zero TeamID
// and Phase are ignored.
type ListFilter struct {
	Active bool
	TeamID int64
	Phase  Phase
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Match) (Match, error)
	Update(ctx context.Context, item Match) error
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	GetByIDForUpdate(ctx context.Context, id int64) (Match, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Match, error)
}
