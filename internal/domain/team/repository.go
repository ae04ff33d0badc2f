package team

import "context"

// ListFilter narrows team listings. Active always applies; zero Country
// means all countries.
type ListFilter struct {
	Active  bool
	Country Country
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) error
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	GetByIDForUpdate(ctx context.Context, id int64) (Team, bool, error)
	FindActiveByNormalizedName(ctx context.Context, normalized string) (Team, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Team, error)
}
