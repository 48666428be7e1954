package profile

import "context"

type Repository interface {
	List(ctx context.Context) ([]Profile, error)
}
