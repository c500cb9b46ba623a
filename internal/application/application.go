package application

import "context"

// UseCase is the shape every application service exposes to the entry flow.
type UseCase[C any, R any] interface {
	Execute(ctx context.Context, cmd C) (R, error)
}
