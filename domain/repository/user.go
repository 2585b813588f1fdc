package repository

import (
	"context"

	"anime-hub/domain/model"
)

// IUser is the account store consumed by auth.
type IUser interface {
	// GetByEmail returns the user for an email, or (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Create inserts a new user. Email is unique.
	Create(ctx context.Context, user *model.User) error
}
