package users

import "context"

// Repository is the store of user records. Implementations map their
// driver-specific "no rows" condition to common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}
