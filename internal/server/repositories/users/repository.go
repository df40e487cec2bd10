package users

import (
	"context"

	"github.com/dmitrijs2005/electro/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
}
