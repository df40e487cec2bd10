// Package users stores accounts in a document store collection.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/models"
)

type DocstoreRepository struct {
	c docstore.Collection
}

func NewDocstoreRepository(c docstore.Collection) *DocstoreRepository {
	return &DocstoreRepository{c: c}
}

// Create inserts user and fills in its identifier. A unique index violation
// is reported as common.ErrUserExists.
func (r *DocstoreRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	id, err := r.c.InsertOne(ctx, user.Document())
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return nil, common.ErrUserExists
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	user.ID = id
	return user, nil
}

func (r *DocstoreRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, err := r.c.Find(ctx, docstore.Where(docstore.Eq(models.FieldEmail, email)))
	if err != nil {
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	if len(docs) == 0 {
		return nil, common.ErrNotFound
	}
	return models.UserFromDocument(docs[0]), nil
}

func (r *DocstoreRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, docstore.Eq(models.FieldEmail, email))
}

// UsernameTaken only considers customer accounts; vendors have no username.
func (r *DocstoreRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx,
		docstore.Eq(models.FieldUsername, username),
		docstore.Eq(models.FieldUserType, common.UserTypeCustomer),
	)
}

func (r *DocstoreRepository) exists(ctx context.Context, conds ...docstore.Condition) (bool, error) {
	docs, err := r.c.Find(ctx, docstore.Where(conds...))
	if err != nil {
		return false, fmt.Errorf("error searching user: %w", err)
	}
	return len(docs) > 0, nil
}
