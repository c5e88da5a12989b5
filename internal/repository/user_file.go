package repository

import (
	"context"

	"ketubot-catalog/internal/models"
	"ketubot-catalog/internal/store"
)

const userCollection = "users"

// FileUserRepository persists admin credentials in a single JSON file.
// No update or delete is exposed; accounts are created once.
type FileUserRepository struct {
	store *store.Store
}

func NewFileUserRepository(s *store.Store) *FileUserRepository {
	return &FileUserRepository{store: s}
}

func (r *FileUserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.store.Load(userCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *FileUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *FileUserRepository) Create(ctx context.Context, username, hashedPassword string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:        nextUserID(users),
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: nowISO(),
	}
	users = append(users, user)
	if err := r.store.Save(userCollection, users); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *FileUserRepository) Count(ctx context.Context) (int, error) {
	users, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
