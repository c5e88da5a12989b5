package repository

import (
	"context"
	"sync"

	"ketubot-catalog/internal/models"
)

// MemoryKetubaRepository keeps records in memory with the same id and
// timestamp rules as the file backend. Used by tests.
type MemoryKetubaRepository struct {
	mu      sync.Mutex
	ketubas []models.Ketuba
}

func NewMemoryKetubaRepository() *MemoryKetubaRepository {
	return &MemoryKetubaRepository{}
}

func (r *MemoryKetubaRepository) List(ctx context.Context) ([]models.Ketuba, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Ketuba, len(r.ketubas))
	copy(out, r.ketubas)
	return out, nil
}

func (r *MemoryKetubaRepository) GetByID(ctx context.Context, id int) (*models.Ketuba, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range r.ketubas {
		if k.ID == id {
			out := k
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryKetubaRepository) Create(ctx context.Context, k *models.Ketuba) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k.ID = nextKetubaID(r.ketubas)
	now := nowISO()
	k.CreatedAt = now
	k.UpdatedAt = now
	r.ketubas = append(r.ketubas, *k)
	return nil
}

func (r *MemoryKetubaRepository) Update(ctx context.Context, id int, update models.KetubaUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ketubas {
		if r.ketubas[i].ID == id {
			applyUpdate(&r.ketubas[i], update)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryKetubaRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ketubas {
		if r.ketubas[i].ID == id {
			r.ketubas = append(r.ketubas[:i], r.ketubas[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// MemoryUserRepository is the in-memory counterpart of the user store.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Create(ctx context.Context, username, hashedPassword string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := models.User{
		ID:        nextUserID(r.users),
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: nowISO(),
	}
	r.users = append(r.users, user)
	return &user, nil
}

func (r *MemoryUserRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}
