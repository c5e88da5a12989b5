// Package repository exposes storage-agnostic access to the catalog and
// user collections. The flat-file implementations are the primary
// backend; a Mongo-backed catalog repository exists for deployments
// with a real database, and in-memory ones back the tests.
package repository

import (
	"context"
	"errors"
	"time"

	"ketubot-catalog/internal/models"
)

// ErrNotFound is returned when no record matches the given identifier.
var ErrNotFound = errors.New("record not found")

type KetubaRepository interface {
	List(ctx context.Context) ([]models.Ketuba, error)
	GetByID(ctx context.Context, id int) (*models.Ketuba, error)
	// Create assigns the id (max existing + 1) and both timestamps.
	Create(ctx context.Context, k *models.Ketuba) error
	// Update merges non-nil fields over the stored record. Id and
	// created_at are preserved regardless of input; updated_at is
	// refreshed.
	Update(ctx context.Context, id int, update models.KetubaUpdate) error
	Delete(ctx context.Context, id int) error
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	// GetByUsername scans linearly; usernames are unique by convention
	// only.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username, hashedPassword string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// nowISO matches the millisecond ISO-8601 format the data files were
// created with.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func nextKetubaID(ketubas []models.Ketuba) int {
	max := 0
	for _, k := range ketubas {
		if k.ID > max {
			max = k.ID
		}
	}
	return max + 1
}

func nextUserID(users []models.User) int {
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// applyUpdate merges update over k, keeping id and created_at intact.
func applyUpdate(k *models.Ketuba, update models.KetubaUpdate) {
	if update.Name != nil {
		k.Name = *update.Name
	}
	if update.Description != nil {
		k.Description = *update.Description
	}
	if update.Category != nil {
		k.Category = *update.Category
	}
	if update.Price != nil {
		k.Price = *update.Price
	}
	if update.Images != nil {
		k.Images = update.Images
	}
	k.UpdatedAt = nowISO()
}
