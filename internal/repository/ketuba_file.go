package repository

import (
	"context"

	"ketubot-catalog/internal/models"
	"ketubot-catalog/internal/store"
)

const ketubaCollection = "ketubas"

// FileKetubaRepository persists ketubot in a single JSON file through
// the flat-file store.
type FileKetubaRepository struct {
	store *store.Store
}

func NewFileKetubaRepository(s *store.Store) *FileKetubaRepository {
	return &FileKetubaRepository{store: s}
}

func (r *FileKetubaRepository) List(ctx context.Context) ([]models.Ketuba, error) {
	var ketubas []models.Ketuba
	if err := r.store.Load(ketubaCollection, &ketubas); err != nil {
		return nil, err
	}
	return ketubas, nil
}

func (r *FileKetubaRepository) GetByID(ctx context.Context, id int) (*models.Ketuba, error) {
	ketubas, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ketubas {
		if ketubas[i].ID == id {
			return &ketubas[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *FileKetubaRepository) Create(ctx context.Context, k *models.Ketuba) error {
	ketubas, err := r.List(ctx)
	if err != nil {
		return err
	}
	k.ID = nextKetubaID(ketubas)
	now := nowISO()
	k.CreatedAt = now
	k.UpdatedAt = now
	ketubas = append(ketubas, *k)
	return r.store.Save(ketubaCollection, ketubas)
}

func (r *FileKetubaRepository) Update(ctx context.Context, id int, update models.KetubaUpdate) error {
	ketubas, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range ketubas {
		if ketubas[i].ID == id {
			applyUpdate(&ketubas[i], update)
			return r.store.Save(ketubaCollection, ketubas)
		}
	}
	return ErrNotFound
}

func (r *FileKetubaRepository) Delete(ctx context.Context, id int) error {
	ketubas, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := ketubas[:0:0]
	for _, k := range ketubas {
		if k.ID != id {
			kept = append(kept, k)
		}
	}
	if len(kept) == len(ketubas) {
		// Nothing removed, leave the file untouched.
		return ErrNotFound
	}
	return r.store.Save(ketubaCollection, kept)
}
