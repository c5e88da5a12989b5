package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ketubot-catalog/internal/models"
)

// MongoKetubaRepository is the catalog repository for deployments that
// outgrew the flat files. Record ids stay small sequential ints so both
// backends are interchangeable behind KetubaRepository.
type MongoKetubaRepository struct {
	collection *mongo.Collection
}

func NewMongoKetubaRepository(collection *mongo.Collection) *MongoKetubaRepository {
	return &MongoKetubaRepository{collection: collection}
}

// ketubaDoc mirrors the flat-file field layout in bson.
type ketubaDoc struct {
	ID            int      `bson:"_id"`
	NameCS        string   `bson:"name_cs"`
	NameEN        string   `bson:"name_en,omitempty"`
	NameHE        string   `bson:"name_he,omitempty"`
	DescriptionCS string   `bson:"description_cs,omitempty"`
	DescriptionEN string   `bson:"description_en,omitempty"`
	DescriptionHE string   `bson:"description_he,omitempty"`
	CategoryCS    string   `bson:"category_cs,omitempty"`
	CategoryEN    string   `bson:"category_en,omitempty"`
	CategoryHE    string   `bson:"category_he,omitempty"`
	Price         float64  `bson:"price"`
	Images        []string `bson:"image,omitempty"`
	CreatedAt     string   `bson:"created_at"`
	UpdatedAt     string   `bson:"updated_at"`
}

func toDoc(k models.Ketuba) ketubaDoc {
	return ketubaDoc{
		ID:            k.ID,
		NameCS:        k.Name.CS,
		NameEN:        k.Name.EN,
		NameHE:        k.Name.HE,
		DescriptionCS: k.Description.CS,
		DescriptionEN: k.Description.EN,
		DescriptionHE: k.Description.HE,
		CategoryCS:    k.Category.CS,
		CategoryEN:    k.Category.EN,
		CategoryHE:    k.Category.HE,
		Price:         k.Price,
		Images:        k.Images,
		CreatedAt:     k.CreatedAt,
		UpdatedAt:     k.UpdatedAt,
	}
}

func (d ketubaDoc) toModel() models.Ketuba {
	return models.Ketuba{
		ID:          d.ID,
		Name:        models.LocalizedText{CS: d.NameCS, EN: d.NameEN, HE: d.NameHE},
		Description: models.LocalizedText{CS: d.DescriptionCS, EN: d.DescriptionEN, HE: d.DescriptionHE},
		Category:    models.LocalizedText{CS: d.CategoryCS, EN: d.CategoryEN, HE: d.CategoryHE},
		Price:       d.Price,
		Images:      d.Images,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *MongoKetubaRepository) List(ctx context.Context) ([]models.Ketuba, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []ketubaDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ketubas := make([]models.Ketuba, 0, len(docs))
	for _, d := range docs {
		ketubas = append(ketubas, d.toModel())
	}
	return ketubas, nil
}

func (r *MongoKetubaRepository) GetByID(ctx context.Context, id int) (*models.Ketuba, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc ketubaDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	k := doc.toModel()
	return &k, nil
}

func (r *MongoKetubaRepository) Create(ctx context.Context, k *models.Ketuba) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Same max+1 rule as the file backend.
	var top ketubaDoc
	err := r.collection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})).Decode(&top)
	switch {
	case err == mongo.ErrNoDocuments:
		k.ID = 1
	case err != nil:
		return err
	default:
		k.ID = top.ID + 1
	}

	now := nowISO()
	k.CreatedAt = now
	k.UpdatedAt = now

	_, err = r.collection.InsertOne(ctx, toDoc(*k))
	return err
}

func (r *MongoKetubaRepository) Update(ctx context.Context, id int, update models.KetubaUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": nowISO()}
	if update.Name != nil {
		set["name_cs"] = update.Name.CS
		set["name_en"] = update.Name.EN
		set["name_he"] = update.Name.HE
	}
	if update.Description != nil {
		set["description_cs"] = update.Description.CS
		set["description_en"] = update.Description.EN
		set["description_he"] = update.Description.HE
	}
	if update.Category != nil {
		set["category_cs"] = update.Category.CS
		set["category_en"] = update.Category.EN
		set["category_he"] = update.Category.HE
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Images != nil {
		set["image"] = []string(update.Images)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoKetubaRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
