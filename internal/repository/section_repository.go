package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"testseries-service/internal/models"
)

type SectionRepository struct {
	Col *mongo.Collection
}

func NewSectionRepository(db *mongo.Database) *SectionRepository {
	return &SectionRepository{Col: db.Collection("sections")}
}

func (r *SectionRepository) FindByID(ctx context.Context, id string) (*models.Section, error) {
	var section models.Section
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&section)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// FindByTest returns a test's sections in declaration order.
func (r *SectionRepository) FindByTest(ctx context.Context, testID string) ([]models.Section, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"test_id": testID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sections []models.Section
	for cur.Next(ctx) {
		var s models.Section
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	if section.ID == "" {
		section.ID = primitive.NewObjectID().Hex()
	}
	section.CreatedAt = time.Now()
	section.UpdatedAt = section.CreatedAt
	_, err := r.Col.InsertOne(ctx, section)
	return err
}

func (r *SectionRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
