package catalog

import (
	"Backend-PlanujSmeny/src/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// locationDoc keeps the picker order next to the location itself.
type locationDoc struct {
	models.Location `bson:",inline"`
	Position        int `bson:"position"`
}

// MongoSource reads the catalog from the locations collection.
type MongoSource struct {
	collection *mongo.Collection
}

func NewMongoSource(collection *mongo.Collection) *MongoSource {
	return &MongoSource{collection: collection}
}

func (s *MongoSource) Locations(ctx context.Context) ([]models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find locations: %w", err)
	}

	var docs []locationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}

	locations := make([]models.Location, 0, len(docs))
	for _, d := range docs {
		locations = append(locations, d.Location)
	}
	return locations, nil
}

func (s *MongoSource) Location(ctx context.Context, id string) (models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc locationDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Location{}, ErrLocationNotFound
		}
		return models.Location{}, fmt.Errorf("find location %s: %w", id, err)
	}
	return doc.Location, nil
}

// SeedLocations upserts the given locations, keeping their order.
func SeedLocations(ctx context.Context, collection *mongo.Collection, locations []models.Location) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for i, l := range locations {
		doc := locationDoc{Location: l, Position: i}
		_, err := collection.ReplaceOne(ctx, bson.M{"_id": l.ID}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("seed location %s: %w", l.ID, err)
		}
	}
	log.Printf("✅ seeded %d locations", len(locations))
	return nil
}
