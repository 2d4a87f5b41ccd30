package seeder

import (
	"Backend-PlanujSmeny/src/services/catalog"
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
)

// SeedSampleLocations เขียนสาขา San Carlo ทั้งหกพร้อมตารางกะเริ่มต้นลง MongoDB
func SeedSampleLocations(ctx context.Context, collection *mongo.Collection) error {
	if collection == nil {
		return fmt.Errorf("locations collection is not connected")
	}

	locations := catalog.DefaultLocations()
	if err := catalog.SeedLocations(ctx, collection, locations); err != nil {
		return err
	}

	for _, l := range locations {
		log.Printf("🌱 %s (%d shifts)", l.Name, len(l.Shifts))
	}
	return nil
}
