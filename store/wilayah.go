package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fluwatch/fluwatch-api/schema"
)

// Wilayah manages the centroids of known neighbourhoods
type Wilayah interface {
	UpsertWilayah(wilayah []schema.Wilayah) error
	WilayahTerdekat(maxDistance int, loc schema.Location) (*schema.Wilayah, error)
}

// UpsertWilayah inserts the centroids or moves existing ones by name
func (m *mongoDB) UpsertWilayah(wilayah []schema.Wilayah) error {
	if len(wilayah) == 0 {
		return nil
	}

	c := m.client.Database(m.database).Collection(schema.WilayahCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	models := make([]mongo.WriteModel, 0, len(wilayah))
	for _, w := range wilayah {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"nama": w.Nama}).
			SetUpdate(bson.M{"$set": w}).
			SetUpsert(true))
	}

	_, err := c.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

// WilayahTerdekat returns the nearest centroid within maxDistance meters.
// It returns nil when no centroid is close enough.
func (m *mongoDB) WilayahTerdekat(maxDistance int, loc schema.Location) (*schema.Wilayah, error) {
	c := m.client.Database(m.database).Collection(schema.WilayahCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		aggStageGeoProximity(maxDistance, loc),
		aggStageLimit(1),
		aggStageProject("nama", "location"),
	}

	cur, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return nil, cur.Err()
	}

	var w schema.Wilayah
	if err := cur.Decode(&w); err != nil {
		return nil, err
	}

	return &w, nil
}
