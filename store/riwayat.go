package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fluwatch/fluwatch-api/schema"
)

// RiwayatAnalisis keeps the questions answered by the AI agent
type RiwayatAnalisis interface {
	SimpanRiwayatAnalisis(r *schema.RiwayatAnalisis) error
	GetRiwayatAnalisis(userID string, earlierThan, limit int64) ([]schema.RiwayatAnalisis, error)
}

func (m *mongoDB) SimpanRiwayatAnalisis(r *schema.RiwayatAnalisis) error {
	c := m.client.Database(m.database).Collection(schema.RiwayatAnalisisCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.InsertOne(ctx, r)
	if err != nil {
		return err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		r.ID = id
	}

	return nil
}

// GetRiwayatAnalisis returns the history of a user, newest first
func (m *mongoDB) GetRiwayatAnalisis(userID string, earlierThan, limit int64) ([]schema.RiwayatAnalisis, error) {
	c := m.client.Database(m.database).Collection(schema.RiwayatAnalisisCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query, options := historyQuery(userID, earlierThan, limit)
	cur, err := c.Find(ctx, query, options)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	riwayat := make([]schema.RiwayatAnalisis, 0)
	for cur.Next(ctx) {
		var r schema.RiwayatAnalisis
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		riwayat = append(riwayat, r)
	}

	return riwayat, cur.Err()
}

func historyQuery(userID string, earlierThan, limit int64) (bson.M, *options.FindOptions) {
	query := bson.M{
		"user_id": userID,
		"ts":      bson.M{"$lt": earlierThan},
	}
	options := options.Find()
	options = options.SetSort(bson.M{"ts": -1}).SetLimit(limit)
	return query, options
}
