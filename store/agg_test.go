package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fluwatch/fluwatch-api/schema"
)

func TestAggStageGeoProximity(t *testing.T) {
	stage := aggStageGeoProximity(5000, schema.Location{Latitude: -6.2, Longitude: 106.8})

	geoNear := stage["$geoNear"].(bson.M)
	assert.Equal(t, 5000, geoNear["maxDistance"])
	assert.Equal(t, bson.A{106.8, -6.2}, geoNear["near"].(bson.M)["coordinates"])
}

func TestAggStageProject(t *testing.T) {
	stage := aggStageProject("nama", "location")
	assert.Equal(t, bson.M{
		"$project": bson.M{
			"_id":      0,
			"nama":     "$nama",
			"location": "$location",
		},
	}, stage)
}
