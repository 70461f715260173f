package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/fluwatch/fluwatch-api/schema"
)

func aggStageGeoProximity(maxDistance int, location schema.Location) bson.M {
	return bson.M{
		"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{location.Longitude, location.Latitude},
			},
			"distanceField": "dist",
			"maxDistance":   maxDistance,
			"spherical":     true,
			"includeLocs":   "location",
		},
	}
}

func aggStageLimit(n int64) bson.M {
	return bson.M{"$limit": n}
}

// aggStageProject keeps only the given fields and drops the _id.
/*
{
	"$project": {
		"_id": 0,
		fields[0]: "$fields[0]",
		...
	}
}
*/
func aggStageProject(fields ...string) bson.M {
	project := bson.M{"_id": 0}
	for _, field := range fields {
		project[field] = specifyField(field)
	}
	return bson.M{"$project": project}
}

func specifyField(fieldName string) string {
	return fmt.Sprintf("$%s", fieldName)
}
