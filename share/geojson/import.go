package geojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/store"
)

var ErrUnsupportedGeometry = fmt.Errorf("unsupported geometry")

type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

type GeoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

type GeoJSON struct {
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}

// ParseWilayah reads a feature collection of neighbourhoods. The name is
// taken from the given property and the location is the centroid of the
// geometry. Features without a name are skipped.
func ParseWilayah(r io.Reader, namaProperty string) ([]schema.Wilayah, error) {
	var result GeoJSON
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, err
	}

	wilayah := make([]schema.Wilayah, 0, len(result.Features))
	for _, f := range result.Features {
		nama, _ := f.Properties[namaProperty].(string)
		nama = strings.TrimSpace(nama)
		if nama == "" {
			continue
		}

		loc, err := centroid(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nama, err)
		}

		wilayah = append(wilayah, schema.Wilayah{
			Nama:     nama,
			Location: schema.NewGeoJSONPoint(loc),
		})
	}

	return wilayah, nil
}

// centroid averages the vertices of the outer rings. It is close enough
// for the small areas of a neighbourhood.
func centroid(g Geometry) (schema.Location, error) {
	var rings [][][]float64

	switch g.Type {
	case "Point":
		var p []float64
		if err := json.Unmarshal(g.Coordinates, &p); err != nil {
			return schema.Location{}, err
		}
		rings = [][][]float64{{p}}
	case "Polygon":
		var polygon [][][]float64
		if err := json.Unmarshal(g.Coordinates, &polygon); err != nil {
			return schema.Location{}, err
		}
		if len(polygon) > 0 {
			rings = append(rings, polygon[0])
		}
	case "MultiPolygon":
		var polygons [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polygons); err != nil {
			return schema.Location{}, err
		}
		for _, polygon := range polygons {
			if len(polygon) > 0 {
				rings = append(rings, polygon[0])
			}
		}
	default:
		return schema.Location{}, ErrUnsupportedGeometry
	}

	var sumLng, sumLat float64
	count := 0
	for _, ring := range rings {
		// a closed ring repeats its first vertex
		if len(ring) > 1 && equal(ring[0], ring[len(ring)-1]) {
			ring = ring[:len(ring)-1]
		}
		for _, p := range ring {
			if len(p) < 2 {
				return schema.Location{}, ErrUnsupportedGeometry
			}
			sumLng += p[0]
			sumLat += p[1]
			count++
		}
	}

	if count == 0 {
		return schema.Location{}, ErrUnsupportedGeometry
	}

	return schema.Location{
		Latitude:  sumLat / float64(count),
		Longitude: sumLng / float64(count),
	}, nil
}

func equal(a, b []float64) bool {
	return len(a) >= 2 && len(b) >= 2 && a[0] == b[0] && a[1] == b[1]
}

// ImportWilayah upserts the neighbourhoods of a geojson file
func ImportWilayah(s store.Wilayah, geoJSONFile, namaProperty string) (int, error) {
	file, err := os.Open(geoJSONFile)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	wilayah, err := ParseWilayah(file, namaProperty)
	if err != nil {
		return 0, err
	}

	if err := s.UpsertWilayah(wilayah); err != nil {
		return 0, err
	}

	return len(wilayah), nil
}
