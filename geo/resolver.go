package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/fluwatch/fluwatch-api/schema"
)

const (
	// NearestWilayahDistance is the maximum distance in meters between a
	// report and a known centroid for the centroid name to be used
	NearestWilayahDistance = 5000

	geocodeTimeout = 5 * time.Second
)

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("wilayah resolver is not initialized")
)

// WilayahResolver - interface for resolving the area name of a location
type WilayahResolver interface {
	NamaWilayah(context.Context, schema.Location) (string, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// Geocoder is the part of the google maps client used for reverse geocoding
type Geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type GeocodingResolver struct {
	client Geocoder
}

func NewGeocodingResolver(client Geocoder) *GeocodingResolver {
	return &GeocodingResolver{
		client: client,
	}
}

// administrative levels from the most to the least specific: kelurahan,
// kecamatan and kota/kabupaten
var wilayahLevels = []string{
	"administrative_area_level_4",
	"administrative_area_level_3",
	"administrative_area_level_2",
}

func (g *GeocodingResolver) NamaWilayah(ctx context.Context, loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: "id",
	})
	if nil != err {
		return "", err
	}

	for _, level := range wilayahLevels {
		for _, geo := range geos {
			for _, a := range geo.AddressComponents {
				if hasType(a.Types, level) && a.LongName != "" {
					return a.LongName, nil
				}
			}
		}
	}

	return "", ErrNoGeoInfoFound
}

func hasType(types []string, t string) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

// WilayahFinder looks up the nearest known centroid
type WilayahFinder interface {
	WilayahTerdekat(maxDistance int, loc schema.Location) (*schema.Wilayah, error)
}

type MongodbResolver struct {
	finder      WilayahFinder
	maxDistance int
}

func NewMongodbResolver(finder WilayahFinder) *MongodbResolver {
	return &MongodbResolver{
		finder:      finder,
		maxDistance: NearestWilayahDistance,
	}
}

func (r *MongodbResolver) NamaWilayah(_ context.Context, loc schema.Location) (string, error) {
	w, err := r.finder.WilayahTerdekat(r.maxDistance, loc)
	if err != nil {
		return "", err
	}

	if w == nil {
		return "", ErrNoGeoInfoFound
	}

	return w.Nama, nil
}

type MultipleResolver struct {
	resolvers []WilayahResolver
}

func NewMultipleResolver(resolvers ...WilayahResolver) *MultipleResolver {
	return &MultipleResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleResolver) NamaWilayah(ctx context.Context, loc schema.Location) (string, error) {
	if len(r.resolvers) == 0 {
		return "", ErrResolverNotInitialized
	}

	var errors []error
	for _, resolver := range r.resolvers {
		nama, err := resolver.NamaWilayah(ctx, loc)
		if err != nil {
			errors = append(errors, err)
		} else {
			return nama, nil
		}
	}

	return "", NewMultipleResolverErrors(errors)
}
