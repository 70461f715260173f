package geo

import (
	"math"
	"sort"

	"github.com/fluwatch/fluwatch-api/schema"
)

const (
	EarthRadiusKm = 6371.0
	kmPerDegree   = 111.0
)

// Haversine returns the great-circle distance between two points in km
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox is a lat/lng rectangle used to prefilter radius queries
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// KotakBatas returns a box which contains every point within radiusKm of
// the center. The box is larger than the circle, so results still need
// an exact distance check.
func KotakBatas(lat, lng, radiusKm float64) BoundingBox {
	dLat := radiusKm / kmPerDegree

	dLng := 180.0
	if c := math.Cos(lat * math.Pi / 180); c > 1e-9 {
		dLng = math.Min(radiusKm/(kmPerDegree*c), 180)
	}

	return BoundingBox{
		MinLat: lat - dLat,
		MaxLat: lat + dLat,
		MinLng: lng - dLng,
		MaxLng: lng + dLng,
	}
}

// FilterRadius keeps the reports within radiusKm of the center and
// returns them nearest first with their distance attached
func FilterRadius(laporan []schema.Laporan, lat, lng, radiusKm float64) []schema.LaporanView {
	type kandidat struct {
		laporan schema.Laporan
		jarak   float64
	}

	dalamRadius := make([]kandidat, 0, len(laporan))
	for _, l := range laporan {
		jarak := Haversine(lat, lng, l.Lat, l.Lng)
		if jarak <= radiusKm {
			dalamRadius = append(dalamRadius, kandidat{l, jarak})
		}
	}

	sort.SliceStable(dalamRadius, func(i, j int) bool {
		return dalamRadius[i].jarak < dalamRadius[j].jarak
	})

	result := make([]schema.LaporanView, 0, len(dalamRadius))
	for _, k := range dalamRadius {
		result = append(result, k.laporan.ViewDenganJarak(k.jarak))
	}
	return result
}
