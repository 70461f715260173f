package geo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"googlemaps.github.io/maps"

	"github.com/fluwatch/fluwatch-api/schema"
)

type fakeGeocoder struct {
	mock.Mock
}

func (f *fakeGeocoder) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	args := f.Called(r.LatLng.Lat, r.LatLng.Lng, r.Language)
	results, _ := args.Get(0).([]maps.GeocodingResult)
	return results, args.Error(1)
}

type fakeFinder struct {
	mock.Mock
}

func (f *fakeFinder) WilayahTerdekat(maxDistance int, loc schema.Location) (*schema.Wilayah, error) {
	args := f.Called(maxDistance, loc)
	w, _ := args.Get(0).(*schema.Wilayah)
	return w, args.Error(1)
}

type ResolverTestSuite struct {
	suite.Suite
	loc schema.Location
}

func (s *ResolverTestSuite) SetupSuite() {
	s.loc = schema.Location{Latitude: -6.2615, Longitude: 106.8106}
}

func (s *ResolverTestSuite) TestGeocodingPrefersKelurahan() {
	g := new(fakeGeocoder)
	g.On("Geocode", s.loc.Latitude, s.loc.Longitude, "id").Return([]maps.GeocodingResult{
		{
			AddressComponents: []maps.AddressComponent{
				{LongName: "Kota Jakarta Selatan", Types: []string{"administrative_area_level_2", "political"}},
				{LongName: "Kebayoran Baru", Types: []string{"administrative_area_level_3", "political"}},
			},
		},
		{
			AddressComponents: []maps.AddressComponent{
				{LongName: "Senayan", Types: []string{"administrative_area_level_4", "political"}},
			},
		},
	}, nil)

	nama, err := NewGeocodingResolver(g).NamaWilayah(context.Background(), s.loc)
	s.NoError(err)
	s.Equal("Senayan", nama)
	g.AssertExpectations(s.T())
}

func (s *ResolverTestSuite) TestGeocodingFallsBackToKota() {
	g := new(fakeGeocoder)
	g.On("Geocode", s.loc.Latitude, s.loc.Longitude, "id").Return([]maps.GeocodingResult{
		{
			AddressComponents: []maps.AddressComponent{
				{LongName: "Indonesia", Types: []string{"country", "political"}},
				{LongName: "Kota Jakarta Selatan", Types: []string{"administrative_area_level_2", "political"}},
			},
		},
	}, nil)

	nama, err := NewGeocodingResolver(g).NamaWilayah(context.Background(), s.loc)
	s.NoError(err)
	s.Equal("Kota Jakarta Selatan", nama)
}

func (s *ResolverTestSuite) TestGeocodingNoResult() {
	g := new(fakeGeocoder)
	g.On("Geocode", s.loc.Latitude, s.loc.Longitude, "id").Return([]maps.GeocodingResult{}, nil)

	_, err := NewGeocodingResolver(g).NamaWilayah(context.Background(), s.loc)
	s.Equal(ErrNoGeoInfoFound, err)
}

func (s *ResolverTestSuite) TestMongodbResolver() {
	f := new(fakeFinder)
	f.On("WilayahTerdekat", NearestWilayahDistance, s.loc).Return(&schema.Wilayah{Nama: "Kebayoran Baru"}, nil)

	nama, err := NewMongodbResolver(f).NamaWilayah(context.Background(), s.loc)
	s.NoError(err)
	s.Equal("Kebayoran Baru", nama)
}

func (s *ResolverTestSuite) TestMongodbResolverNotFound() {
	f := new(fakeFinder)
	f.On("WilayahTerdekat", NearestWilayahDistance, s.loc).Return(nil, nil)

	_, err := NewMongodbResolver(f).NamaWilayah(context.Background(), s.loc)
	s.Equal(ErrNoGeoInfoFound, err)
}

func (s *ResolverTestSuite) TestMultipleResolverFallback() {
	g := new(fakeGeocoder)
	g.On("Geocode", s.loc.Latitude, s.loc.Longitude, "id").Return(nil, fmt.Errorf("quota exceeded"))

	f := new(fakeFinder)
	f.On("WilayahTerdekat", NearestWilayahDistance, s.loc).Return(&schema.Wilayah{Nama: "Pesanggrahan"}, nil)

	r := NewMultipleResolver(NewGeocodingResolver(g), NewMongodbResolver(f))
	nama, err := r.NamaWilayah(context.Background(), s.loc)
	s.NoError(err)
	s.Equal("Pesanggrahan", nama)
}

func (s *ResolverTestSuite) TestMultipleResolverAllFailed() {
	g := new(fakeGeocoder)
	g.On("Geocode", s.loc.Latitude, s.loc.Longitude, "id").Return(nil, fmt.Errorf("quota exceeded"))

	f := new(fakeFinder)
	f.On("WilayahTerdekat", NearestWilayahDistance, s.loc).Return(nil, nil)

	r := NewMultipleResolver(NewGeocodingResolver(g), NewMongodbResolver(f))
	_, err := r.NamaWilayah(context.Background(), s.loc)
	s.EqualError(err, "#0: quota exceeded\n#1: no geo information found")
}

func (s *ResolverTestSuite) TestMultipleResolverEmpty() {
	_, err := NewMultipleResolver().NamaWilayah(context.Background(), s.loc)
	s.Equal(ErrResolverNotInitialized, err)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
