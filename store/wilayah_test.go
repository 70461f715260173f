package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fluwatch/fluwatch-api/schema"
)

type WilayahTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewWilayahTestSuite(connURI, dbName string) *WilayahTestSuite {
	return &WilayahTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *WilayahTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *WilayahTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *WilayahTestSuite) TestUpsertAndFindNearest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	wilayah := make([]schema.Wilayah, 0, len(schema.DaftarKluster))
	for _, k := range schema.DaftarKluster {
		wilayah = append(wilayah, k.Wilayah())
	}
	s.NoError(store.UpsertWilayah(wilayah))

	// upserting twice must not duplicate the centroids
	s.NoError(store.UpsertWilayah(wilayah))
	count, err := s.testDatabase.Collection(schema.WilayahCollection).CountDocuments(context.Background(), bson.M{})
	s.NoError(err)
	s.Equal(int64(len(schema.DaftarKluster)), count)

	w, err := store.WilayahTerdekat(5000, schema.Location{Latitude: -6.1865, Longitude: 106.8345})
	s.NoError(err)
	s.NotNil(w)
	s.Equal("Menteng", w.Nama)
	s.Equal("Point", w.Location.Type)
}

func (s *WilayahTestSuite) TestWilayahTerdekatOutOfRange() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.UpsertWilayah([]schema.Wilayah{
		schema.Kluster{Lat: -6.1862, Lng: 106.8340, Nama: "Menteng"}.Wilayah(),
	}))

	// Singapore is far away from every centroid
	w, err := store.WilayahTerdekat(5000, schema.Location{Latitude: 1.3521, Longitude: 103.8198})
	s.NoError(err)
	s.Nil(w)
}

func (s *WilayahTestSuite) TestUpsertEmpty() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	s.NoError(store.UpsertWilayah(nil))
}

func TestWilayahTestSuite(t *testing.T) {
	suite.Run(t, NewWilayahTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-wilayah"))
}
