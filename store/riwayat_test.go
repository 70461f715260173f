package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fluwatch/fluwatch-api/schema"
)

type RiwayatTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewRiwayatTestSuite(connURI, dbName string) *RiwayatTestSuite {
	return &RiwayatTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RiwayatTestSuite) SetupSuite() {
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
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *RiwayatTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()
	loc := schema.NewGeoJSONPoint(schema.Location{Latitude: -6.2615, Longitude: 106.8106})

	_, err := s.testDatabase.Collection(schema.RiwayatAnalisisCollection).InsertMany(ctx, []interface{}{
		schema.RiwayatAnalisis{UserID: "user-riwayat", Pertanyaan: "q1", Jawaban: "a1", Location: loc, Timestamp: 100},
		schema.RiwayatAnalisis{UserID: "user-riwayat", Pertanyaan: "q2", Jawaban: "a2", Location: loc, Timestamp: 200},
		schema.RiwayatAnalisis{UserID: "user-riwayat", Pertanyaan: "q3", Jawaban: "a3", Location: loc, Timestamp: 300},
		schema.RiwayatAnalisis{UserID: "user-lain", Pertanyaan: "q4", Jawaban: "a4", Location: loc, Timestamp: 250},
	})
	return err
}

// CleanMongoDB drop the whole test mongodb
func (s *RiwayatTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RiwayatTestSuite) TestGetRiwayatAnalisisNewestFirst() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	riwayat, err := store.GetRiwayatAnalisis("user-riwayat", 1000, 10)
	s.NoError(err)
	s.Len(riwayat, 3)
	s.Equal("q3", riwayat[0].Pertanyaan)
	s.Equal("q2", riwayat[1].Pertanyaan)
	s.Equal("q1", riwayat[2].Pertanyaan)
}

func (s *RiwayatTestSuite) TestGetRiwayatAnalisisBeforeAndLimit() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	riwayat, err := store.GetRiwayatAnalisis("user-riwayat", 300, 1)
	s.NoError(err)
	s.Len(riwayat, 1)
	s.Equal("q2", riwayat[0].Pertanyaan)
}

func (s *RiwayatTestSuite) TestGetRiwayatAnalisisUnknownUser() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	riwayat, err := store.GetRiwayatAnalisis("user-unknown", 1000, 10)
	s.NoError(err)
	s.Len(riwayat, 0)
}

func (s *RiwayatTestSuite) TestSimpanRiwayatAnalisis() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	r := schema.RiwayatAnalisis{
		UserID:        "user-simpan",
		Pertanyaan:    "Apakah aman?",
		Jawaban:       "Relatif aman.",
		Location:      schema.NewGeoJSONPoint(schema.Location{Latitude: -6.2, Longitude: 106.8}),
		RadiusKm:      10,
		Jam:           48,
		JumlahKasus:   2,
		TingkatRisiko: "sporadis",
		Timestamp:     500,
	}
	s.NoError(store.SimpanRiwayatAnalisis(&r))
	s.False(r.ID.IsZero())

	riwayat, err := store.GetRiwayatAnalisis("user-simpan", 1000, 10)
	s.NoError(err)
	s.Len(riwayat, 1)
	s.Equal(r.ID, riwayat[0].ID)
	s.Equal("sporadis", riwayat[0].TingkatRisiko)
	s.Equal([]float64{106.8, -6.2}, riwayat[0].Location.Coordinates)
}

func TestRiwayatTestSuite(t *testing.T) {
	suite.Run(t, NewRiwayatTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-riwayat"))
}
