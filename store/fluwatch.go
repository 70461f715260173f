package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/fluwatch/fluwatch-api/geo"
	"github.com/fluwatch/fluwatch-api/schema"
)

const pqUniqueViolation = "23505"

var (
	ErrPenggunaTaken    = fmt.Errorf("email or username has been taken")
	ErrPenggunaNotExist = fmt.Errorf("pengguna does not exist")
	ErrLaporanNotExist  = fmt.Errorf("laporan does not exist")
)

// FluWatchCore is the main relational datastore
type FluWatchCore interface {
	Ping() error

	// Pengguna
	CreatePengguna(p *schema.Pengguna) error
	GetPengguna(id uuid.UUID) (*schema.Pengguna, error)
	GetPenggunaByEmail(email string) (*schema.Pengguna, error)
	GetPenggunaByGoogleID(googleID string) (*schema.Pengguna, error)
	GetPenggunaByResetToken(token string) (*schema.Pengguna, error)
	UsernameTaken(username string) (bool, error)
	ListPengguna(cari string, offset, limit int) ([]schema.Pengguna, int, error)
	UpdatePengguna(id uuid.UUID, fields map[string]interface{}) (*schema.Pengguna, error)
	LinkGoogleID(id uuid.UUID, googleID string) error
	SetResetToken(id uuid.UUID, token string, expires time.Time) error
	ResetPassword(id uuid.UUID, passwordHash string) error
	ExpireResetTokens(now time.Time) (int64, error)
	DeletePengguna(id uuid.UUID) error

	// Laporan
	CreateLaporan(l *schema.Laporan) error
	GetLaporan(id uuid.UUID) (*schema.Laporan, error)
	LaporanTerakhir(userID uuid.UUID, since time.Time) (*schema.Laporan, error)
	ListLaporanSejak(since time.Time, limit int) ([]schema.Laporan, error)
	ListLaporanDalamKotak(box geo.BoundingBox, since time.Time) ([]schema.Laporan, error)
	ListLaporanAdmin(filter LaporanFilter) ([]schema.Laporan, int, error)
	UpdateNamaWilayah(id uuid.UUID, nama string) error
	DeleteLaporan(id uuid.UUID) error

	// Statistik
	RawStatistik(now time.Time) (*schema.RawStatistik, error)
}

// FluWatchStore is an implementation of FluWatchCore
type FluWatchStore struct {
	ormDB *gorm.DB
}

func NewFluWatchStore(ormDB *gorm.DB) *FluWatchStore {
	return &FluWatchStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *FluWatchStore) Ping() error {
	return s.ormDB.DB().Ping()
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
