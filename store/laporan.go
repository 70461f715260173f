package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/fluwatch/fluwatch-api/geo"
	"github.com/fluwatch/fluwatch-api/schema"
)

// LaporanFilter narrows down the admin report listing
type LaporanFilter struct {
	Offset int
	Limit  int
	Since  *time.Time
	UserID *uuid.UUID
}

// CreateLaporan stores a new report
func (s *FluWatchStore) CreateLaporan(l *schema.Laporan) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}

	return s.ormDB.Create(l).Error
}

func (s *FluWatchStore) GetLaporan(id uuid.UUID) (*schema.Laporan, error) {
	var l schema.Laporan
	if err := s.ormDB.Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// LaporanTerakhir returns the latest report of a user submitted after since.
// It returns nil if there is none.
func (s *FluWatchStore) LaporanTerakhir(userID uuid.UUID, since time.Time) (*schema.Laporan, error) {
	var l schema.Laporan
	err := s.ormDB.
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("timestamp desc").
		First(&l).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// ListLaporanSejak returns the newest reports submitted after since
func (s *FluWatchStore) ListLaporanSejak(since time.Time, limit int) ([]schema.Laporan, error) {
	laporan := make([]schema.Laporan, 0)
	err := s.ormDB.
		Where("timestamp >= ?", since).
		Order("timestamp desc").
		Limit(limit).
		Find(&laporan).Error
	return laporan, err
}

// ListLaporanDalamKotak returns the reports inside a bounding box. Callers
// refine the result with an exact distance filter.
func (s *FluWatchStore) ListLaporanDalamKotak(box geo.BoundingBox, since time.Time) ([]schema.Laporan, error) {
	laporan := make([]schema.Laporan, 0)
	err := s.ormDB.
		Where("timestamp >= ?", since).
		Where("lat BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("lng BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Order("timestamp desc").
		Find(&laporan).Error
	return laporan, err
}

// ListLaporanAdmin returns a page of reports and the total count for the filter
func (s *FluWatchStore) ListLaporanAdmin(filter LaporanFilter) ([]schema.Laporan, int, error) {
	query := s.ormDB.Model(&schema.Laporan{})
	if filter.Since != nil {
		query = query.Where("timestamp >= ?", *filter.Since)
	}

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	laporan := make([]schema.Laporan, 0)
	if err := query.Order("timestamp desc").Offset(filter.Offset).Limit(filter.Limit).Find(&laporan).Error; err != nil {
		return nil, 0, err
	}

	return laporan, total, nil
}

func (s *FluWatchStore) UpdateNamaWilayah(id uuid.UUID, nama string) error {
	result := s.ormDB.Model(&schema.Laporan{}).Where("id = ?", id).Update("nama_wilayah", nama)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrLaporanNotExist
	}

	return nil
}

func (s *FluWatchStore) DeleteLaporan(id uuid.UUID) error {
	result := s.ormDB.Where("id = ?", id).Delete(&schema.Laporan{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrLaporanNotExist
	}

	return nil
}
