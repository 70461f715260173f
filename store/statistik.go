package store

import (
	"database/sql"
	"time"

	"github.com/fluwatch/fluwatch-api/schema"
)

const (
	jumlahLaporanTerbaru = 3
	batasKasusAktif      = 5
)

// RawStatistik collects the counters of the dashboard. The derived
// figures are computed by the score package.
func (s *FluWatchStore) RawStatistik(now time.Time) (*schema.RawStatistik, error) {
	t24 := now.Add(-24 * time.Hour)
	t48 := now.Add(-48 * time.Hour)
	t168 := now.Add(-168 * time.Hour)

	var raw schema.RawStatistik

	counters := []struct {
		target *int
		where  string
		args   []interface{}
	}{
		{&raw.Kasus24Jam, "timestamp >= ?", []interface{}{t24}},
		{&raw.Kasus24JamLalu, "timestamp >= ? AND timestamp < ?", []interface{}{t48, t24}},
		{&raw.Kasus48Jam, "timestamp >= ?", []interface{}{t48}},
		{&raw.Kasus7Hari, "timestamp >= ?", []interface{}{t168}},
		{&raw.KasusAktif, "timestamp >= ? AND tingkat_keparahan >= ?", []interface{}{t48, batasKasusAktif}},
		{&raw.KasusRingan, "timestamp >= ? AND tingkat_keparahan < ?", []interface{}{t48, batasKasusAktif}},
	}

	for _, c := range counters {
		if err := s.ormDB.Model(&schema.Laporan{}).Where(c.where, c.args...).Count(c.target).Error; err != nil {
			return nil, err
		}
	}

	if err := s.ormDB.Model(&schema.Laporan{}).Count(&raw.KasusTotal).Error; err != nil {
		return nil, err
	}

	var rata sql.NullFloat64
	row := s.ormDB.Model(&schema.Laporan{}).
		Select("AVG(skor_influenza)").
		Where("timestamp >= ?", t48).
		Row()
	if err := row.Scan(&rata); err != nil {
		return nil, err
	}
	if rata.Valid {
		raw.RataSkor48Jam = &rata.Float64
	}

	raw.Laporan48Jam = make([]schema.Laporan, 0)
	if err := s.ormDB.Where("timestamp >= ?", t48).Find(&raw.Laporan48Jam).Error; err != nil {
		return nil, err
	}

	raw.LaporanTerbaru = make([]schema.Laporan, 0)
	if err := s.ormDB.Order("timestamp desc").Limit(jumlahLaporanTerbaru).Find(&raw.LaporanTerbaru).Error; err != nil {
		return nil, err
	}

	return &raw, nil
}
