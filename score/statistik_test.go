package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fluwatch/fluwatch-api/schema"
)

func laporanDengan(keparahan int, gejala ...schema.Gejala) schema.Laporan {
	l := schema.Laporan{
		TingkatKeparahan: keparahan,
		Timestamp:        time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	l.SetGejala(gejala...)
	l.SkorInfluenza = SkorLaporan(l)
	return l
}

func TestIndeksRisiko(t *testing.T) {
	assert.Equal(t, 0.0, IndeksRisiko(0))
	assert.Equal(t, 4.5, IndeksRisiko(45))
	assert.Equal(t, 3.2, IndeksRisiko(32.5))
	assert.Equal(t, 10.0, IndeksRisiko(100))
	assert.Equal(t, 10.0, IndeksRisiko(250))
}

func TestLajuPerJam(t *testing.T) {
	assert.Equal(t, 0.0, LajuPerJam(0))
	assert.Equal(t, 0.5, LajuPerJam(12))
	assert.Equal(t, 2.1, LajuPerJam(50))
	assert.Equal(t, 0.2, LajuPerJam(6))
	assert.Equal(t, 1.2, LajuPerJam(30))
	assert.Equal(t, 0.4, LajuPerJam(9))
}

func TestGejalaDominan(t *testing.T) {
	laporan := []schema.Laporan{
		laporanDengan(5, schema.Demam, schema.Batuk),
		laporanDengan(5, schema.Demam, schema.Pilek),
		laporanDengan(5, schema.Batuk, schema.Demam, schema.SesakNapas),
		laporanDengan(5, schema.Pilek),
	}

	dominan := GejalaDominan(laporan, len(laporan), 2)
	assert.Equal(t, []schema.GejalaDominan{
		{Gejala: schema.Demam, Jumlah: 3, Persen: 75},
		{Gejala: schema.Batuk, Jumlah: 2, Persen: 50},
	}, dominan)
}

func TestGejalaDominanHalfPercent(t *testing.T) {
	laporan := []schema.Laporan{
		laporanDengan(5, schema.Demam),
		laporanDengan(5, schema.Demam, schema.Batuk),
		laporanDengan(5, schema.Demam, schema.Batuk),
		laporanDengan(5, schema.Batuk),
	}

	dominan := GejalaDominan(laporan, 16, 2)
	assert.Equal(t, []schema.GejalaDominan{
		{Gejala: schema.Demam, Jumlah: 3, Persen: 18.8},
		{Gejala: schema.Batuk, Jumlah: 3, Persen: 18.8},
	}, dominan)

	dominan = GejalaDominan(laporan[:1], 16, 1)
	assert.Equal(t, 6.2, dominan[0].Persen)
}

func TestGejalaDominanNoReports(t *testing.T) {
	assert.Equal(t, []schema.GejalaDominan{}, GejalaDominan(nil, 0, 5))
}

func TestGejalaTerbanyakTieKeepsCanonicalOrder(t *testing.T) {
	freq := map[schema.Gejala]int{
		schema.SesakNapas: 1,
		schema.Pilek:      1,
		schema.Demam:      1,
	}
	assert.Equal(t, []schema.Gejala{schema.Demam, schema.Pilek, schema.SesakNapas}, GejalaTerbanyak(freq, 5))
}

func TestHitungStatistik(t *testing.T) {
	rata := 47.25
	nama := "Tebet"
	terbaru := laporanDengan(8, schema.Demam, schema.Batuk, schema.Kelelahan)
	terbaru.NamaWilayah = &nama

	raw := schema.RawStatistik{
		Kasus24Jam:     12,
		Kasus24JamLalu: 8,
		Kasus48Jam:     20,
		Kasus7Hari:     50,
		KasusTotal:     120,
		KasusAktif:     14,
		KasusRingan:    6,
		RataSkor48Jam:  &rata,
		Laporan48Jam: []schema.Laporan{
			laporanDengan(8, schema.Demam),
			laporanDengan(2, schema.Pilek),
		},
		LaporanTerbaru: []schema.Laporan{
			terbaru,
			laporanDengan(2, schema.Pilek),
			laporanDengan(3, schema.Batuk),
			laporanDengan(4, schema.Demam),
		},
	}

	s := HitungStatistik(raw)
	assert.Equal(t, 50.0, s.TrendPersen)
	assert.Equal(t, 0.5, s.LajuPerJam)
	assert.Equal(t, 47.2, s.RataSkor48Jam)
	assert.Equal(t, 4.7, s.IndeksRisiko)
	assert.Len(t, s.GejalaDominan, 2)
	assert.Equal(t, 5.0, s.GejalaDominan[0].Persen)

	assert.Len(t, s.Peringatan, 3)
	assert.Equal(t, "Tebet", s.Peringatan[0].Wilayah)
	assert.Equal(t, []schema.Gejala{schema.Demam, schema.Batuk}, s.Peringatan[0].Gejala)
	assert.Equal(t, 8, s.Peringatan[0].Keparahan)
	assert.Equal(t, schema.WilayahTidakDiketahui, s.Peringatan[1].Wilayah)
}

func TestHitungStatistikWithoutReports(t *testing.T) {
	s := HitungStatistik(schema.RawStatistik{})
	assert.Equal(t, 0.0, s.RataSkor48Jam)
	assert.Equal(t, 0.0, s.IndeksRisiko)
	assert.Equal(t, 0.0, s.TrendPersen)
	assert.Empty(t, s.GejalaDominan)
	assert.Empty(t, s.Peringatan)
}
