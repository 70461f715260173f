package schema

import "time"

type GejalaDominan struct {
	Gejala Gejala  `json:"gejala"`
	Jumlah int     `json:"jumlah"`
	Persen float64 `json:"persen"`
}

type Peringatan struct {
	Wilayah   string    `json:"wilayah"`
	Gejala    []Gejala  `json:"gejala"`
	Keparahan int       `json:"keparahan"`
	Timestamp time.Time `json:"timestamp"`
}

// Statistik is the aggregate shown on the dashboard cards
type Statistik struct {
	Kasus24Jam    int             `json:"kasus_24jam"`
	Kasus48Jam    int             `json:"kasus_48jam"`
	Kasus7Hari    int             `json:"kasus_7hari"`
	KasusTotal    int             `json:"kasus_total"`
	KasusAktif    int             `json:"kasus_aktif"`
	KasusRingan   int             `json:"kasus_ringan"`
	TrendPersen   float64         `json:"trend_persen"`
	LajuPerJam    float64         `json:"laju_per_jam"`
	RataSkor48Jam float64         `json:"rata_skor_48jam"`
	IndeksRisiko  float64         `json:"indeks_risiko"`
	GejalaDominan []GejalaDominan `json:"gejala_dominan"`
	Peringatan    []Peringatan    `json:"peringatan"`
}

// RawStatistik carries the raw counts read from the database before the
// dashboard metrics are derived from them
type RawStatistik struct {
	Kasus24Jam     int
	Kasus24JamLalu int
	Kasus48Jam     int
	Kasus7Hari     int
	KasusTotal     int
	KasusAktif     int
	KasusRingan    int
	RataSkor48Jam  *float64
	Laporan48Jam   []Laporan
	LaporanTerbaru []Laporan
}
