package schema

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	LaporanTable = "laporan_influenza"

	UsiaAnak   = "anak"
	UsiaRemaja = "remaja"
	UsiaDewasa = "dewasa"
	UsiaLansia = "lansia"

	WilayahTidakDiketahui = "Area Tidak Diketahui"
)

var KelompokUsia = []string{UsiaAnak, UsiaRemaja, UsiaDewasa, UsiaLansia}

// IsKelompokUsia reports whether usia is an accepted age group
func IsKelompokUsia(usia string) bool {
	for _, u := range KelompokUsia {
		if u == usia {
			return true
		}
	}
	return false
}

// Laporan is a symptom report submitted by a user
type Laporan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Lat         float64   `gorm:"type:numeric(10,8);not null"`
	Lng         float64   `gorm:"type:numeric(11,8);not null"`
	NamaWilayah *string   `gorm:"type:varchar(255)"`

	Demam            bool `gorm:"not null;default:false"`
	Batuk            bool `gorm:"not null;default:false"`
	SakitTenggorokan bool `gorm:"not null;default:false"`
	Pilek            bool `gorm:"not null;default:false"`
	NyeriOtot        bool `gorm:"not null;default:false"`
	SakitKepala      bool `gorm:"not null;default:false"`
	Kelelahan        bool `gorm:"not null;default:false"`
	Menggigil        bool `gorm:"not null;default:false"`
	MualMuntah       bool `gorm:"not null;default:false"`
	SesakNapas       bool `gorm:"not null;default:false"`

	DurasiHari       *int
	TingkatKeparahan int `gorm:"not null;default:5"`
	SudahVaksin      *bool
	KelompokUsia     string `gorm:"type:varchar(10);not null;default:'dewasa'"`
	SkorInfluenza    int    `gorm:"not null;default:0"`
	IPHash           string `gorm:"type:varchar(16)"`

	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Timestamp time.Time  `gorm:"not null;index"`
	CreatedAt time.Time
}

func (Laporan) TableName() string {
	return LaporanTable
}

func (l *Laporan) flag(g Gejala) *bool {
	switch g {
	case Demam:
		return &l.Demam
	case Batuk:
		return &l.Batuk
	case SakitTenggorokan:
		return &l.SakitTenggorokan
	case Pilek:
		return &l.Pilek
	case NyeriOtot:
		return &l.NyeriOtot
	case SakitKepala:
		return &l.SakitKepala
	case Kelelahan:
		return &l.Kelelahan
	case Menggigil:
		return &l.Menggigil
	case MualMuntah:
		return &l.MualMuntah
	case SesakNapas:
		return &l.SesakNapas
	}
	return nil
}

// SetGejala marks the given symptoms on the report. Unknown names are ignored.
func (l *Laporan) SetGejala(gejala ...Gejala) {
	for _, g := range gejala {
		if f := l.flag(g); f != nil {
			*f = true
		}
	}
}

// Has reports whether a symptom is marked on the report
func (l Laporan) Has(g Gejala) bool {
	if f := l.flag(g); f != nil {
		return *f
	}
	return false
}

// GejalaAktif lists the marked symptoms in canonical order
func (l Laporan) GejalaAktif() []Gejala {
	aktif := make([]Gejala, 0, len(GejalaFields))
	for _, g := range GejalaFields {
		if l.Has(g) {
			aktif = append(aktif, g)
		}
	}
	return aktif
}

// Wilayah returns the area name or the placeholder for unnamed reports
func (l Laporan) Wilayah() string {
	if l.NamaWilayah == nil || *l.NamaWilayah == "" {
		return WilayahTidakDiketahui
	}
	return *l.NamaWilayah
}

// LaporanView is the JSON representation of a report
type LaporanView struct {
	ID               uuid.UUID  `json:"id"`
	Lat              float64    `json:"lat"`
	Lng              float64    `json:"lng"`
	NamaWilayah      *string    `json:"nama_wilayah"`
	Gejala           []Gejala   `json:"gejala"`
	TingkatKeparahan int        `json:"tingkat_keparahan"`
	DurasiHari       *int       `json:"durasi_hari"`
	SudahVaksin      *bool      `json:"sudah_vaksin"`
	KelompokUsia     string     `json:"kelompok_usia"`
	SkorInfluenza    int        `json:"skor_influenza"`
	Timestamp        time.Time  `json:"timestamp"`
	UserID           *uuid.UUID `json:"user_id"`
	JarakKm          *float64   `json:"jarak_km,omitempty"`
}

func (l Laporan) View() LaporanView {
	return LaporanView{
		ID:               l.ID,
		Lat:              l.Lat,
		Lng:              l.Lng,
		NamaWilayah:      l.NamaWilayah,
		Gejala:           l.GejalaAktif(),
		TingkatKeparahan: l.TingkatKeparahan,
		DurasiHari:       l.DurasiHari,
		SudahVaksin:      l.SudahVaksin,
		KelompokUsia:     l.KelompokUsia,
		SkorInfluenza:    l.SkorInfluenza,
		Timestamp:        l.Timestamp,
		UserID:           l.UserID,
	}
}

// ViewDenganJarak attaches the distance to the query point, rounded to 2 decimals
func (l Laporan) ViewDenganJarak(jarakKm float64) LaporanView {
	v := l.View()
	jarak := math.RoundToEven(jarakKm*100) / 100
	v.JarakKm = &jarak
	return v
}

func LaporanViews(laporan []Laporan) []LaporanView {
	views := make([]LaporanView, 0, len(laporan))
	for _, l := range laporan {
		views = append(views, l.View())
	}
	return views
}

// TitikPeta is a weighted heatmap point
type TitikPeta struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Bobot float64 `json:"bobot"`
}

// MarkerPeta is a clickable report marker on the map
type MarkerPeta struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Keparahan int       `json:"keparahan"`
	Skor      int       `json:"skor"`
	Gejala    []Gejala  `json:"gejala"`
	Wilayah   string    `json:"wilayah"`
	Usia      string    `json:"usia"`
	Timestamp time.Time `json:"timestamp"`
	Baru      bool      `json:"baru"`
}
