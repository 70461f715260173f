package schema

// Gejala is the column name of a symptom flag in laporan_influenza.
type Gejala string

const (
	Demam            Gejala = "demam"
	Batuk            Gejala = "batuk"
	SakitTenggorokan Gejala = "sakit_tenggorokan"
	Pilek            Gejala = "pilek"
	NyeriOtot        Gejala = "nyeri_otot"
	SakitKepala      Gejala = "sakit_kepala"
	Kelelahan        Gejala = "kelelahan"
	Menggigil        Gejala = "menggigil"
	MualMuntah       Gejala = "mual_muntah"
	SesakNapas       Gejala = "sesak_napas"
)

// GejalaFields is the canonical order of symptoms. Every list of symptoms
// returned by the API follows this order.
var GejalaFields = []Gejala{
	Demam,
	Batuk,
	SakitTenggorokan,
	Pilek,
	NyeriOtot,
	SakitKepala,
	Kelelahan,
	Menggigil,
	MualMuntah,
	SesakNapas,
}

// IsGejala reports whether name is one of the known symptom flags
func IsGejala(name string) bool {
	for _, g := range GejalaFields {
		if string(g) == name {
			return true
		}
	}
	return false
}

// GejalaInfo is the localized description of a symptom
type GejalaInfo struct {
	ID    Gejala `json:"id"`
	Label string `json:"label"`
	Bobot int    `json:"bobot"`
}
