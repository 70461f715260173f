package score

const (
	RisikoTidakAda        = "tidak_ada"
	RisikoSporadis        = "sporadis"
	RisikoKlusterLokal    = "kluster_lokal"
	RisikoPenyebaranAktif = "penyebaran_aktif"
	RisikoPotensiWabah    = "potensi_wabah"
)

// TingkatRisiko classifies the number of cases around a location
func TingkatRisiko(jumlahKasus int) string {
	switch {
	case jumlahKasus <= 0:
		return RisikoTidakAda
	case jumlahKasus <= 2:
		return RisikoSporadis
	case jumlahKasus <= 10:
		return RisikoKlusterLokal
	case jumlahKasus <= 25:
		return RisikoPenyebaranAktif
	default:
		return RisikoPotensiWabah
	}
}
