package score

import (
	"github.com/fluwatch/fluwatch-api/schema"
)

const MaxSkorInfluenza = 100

// BobotGejala is the contribution of each symptom to the influenza score
var BobotGejala = map[schema.Gejala]int{
	schema.Demam:            25,
	schema.Menggigil:        15,
	schema.NyeriOtot:        15,
	schema.Kelelahan:        10,
	schema.Batuk:            10,
	schema.SakitKepala:      8,
	schema.SakitTenggorokan: 7,
	schema.Pilek:            5,
	schema.MualMuntah:       3,
	schema.SesakNapas:       2,
}

// SkorInfluenza sums the weights of the given symptoms, capped at 100.
// Duplicates count once.
func SkorInfluenza(gejala []schema.Gejala) int {
	seen := make(map[schema.Gejala]bool, len(gejala))
	total := 0
	for _, g := range gejala {
		if seen[g] {
			continue
		}
		seen[g] = true
		total += BobotGejala[g]
	}

	if total > MaxSkorInfluenza {
		return MaxSkorInfluenza
	}
	return total
}

// SkorLaporan is the score of the symptoms marked on a report
func SkorLaporan(l schema.Laporan) int {
	return SkorInfluenza(l.GejalaAktif())
}

// Bobot is the heatmap weight of a report, in [0, 1]
func Bobot(skor int) float64 {
	return Round(float64(skor)/MaxSkorInfluenza, 2)
}
