package score

import (
	"math"
	"sort"

	"github.com/fluwatch/fluwatch-api/schema"
)

const (
	jumlahGejalaDominan = 5
	jumlahPeringatan    = 3
	gejalaPeringatan    = 2
)

// IndeksRisiko maps the average score of 0..100 to a risk index of 0..10
func IndeksRisiko(rataSkor float64) float64 {
	return Round(math.Min(rataSkor/10, 10), 1)
}

// LajuPerJam is the average number of reports per hour over a day
func LajuPerJam(kasus24Jam int) float64 {
	return Round(float64(kasus24Jam)/24, 1)
}

// FrekuensiGejala counts how many reports mention each symptom
func FrekuensiGejala(laporan []schema.Laporan) map[schema.Gejala]int {
	freq := map[schema.Gejala]int{}
	for _, l := range laporan {
		for _, g := range l.GejalaAktif() {
			freq[g]++
		}
	}
	return freq
}

// GejalaTerbanyak returns the n most frequent symptoms. Ties keep the
// canonical symptom order.
func GejalaTerbanyak(freq map[schema.Gejala]int, n int) []schema.Gejala {
	gejala := make([]schema.Gejala, 0, len(freq))
	for _, g := range schema.GejalaFields {
		if freq[g] > 0 {
			gejala = append(gejala, g)
		}
	}

	sort.SliceStable(gejala, func(i, j int) bool {
		return freq[gejala[i]] > freq[gejala[j]]
	})

	if len(gejala) > n {
		gejala = gejala[:n]
	}
	return gejala
}

// GejalaDominan returns the top n symptoms of the reports with their
// share of total in percent
func GejalaDominan(laporan []schema.Laporan, total, n int) []schema.GejalaDominan {
	freq := FrekuensiGejala(laporan)

	result := make([]schema.GejalaDominan, 0, n)
	for _, g := range GejalaTerbanyak(freq, n) {
		var persen float64
		if total > 0 {
			persen = Round(float64(freq[g])/float64(total)*100, 1)
		}
		result = append(result, schema.GejalaDominan{
			Gejala: g,
			Jumlah: freq[g],
			Persen: persen,
		})
	}
	return result
}

// HitungStatistik derives the dashboard metrics from raw counts
func HitungStatistik(raw schema.RawStatistik) schema.Statistik {
	var rataSkor float64
	if raw.RataSkor48Jam != nil {
		rataSkor = Round(*raw.RataSkor48Jam, 1)
	}

	peringatan := make([]schema.Peringatan, 0, jumlahPeringatan)
	for i, l := range raw.LaporanTerbaru {
		if i == jumlahPeringatan {
			break
		}

		gejala := l.GejalaAktif()
		if len(gejala) > gejalaPeringatan {
			gejala = gejala[:gejalaPeringatan]
		}

		peringatan = append(peringatan, schema.Peringatan{
			Wilayah:   l.Wilayah(),
			Gejala:    gejala,
			Keparahan: l.TingkatKeparahan,
			Timestamp: l.Timestamp,
		})
	}

	return schema.Statistik{
		Kasus24Jam:    raw.Kasus24Jam,
		Kasus48Jam:    raw.Kasus48Jam,
		Kasus7Hari:    raw.Kasus7Hari,
		KasusTotal:    raw.KasusTotal,
		KasusAktif:    raw.KasusAktif,
		KasusRingan:   raw.KasusRingan,
		TrendPersen:   TrendPersen(raw.Kasus24Jam, raw.Kasus24JamLalu),
		LajuPerJam:    LajuPerJam(raw.Kasus24Jam),
		RataSkor48Jam: rataSkor,
		IndeksRisiko:  IndeksRisiko(rataSkor),
		GejalaDominan: GejalaDominan(raw.Laporan48Jam, raw.Kasus48Jam, jumlahGejalaDominan),
		Peringatan:    peringatan,
	}
}
