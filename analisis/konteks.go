package analisis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fluwatch/fluwatch-api/external/openrouter"
	"github.com/fluwatch/fluwatch-api/schema"
)

const (
	jumlahGejalaTeratas = 5
	jumlahDetailKasus   = 8

	instruksiJawaban = "Analisis data surveilans lokal di atas dan berikan jawaban " +
		"yang spesifik dan berbasis data."
)

// Labeler gives the display name of a symptom
type Labeler func(schema.Gejala) string

// Area is the circle the question is asked about
type Area struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
	Jam      int
}

type frekuensi struct {
	gejala schema.Gejala
	jumlah int
}

// FormatKonteks turns the nearby reports into the data block the model
// is grounded on. The reports are expected nearest first.
func FormatKonteks(laporan []schema.LaporanView, area Area, now time.Time, label Labeler) string {
	if len(laporan) == 0 {
		return fmt.Sprintf(
			"HASIL DATABASE: Tidak ada laporan influenza dalam radius %s km dari koordinat (%.4f, %.4f) dalam %d jam terakhir.",
			formatAngka(area.RadiusKm), area.Lat, area.Lng, area.Jam,
		)
	}

	total := len(laporan)
	kasus12Jam, kasus24Jam := 0, 0
	totalKeparahan, totalSkor := 0, 0
	for _, l := range laporan {
		umur := now.Sub(l.Timestamp).Hours()
		if umur <= 12 {
			kasus12Jam++
		}
		if umur <= 24 {
			kasus24Jam++
		}
		totalKeparahan += l.TingkatKeparahan
		totalSkor += l.SkorInfluenza
	}

	baris := []string{
		"═══ DATA SURVEILANS FLUWATCH ═══",
		fmt.Sprintf("Lokasi query  : (%.4f, %.4f)", area.Lat, area.Lng),
		fmt.Sprintf("Radius        : %s km", formatAngka(area.RadiusKm)),
		fmt.Sprintf("Jendela waktu : %d jam terakhir", area.Jam),
		"",
		"─── RINGKASAN KASUS ───",
		fmt.Sprintf("Total kasus          : %d", total),
		fmt.Sprintf("12 jam terakhir      : %d kasus baru", kasus12Jam),
		fmt.Sprintf("24 jam terakhir      : %d kasus", kasus24Jam),
		fmt.Sprintf("Rata-rata keparahan  : %.1f / 10", float64(totalKeparahan)/float64(total)),
		fmt.Sprintf("Rata-rata skor risiko: %.0f / 100", float64(totalSkor)/float64(total)),
		"",
		"─── GEJALA PALING BANYAK DILAPORKAN ───",
	}

	for _, f := range gejalaTeratas(laporan, jumlahGejalaTeratas) {
		baris = append(baris, fmt.Sprintf("  • %s: %d laporan", label(f.gejala), f.jumlah))
	}

	baris = append(baris, "", "─── DETAIL KASUS (terdekat duluan) ───")
	for i, l := range laporan {
		if i == jumlahDetailKasus {
			break
		}

		labels := make([]string, 0, len(l.Gejala))
		for _, g := range l.Gejala {
			labels = append(labels, label(g))
		}
		gejala := strings.Join(labels, ", ")
		if gejala == "" {
			gejala = "tidak ada data"
		}

		jarak := "?"
		if l.JarakKm != nil {
			jarak = formatAngka(*l.JarakKm)
		}

		baris = append(baris, fmt.Sprintf("  %d. Jarak: %s km | Keparahan: %d/10 | Gejala: %s | Usia: %s",
			i+1, jarak, l.TingkatKeparahan, gejala, l.KelompokUsia))
	}

	if total > jumlahDetailKasus {
		baris = append(baris, fmt.Sprintf("  ... dan %d kasus lainnya.", total-jumlahDetailKasus))
	}

	return strings.Join(baris, "\n")
}

// Pesan builds the chat messages sent to the model
func Pesan(konteks, pertanyaan string) []openrouter.Message {
	return []openrouter.Message{
		{Role: "system", Content: SystemPrompt},
		{
			Role:    "user",
			Content: fmt.Sprintf("%s\n\nPERTANYAAN PENGGUNA: %s\n\n%s", konteks, pertanyaan, instruksiJawaban),
		},
	}
}

// gejalaTeratas counts the symptoms and keeps the n most frequent. Ties
// keep the order in which the symptoms were first seen.
func gejalaTeratas(laporan []schema.LaporanView, n int) []frekuensi {
	index := map[schema.Gejala]int{}
	freq := make([]frekuensi, 0)
	for _, l := range laporan {
		for _, g := range l.Gejala {
			i, ok := index[g]
			if !ok {
				i = len(freq)
				index[g] = i
				freq = append(freq, frekuensi{gejala: g})
			}
			freq[i].jumlah++
		}
	}

	sort.SliceStable(freq, func(i, j int) bool {
		return freq[i].jumlah > freq[j].jumlah
	})

	if len(freq) > n {
		freq = freq[:n]
	}
	return freq
}

// formatAngka prints a float the shortest way, keeping a decimal point for
// whole numbers
func formatAngka(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
