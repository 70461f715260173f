package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/score"
	"github.com/fluwatch/fluwatch-api/store"
)

type template struct {
	gejala    []schema.Gejala
	keparahan int
	usia      string
	vaksin    bool
}

var templates = []template{
	{[]schema.Gejala{schema.Demam, schema.Batuk, schema.NyeriOtot, schema.Kelelahan}, 8, schema.UsiaDewasa, false},
	{[]schema.Gejala{schema.Demam, schema.Menggigil, schema.SakitKepala, schema.NyeriOtot}, 9, schema.UsiaLansia, false},
	{[]schema.Gejala{schema.Batuk, schema.SakitTenggorokan, schema.Pilek}, 4, schema.UsiaRemaja, true},
	{[]schema.Gejala{schema.Demam, schema.NyeriOtot, schema.Kelelahan, schema.Menggigil}, 9, schema.UsiaDewasa, false},
	{[]schema.Gejala{schema.Kelelahan, schema.SakitKepala, schema.Pilek}, 3, schema.UsiaAnak, true},
	{[]schema.Gejala{schema.Demam, schema.Batuk, schema.SesakNapas}, 8, schema.UsiaLansia, false},
	{[]schema.Gejala{schema.Pilek, schema.Batuk, schema.MualMuntah}, 4, schema.UsiaAnak, true},
	{[]schema.Gejala{schema.Demam, schema.SakitTenggorokan, schema.NyeriOtot}, 6, schema.UsiaDewasa, true},
	{[]schema.Gejala{schema.Demam, schema.Menggigil, schema.Kelelahan, schema.NyeriOtot}, 9, schema.UsiaLansia, false},
	{[]schema.Gejala{schema.Batuk, schema.SakitKepala, schema.Pilek}, 5, schema.UsiaRemaja, true},
	{[]schema.Gejala{schema.Demam, schema.SesakNapas, schema.NyeriOtot, schema.MualMuntah}, 10, schema.UsiaLansia, false},
	{[]schema.Gejala{schema.Batuk, schema.Pilek, schema.Kelelahan}, 3, schema.UsiaAnak, true},
	{[]schema.Gejala{schema.Demam, schema.SakitKepala, schema.Menggigil, schema.SesakNapas}, 9, schema.UsiaDewasa, false},
	{[]schema.Gejala{schema.SakitTenggorokan, schema.Pilek, schema.Batuk, schema.Kelelahan}, 5, schema.UsiaRemaja, true},
	{[]schema.Gejala{schema.Demam, schema.NyeriOtot, schema.SakitKepala}, 7, schema.UsiaDewasa, true},
	{[]schema.Gejala{schema.Menggigil, schema.Kelelahan, schema.MualMuntah}, 6, schema.UsiaLansia, false},
	{[]schema.Gejala{schema.Demam, schema.Batuk, schema.SakitTenggorokan, schema.Pilek}, 6, schema.UsiaAnak, true},
	{[]schema.Gejala{schema.SesakNapas, schema.Demam, schema.Menggigil, schema.NyeriOtot}, 10, schema.UsiaLansia, false},
	{[]schema.Gejala{schema.Pilek, schema.SakitKepala, schema.Kelelahan}, 4, schema.UsiaRemaja, true},
	{[]schema.Gejala{schema.Demam, schema.MualMuntah, schema.Kelelahan, schema.Batuk}, 7, schema.UsiaDewasa, false},
}

// klusterAktif are the neighbourhoods with reports from the last hours
var klusterAktif = []string{
	"Kebayoran Baru", "Menteng", "Depok Timur", "Bekasi Utara", "Bandung Tengah",
	"Surabaya Pusat", "Pancoran", "Yogyakarta Kota", "Tebet", "Pulo Gadung",
}

type seeder struct {
	rnd *rand.Rand
	now time.Time
}

func (s seeder) uniform(min, max float64) float64 {
	return min + s.rnd.Float64()*(max-min)
}

func (s seeder) kluster() schema.Kluster {
	return schema.DaftarKluster[s.rnd.Intn(len(schema.DaftarKluster))]
}

func (s seeder) template(minKeparahan int) template {
	pilihan := make([]template, 0, len(templates))
	for _, t := range templates {
		if t.keparahan >= minKeparahan {
			pilihan = append(pilihan, t)
		}
	}
	return pilihan[s.rnd.Intn(len(pilihan))]
}

// laporan builds a report around the kluster, jittered by up to 0.01
// degree and up to 3 hours
func (s seeder) laporan(k schema.Kluster, t template, jamLalu float64) schema.Laporan {
	nama := k.Nama
	vaksin := t.vaksin
	jam := jamLalu + s.uniform(0, 3)

	l := schema.Laporan{
		Lat:              k.Lat + s.uniform(-0.01, 0.01),
		Lng:              k.Lng + s.uniform(-0.01, 0.01),
		NamaWilayah:      &nama,
		TingkatKeparahan: t.keparahan,
		KelompokUsia:     t.usia,
		SudahVaksin:      &vaksin,
		Timestamp:        s.now.Add(-time.Duration(jam * float64(time.Hour))),
	}
	l.SetGejala(t.gejala...)
	l.SkorInfluenza = score.SkorLaporan(l)
	return l
}

func (s seeder) semua() []schema.Laporan {
	laporan := make([]schema.Laporan, 0, 180)

	// spread over 30 days
	for i := 0; i < 100; i++ {
		laporan = append(laporan, s.laporan(s.kluster(), s.template(0), s.uniform(0.5, 720)))
	}

	// weekly activity
	for i := 0; i < 40; i++ {
		laporan = append(laporan, s.laporan(s.kluster(), s.template(0), s.uniform(0.5, 167)))
	}

	for _, nama := range klusterAktif {
		for _, k := range schema.DaftarKluster {
			if k.Nama != nama {
				continue
			}
			for i := 0; i < 2; i++ {
				laporan = append(laporan, s.laporan(k, s.template(0), s.uniform(0.1, 5.9)))
			}
		}
	}

	// severe cases of the last 14 days
	for i := 0; i < 20; i++ {
		laporan = append(laporan, s.laporan(s.kluster(), s.template(8), s.uniform(1, 336)))
	}

	return laporan
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file. Read config from env.")
	}
	viper.AutomaticEnv()
	viper.SetEnvPrefix("fluwatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	s := seeder{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now().UTC(),
	}
	laporan := s.semua()

	tx := db.Begin()
	fluwatchStore := store.NewFluWatchStore(tx)
	for i := range laporan {
		if err := fluwatchStore.CreateLaporan(&laporan[i]); err != nil {
			tx.Rollback()
			panic(err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		panic(err)
	}

	fmt.Printf("%d laporan added\n", len(laporan))
}
