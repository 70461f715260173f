package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGejalaAktifFollowsCanonicalOrder(t *testing.T) {
	var l Laporan
	l.SetGejala(SesakNapas, Demam, Gejala("unknown"), Pilek)

	assert.Equal(t, []Gejala{Demam, Pilek, SesakNapas}, l.GejalaAktif())
	assert.True(t, l.Has(Demam))
	assert.False(t, l.Has(Batuk))
}

func TestGejalaAktifEmpty(t *testing.T) {
	var l Laporan

	b, err := json.Marshal(l.View())
	assert.NoError(t, err)

	var v map[string]interface{}
	assert.NoError(t, json.Unmarshal(b, &v))
	assert.Equal(t, []interface{}{}, v["gejala"])
	_, hasJarak := v["jarak_km"]
	assert.False(t, hasJarak, "jarak_km should only be present on radius queries")
}

func TestViewDenganJarak(t *testing.T) {
	l := Laporan{
		ID:        uuid.New(),
		Timestamp: time.Now(),
	}

	v := l.ViewDenganJarak(1.23456)
	if assert.NotNil(t, v.JarakKm) {
		assert.Equal(t, 1.23, *v.JarakKm)
	}

	v = l.ViewDenganJarak(0.125)
	assert.Equal(t, 0.12, *v.JarakKm)
}

func TestWilayah(t *testing.T) {
	var l Laporan
	assert.Equal(t, WilayahTidakDiketahui, l.Wilayah())

	empty := ""
	l.NamaWilayah = &empty
	assert.Equal(t, WilayahTidakDiketahui, l.Wilayah())

	nama := "Menteng"
	l.NamaWilayah = &nama
	assert.Equal(t, "Menteng", l.Wilayah())
}

func TestIsKelompokUsia(t *testing.T) {
	assert.True(t, IsKelompokUsia("lansia"))
	assert.False(t, IsKelompokUsia("bayi"))
}

func TestGeoJSONPoint(t *testing.T) {
	p := NewGeoJSONPoint(Location{Latitude: -6.2, Longitude: 106.8})
	assert.Equal(t, []float64{106.8, -6.2}, p.Coordinates)
	assert.Equal(t, Location{Latitude: -6.2, Longitude: 106.8}, p.Location())
	assert.Equal(t, Location{}, GeoJSON{}.Location())
}
