package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/mocks"
	"github.com/fluwatch/fluwatch-api/schema"
)

func TestPeta(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	st := mocks.NewMockFluWatchCore(ctl)
	s := Server{store: st}
	router := gin.New()
	router.GET("/", s.peta)

	wilayah := "Menteng"
	baru := schema.Laporan{Lat: -6.18, Lng: 106.83, NamaWilayah: &wilayah, SkorInfluenza: 73, TingkatKeparahan: 8, KelompokUsia: schema.UsiaAnak, Timestamp: time.Now().Add(-time.Hour)}
	baru.SetGejala(schema.Demam, schema.Menggigil)
	lama := schema.Laporan{Lat: -6.2, Lng: 106.8, SkorInfluenza: 5, TingkatKeparahan: 2, KelompokUsia: schema.UsiaDewasa, Timestamp: time.Now().Add(-3 * time.Hour)}
	lama.SetGejala(schema.Pilek)

	st.EXPECT().ListLaporanSejak(gomock.Any(), consts.MaxLaporanPeta).DoAndReturn(func(since time.Time, limit int) ([]schema.Laporan, error) {
		assert.WithinDuration(t, time.Now().Add(-time.Hour), since, time.Minute)
		return []schema.Laporan{baru, lama}, nil
	})

	w := performRequest(router, "GET", "/?jam=0", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Jumlah  int                 `json:"jumlah"`
		Jam     int                 `json:"jam"`
		Titik   []schema.TitikPeta  `json:"titik"`
		Markers []schema.MarkerPeta `json:"markers"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Jumlah)
	assert.Equal(t, 1, body.Jam)
	assert.Equal(t, 0.73, body.Titik[0].Bobot)
	assert.Equal(t, 0.05, body.Titik[1].Bobot)

	assert.True(t, body.Markers[0].Baru)
	assert.Equal(t, "Menteng", body.Markers[0].Wilayah)
	assert.Equal(t, []schema.Gejala{schema.Demam, schema.Menggigil}, body.Markers[0].Gejala)
	assert.Equal(t, schema.UsiaAnak, body.Markers[0].Usia)

	assert.False(t, body.Markers[1].Baru)
	assert.Equal(t, schema.WilayahTidakDiketahui, body.Markers[1].Wilayah)
}

func TestPetaInvalidJam(t *testing.T) {
	s := Server{}
	router := gin.New()
	router.GET("/", s.peta)

	w := performRequest(router, "GET", "/?jam=dua", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "jam harus berupa angka bulat", decodeBody(w)["pesan"])
}

func TestDaftarGejala(t *testing.T) {
	s := Server{}
	router := gin.New()
	router.GET("/", s.daftarGejala)

	w := performRequest(router, "GET", "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var daftar []schema.GejalaInfo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &daftar))
	assert.Len(t, daftar, len(schema.GejalaFields))
	assert.Equal(t, schema.GejalaInfo{ID: schema.Demam, Label: "Demam", Bobot: 25}, daftar[0])
	assert.Equal(t, schema.SesakNapas, daftar[9].ID)

	w = performRequest(router, "GET", "/?lang=en", nil, "")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &daftar))
	assert.Equal(t, "Fever", daftar[0].Label)
}
