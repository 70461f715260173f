package api

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/fluwatch/fluwatch-api/analisis"
	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/geo"
	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/score"
	"github.com/fluwatch/fluwatch-api/utils"
)

func defaultRadiusKm() float64 {
	if r := viper.GetFloat64("analisis.radius_km"); r > 0 {
		return r
	}
	return consts.DefaultRadiusKm
}

func defaultJamAnalisis() int {
	if j := viper.GetInt("analisis.jam"); j > 0 {
		return j
	}
	return consts.DefaultJam
}

// analisisPenyebaran answers a question about the influenza situation around a
// location. The answer is grounded on the reports within the radius.
func (s *Server) analisisPenyebaran(c *gin.Context) {
	data := jsonBody(c)
	if len(data) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidBody)
		return
	}

	pertanyaan, _ := data["pertanyaan"].(string)
	pertanyaan = strings.TrimSpace(pertanyaan)
	if pertanyaan == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorPertanyaanKosong)
		return
	}

	lat, okLat := toFloat(data["lat"])
	lng, okLng := toFloat(data["lng"])
	if !okLat || !okLng {
		abortWithEncoding(c, http.StatusBadRequest, errorAnalisisKoordinat)
		return
	}

	if !(lat >= -90 && lat <= 90) || !(lng >= -180 && lng <= 180) {
		abortWithEncoding(c, http.StatusBadRequest, errorAnalisisJangkauan)
		return
	}

	radiusKm := defaultRadiusKm()
	if v, ok := data["radius_km"]; ok {
		if r, ok := toFloat(v); ok && !math.IsNaN(r) {
			if r < consts.MinRadiusKm {
				r = consts.MinRadiusKm
			} else if r > consts.MaxRadiusKm {
				r = consts.MaxRadiusKm
			}
			radiusKm = r
		}
	}

	jam := defaultJamAnalisis()
	if v, ok := data["jam"]; ok {
		if j, ok := toInt(v); ok {
			jam = clampInt(j, 1, consts.MaxJamAnalisis)
		}
	}

	now := time.Now().UTC()
	kandidat, err := s.store.ListLaporanDalamKotak(
		geo.KotakBatas(lat, lng, radiusKm),
		now.Add(-time.Duration(jam)*time.Hour),
	)
	if shouldInterupt(err, c) {
		return
	}

	terdekat := geo.FilterRadius(kandidat, lat, lng, radiusKm)

	if s.ai == nil || !s.ai.Configured() {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorAIUnavailable)
		return
	}

	localizer := utils.NewLocalizer(utils.DefaultLang)
	konteks := analisis.FormatKonteks(terdekat, analisis.Area{
		Lat:      lat,
		Lng:      lng,
		RadiusKm: radiusKm,
		Jam:      jam,
	}, now, func(g schema.Gejala) string {
		return utils.LabelGejala(localizer, g)
	})

	jawaban, err := s.ai.Complete(c.Request.Context(), analisis.Pesan(konteks, pertanyaan))
	if err != nil {
		log.WithError(err).Error("openrouter completion")
		abortWithEncoding(c, http.StatusBadGateway, withDetail(errorAIService, err.Error()), err)
		return
	}

	tingkatRisiko := score.TingkatRisiko(len(terdekat))

	riwayat := schema.RiwayatAnalisis{
		UserID:        requesterID(c).String(),
		Pertanyaan:    pertanyaan,
		Jawaban:       jawaban,
		Location:      schema.NewGeoJSONPoint(schema.Location{Latitude: lat, Longitude: lng}),
		RadiusKm:      radiusKm,
		Jam:           jam,
		JumlahKasus:   len(terdekat),
		TingkatRisiko: tingkatRisiko,
		Timestamp:     now.Unix(),
	}
	if err := s.mongoStore.SimpanRiwayatAnalisis(&riwayat); err != nil {
		log.WithError(err).Error("save riwayat analisis")
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{
		"jawaban":          jawaban,
		"jumlah_kasus":     len(terdekat),
		"radius_km":        radiusKm,
		"jam":              jam,
		"tingkat_risiko":   tingkatRisiko,
		"laporan_terdekat": terdekat,
	})
}

// riwayatAnalisis lists the previous questions of the pengguna, newest first
func (s *Server) riwayatAnalisis(c *gin.Context) {
	before := time.Now().UTC().Unix()
	if v, ok := c.GetQuery("before"); ok {
		b, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || b < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		before = b
	}

	limit, err := queryInt(c, "limit", consts.DefaultRiwayatLimit)
	if err != nil || limit < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if limit == 0 {
		limit = consts.DefaultRiwayatLimit
	}
	if limit > consts.MaxRiwayatLimit {
		limit = consts.MaxRiwayatLimit
	}

	riwayat, err := s.mongoStore.GetRiwayatAnalisis(requesterID(c).String(), before, int64(limit))
	if shouldInterupt(err, c) {
		return
	}

	if riwayat == nil {
		riwayat = []schema.RiwayatAnalisis{}
	}

	c.JSON(http.StatusOK, gin.H{"riwayat": riwayat})
}
