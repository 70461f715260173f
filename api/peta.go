package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/score"
)

// peta is the heatmap feed: weighted points plus one marker per report
func (s *Server) peta(c *gin.Context) {
	jam, err := queryInt(c, "jam", consts.DefaultJam)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorJamBukanBulat, err)
		return
	}
	jam = clampInt(jam, 1, consts.MaxJamLaporan)

	now := time.Now().UTC()
	laporan, err := s.store.ListLaporanSejak(now.Add(-time.Duration(jam)*time.Hour), consts.MaxLaporanPeta)
	if shouldInterupt(err, c) {
		return
	}

	batasBaru := now.Add(-consts.BatasMarkerBaru)
	titik := make([]schema.TitikPeta, 0, len(laporan))
	markers := make([]schema.MarkerPeta, 0, len(laporan))
	for _, l := range laporan {
		titik = append(titik, schema.TitikPeta{
			Lat:   l.Lat,
			Lng:   l.Lng,
			Bobot: score.Bobot(l.SkorInfluenza),
		})

		markers = append(markers, schema.MarkerPeta{
			Lat:       l.Lat,
			Lng:       l.Lng,
			Keparahan: l.TingkatKeparahan,
			Skor:      l.SkorInfluenza,
			Gejala:    l.GejalaAktif(),
			Wilayah:   l.Wilayah(),
			Usia:      l.KelompokUsia,
			Timestamp: l.Timestamp,
			Baru:      !l.Timestamp.Before(batasBaru),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"jumlah":  len(titik),
		"jam":     jam,
		"titik":   titik,
		"markers": markers,
	})
}
