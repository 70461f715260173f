package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/score"
	"github.com/fluwatch/fluwatch-api/utils"
)

const (
	pesanLaporanTerkirim = "Laporan berhasil dikirim. Terima kasih telah membantu pemantauan influenza."
	pesanCooldownFmt     = "Anda sudah melaporkan dalam 4 hari terakhir. Laporan berikutnya bisa dikirim dalam %d jam."

	maxNamaWilayah     = 255
	triggerWorkflowTTL = 10 * time.Second
)

type cooldownResponse struct {
	ErrorResponse
	WaktuBerikutnya time.Time `json:"waktu_berikutnya"`
	SisaJam         float64   `json:"sisa_jam"`
}

// kirimLaporan stores a symptom report of the signed-in pengguna. A
// pengguna may report once every four days.
func (s *Server) kirimLaporan(c *gin.Context) {
	p := c.MustGet("pengguna").(*schema.Pengguna)

	data := jsonBody(c)
	if len(data) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidBody)
		return
	}

	lat, okLat := toFloat(data["lat"])
	lng, okLng := toFloat(data["lng"])
	if !okLat || !okLng {
		abortWithEncoding(c, http.StatusBadRequest, errorLaporanKoordinat)
		return
	}

	if !(lat >= -90 && lat <= 90) || !(lng >= -180 && lng <= 180) {
		abortWithEncoding(c, http.StatusBadRequest, errorLaporanJangkauan)
		return
	}

	laporan := schema.Laporan{
		Lat:              lat,
		Lng:              lng,
		TingkatKeparahan: consts.DefaultKeparahan,
		KelompokUsia:     schema.UsiaDewasa,
	}

	for _, g := range schema.GejalaFields {
		if truthy(data[string(g)]) {
			laporan.SetGejala(g)
		}
	}
	if len(laporan.GejalaAktif()) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorTanpaGejala)
		return
	}

	if v, ok := data["tingkat_keparahan"]; ok {
		keparahan, ok := toInt(v)
		if !ok || keparahan < 1 || keparahan > 10 {
			abortWithEncoding(c, http.StatusBadRequest, errorKeparahan)
			return
		}
		laporan.TingkatKeparahan = keparahan
	}

	if durasi, ok := toInt(data["durasi_hari"]); ok && durasi >= 1 && durasi <= consts.MaxDurasiHari {
		laporan.DurasiHari = &durasi
	}

	if usia, ok := data["kelompok_usia"].(string); ok && schema.IsKelompokUsia(usia) {
		laporan.KelompokUsia = usia
	}

	if vaksin, ok := data["sudah_vaksin"].(bool); ok {
		laporan.SudahVaksin = &vaksin
	}

	if nama := strings.TrimSpace(toString(data["nama_wilayah"])); nama != "" {
		if r := []rune(nama); len(r) > maxNamaWilayah {
			nama = string(r[:maxNamaWilayah])
		}
		laporan.NamaWilayah = &nama
	}

	now := time.Now().UTC()
	terakhir, err := s.store.LaporanTerakhir(p.ID, now.Add(-consts.JedaLaporan))
	if shouldInterupt(err, c) {
		return
	}

	if terakhir != nil {
		berikutnya := terakhir.Timestamp.Add(consts.JedaLaporan).UTC()
		sisaJam := berikutnya.Sub(now).Hours()

		resp := errorCooldown
		resp.Pesan = fmt.Sprintf(pesanCooldownFmt, int(sisaJam)+1)
		abortWithEncoding(c, http.StatusTooManyRequests, cooldownResponse{
			ErrorResponse:   resp,
			WaktuBerikutnya: berikutnya,
			SisaJam:         score.Round(sisaJam, 1),
		})
		return
	}

	userID := p.ID
	laporan.UserID = &userID
	laporan.SkorInfluenza = score.SkorLaporan(laporan)
	laporan.IPHash = utils.HashIP(clientIP(c))
	laporan.Timestamp = now

	if err := s.store.CreateLaporan(&laporan); shouldInterupt(err, c) {
		return
	}

	if laporan.NamaWilayah == nil && s.cadenceClient != nil {
		go func(id uuid.UUID) {
			ctx, cancel := context.WithTimeout(context.Background(), triggerWorkflowTTL)
			defer cancel()

			if err := utils.TriggerWilayahResolution(s.cadenceClient, ctx, id); err != nil {
				log.WithError(err).WithField("laporan_id", id).Error("start wilayah workflow")
				sentry.CaptureException(err)
			}
		}(laporan.ID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"pesan":          pesanLaporanTerkirim,
		"laporan":        laporan.View(),
		"skor_influenza": laporan.SkorInfluenza,
	})
}

func (s *Server) ambilLaporan(c *gin.Context) {
	jam, err := queryInt(c, "jam", consts.DefaultJam)
	if err != nil || jam <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	limit, err := queryInt(c, "limit", consts.DefaultLimit)
	if err != nil || limit <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if jam > consts.MaxJamLaporan {
		jam = consts.MaxJamLaporan
	}
	if limit > consts.MaxLimitLaporan {
		limit = consts.MaxLimitLaporan
	}

	since := time.Now().UTC().Add(-time.Duration(jam) * time.Hour)
	laporan, err := s.store.ListLaporanSejak(since, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jumlah":  len(laporan),
		"laporan": schema.LaporanViews(laporan),
	})
}

func (s *Server) statistik(c *gin.Context) {
	raw, err := s.store.RawStatistik(time.Now().UTC())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, score.HitungStatistik(*raw))
}
