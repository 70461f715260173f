package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/store"
)

const (
	pesanPenggunaDiperbarui = "Pengguna diperbarui"
	pesanPenggunaDihapus    = "Pengguna berhasil dihapus"
	pesanLaporanDihapus     = "Laporan berhasil dihapus"
)

// halaman reads the page parameters shared by the admin listings
func halaman(c *gin.Context) (int, int, bool) {
	hal, err := queryInt(c, "halaman", 1)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, 0, false
	}

	perHal, err := queryInt(c, "per_halaman", consts.DefaultPerHalaman)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, 0, false
	}

	return clampInt(hal, 1, consts.MaxHalaman), clampInt(perHal, 1, consts.MaxPerHalaman), true
}

// idParam reads the uuid in the path. A malformed id is reported as not found.
func idParam(c *gin.Context, notFound ErrorResponse) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, notFound, err)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) adminDaftarPengguna(c *gin.Context) {
	hal, perHal, ok := halaman(c)
	if !ok {
		return
	}

	pengguna, total, err := s.store.ListPengguna(strings.TrimSpace(c.Query("cari")), (hal-1)*perHal, perHal)
	if shouldInterupt(err, c) {
		return
	}

	if pengguna == nil {
		pengguna = []schema.Pengguna{}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       total,
		"halaman":     hal,
		"per_halaman": perHal,
		"pengguna":    pengguna,
	})
}

// adminUbahPengguna changes the role or the active flag of another account
func (s *Server) adminUbahPengguna(c *gin.Context) {
	id, ok := idParam(c, errorPenggunaNotFound)
	if !ok {
		return
	}

	if id == requesterID(c) {
		abortWithEncoding(c, http.StatusBadRequest, errorUbahDiriSendiri)
		return
	}

	p, err := s.store.GetPengguna(id)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorPenggunaNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	data := jsonBody(c)
	fields := map[string]interface{}{}

	if v, ok := data["role"]; ok {
		role, _ := v.(string)
		if role != schema.RolePengguna && role != schema.RoleAdmin {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRole)
			return
		}
		fields["role"] = role
	}

	if v, ok := data["is_active"]; ok {
		fields["is_active"] = truthy(v)
	}

	if len(fields) > 0 {
		p, err = s.store.UpdatePengguna(id, fields)
		if err != nil {
			if err == store.ErrPenggunaNotExist {
				abortWithEncoding(c, http.StatusNotFound, errorPenggunaNotFound, err)
				return
			}
			shouldInterupt(err, c)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"pesan":    pesanPenggunaDiperbarui,
		"pengguna": p,
	})
}

func (s *Server) adminHapusPengguna(c *gin.Context) {
	id, ok := idParam(c, errorPenggunaNotFound)
	if !ok {
		return
	}

	if id == requesterID(c) {
		abortWithEncoding(c, http.StatusBadRequest, errorHapusDiriSendiri)
		return
	}

	if err := s.store.DeletePengguna(id); err != nil {
		if err == store.ErrPenggunaNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorPenggunaNotFound, err)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pesan": pesanPenggunaDihapus})
}

func (s *Server) adminDaftarLaporan(c *gin.Context) {
	hal, perHal, ok := halaman(c)
	if !ok {
		return
	}

	filter := store.LaporanFilter{
		Offset: (hal - 1) * perHal,
		Limit:  perHal,
	}

	if v := c.Query("jam"); v != "" {
		jam, err := queryInt(c, "jam", 0)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		since := time.Now().UTC().Add(-time.Duration(jam) * time.Hour)
		filter.Since = &since
	}

	if v := c.Query("user_id"); v != "" {
		userID, err := uuid.Parse(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		filter.UserID = &userID
	}

	laporan, total, err := s.store.ListLaporanAdmin(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       total,
		"halaman":     hal,
		"per_halaman": perHal,
		"laporan":     schema.LaporanViews(laporan),
	})
}

func (s *Server) adminHapusLaporan(c *gin.Context) {
	id, ok := idParam(c, errorLaporanNotFound)
	if !ok {
		return
	}

	if err := s.store.DeleteLaporan(id); err != nil {
		if err == store.ErrLaporanNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorLaporanNotFound, err)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pesan": pesanLaporanDihapus})
}
