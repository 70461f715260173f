package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"

	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/mocks"
	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/store"
)

func adminRouter(s *Server, admin uuid.UUID) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("requester", admin)
	})
	router.GET("/pengguna", s.adminDaftarPengguna)
	router.PATCH("/pengguna/:id", s.adminUbahPengguna)
	router.DELETE("/pengguna/:id", s.adminHapusPengguna)
	router.GET("/laporan", s.adminDaftarLaporan)
	router.DELETE("/laporan/:id", s.adminHapusLaporan)
	return router
}

func TestAdminDaftarPengguna(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	st := mocks.NewMockFluWatchCore(ctl)
	s := Server{store: st}
	router := adminRouter(&s, uuid.New())

	st.EXPECT().ListPengguna("budi", 20, 10).Return([]schema.Pengguna{
		{ID: uuid.New(), Username: "budi", Email: "budi@example.com", Role: schema.RolePengguna, IsActive: true},
	}, 11, nil)

	w := performRequest(router, "GET", "/pengguna?cari=%20budi%20&halaman=3&per_halaman=10", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(w)
	assert.Equal(t, float64(11), body["total"])
	assert.Equal(t, float64(3), body["halaman"])
	assert.Equal(t, float64(10), body["per_halaman"])

	pengguna := body["pengguna"].([]interface{})
	assert.Len(t, pengguna, 1)
	assert.NotContains(t, pengguna[0], "password_hash")

	st.EXPECT().ListPengguna("", 0, 100).Return(nil, 0, nil)
	w = performRequest(router, "GET", "/pengguna?halaman=0&per_halaman=1000", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decodeBody(w)["pengguna"])

	// the page is capped so the offset cannot overflow
	st.EXPECT().ListPengguna("", (consts.MaxHalaman-1)*20, 20).Return(nil, 0, nil)
	w = performRequest(router, "GET", "/pengguna?halaman=9223372036854775807", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(consts.MaxHalaman), decodeBody(w)["halaman"])

	w = performRequest(router, "GET", "/pengguna?halaman=satu", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUbahPengguna(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	st := mocks.NewMockFluWatchCore(ctl)
	s := Server{store: st}
	admin := uuid.New()
	router := adminRouter(&s, admin)
	id := uuid.New()

	st.EXPECT().GetPengguna(id).Return(&schema.Pengguna{ID: id, Role: schema.RolePengguna, IsActive: true}, nil)
	st.EXPECT().UpdatePengguna(id, map[string]interface{}{
		"role":      schema.RoleAdmin,
		"is_active": false,
	}).Return(&schema.Pengguna{ID: id, Role: schema.RoleAdmin, IsActive: false}, nil)

	w := performRequest(router, "PATCH", "/pengguna/"+id.String(), gin.H{"role": "admin", "is_active": 0}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(w)
	assert.Equal(t, "Pengguna diperbarui", body["pesan"])
	pengguna := body["pengguna"].(map[string]interface{})
	assert.Equal(t, "admin", pengguna["role"])
	assert.Equal(t, false, pengguna["is_active"])
}

func TestAdminUbahPenggunaNoFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	st := mocks.NewMockFluWatchCore(ctl)
	s := Server{store: st}
	router := adminRouter(&s, uuid.New())
	id := uuid.New()

	st.EXPECT().GetPengguna(id).Return(&schema.Pengguna{ID: id, Role: schema.RolePengguna, IsActive: true}, nil)

	w := performRequest(router, "PATCH", "/pengguna/"+id.String(), gin.H{"username": "abaikan"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pengguna", decodeBody(w)["pengguna"].(map[string]interface{})["role"])
}

func TestAdminUbahPenggunaErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	st := mocks.NewMockFluWatchCore(ctl)
	s := Server{store: st}
	admin := uuid.New()
	router := adminRouter(&s, admin)

	w := performRequest(router, "PATCH", "/pengguna/"+admin.String(), gin.H{"is_active": false}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Admin tidak dapat mengubah status diri sendiri", decodeBody(w)["pesan"])

	w = performRequest(router, "PATCH", "/pengguna/bukan-uuid", gin.H{"is_active": false}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pengguna tidak ditemukan", decodeBody(w)["pesan"])

	hilang := uuid.New()
	st.EXPECT().GetPengguna(hilang).Return(nil, gorm.ErrRecordNotFound)
	w = performRequest(router, "PATCH", "/pengguna/"+hilang.String(), gin.H{"is_active": false}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	id := uuid.New()
	st.EXPECT().GetPengguna(id).Return(&schema.Pengguna{ID: id, Role: schema.RolePengguna}, nil)
	w = performRequest(router, "PATCH", "/pengguna/"+id.String(), gin.H{"role": "superadmin"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Role harus 'pengguna' atau 'admin'", decodeBody(w)["pesan"])
}

func TestAdminHapusPengguna(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	st := mocks.NewMockFluWatchCore(ctl)
	s := Server{store: st}
	admin := uuid.New()
	router := adminRouter(&s, admin)

	id := uuid.New()
	st.EXPECT().DeletePengguna(id).Return(nil)
	w := performRequest(router, "DELETE", "/pengguna/"+id.String(), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pengguna berhasil dihapus", decodeBody(w)["pesan"])

	hilang := uuid.New()
	st.EXPECT().DeletePengguna(hilang).Return(store.ErrPenggunaNotExist)
	w = performRequest(router, "DELETE", "/pengguna/"+hilang.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, "DELETE", "/pengguna/"+admin.String(), nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Admin tidak dapat menghapus akun diri sendiri", decodeBody(w)["pesan"])
}

func TestAdminDaftarLaporan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	st := mocks.NewMockFluWatchCore(ctl)
	s := Server{store: st}
	router := adminRouter(&s, uuid.New())
	userID := uuid.New()

	st.EXPECT().ListLaporanAdmin(gomock.Any()).DoAndReturn(func(filter store.LaporanFilter) ([]schema.Laporan, int, error) {
		assert.Equal(t, 50, filter.Offset)
		assert.Equal(t, 50, filter.Limit)
		assert.Equal(t, userID, *filter.UserID)
		assert.WithinDuration(t, time.Now().Add(-24*time.Hour), *filter.Since, time.Minute)

		l := schema.Laporan{ID: uuid.New(), UserID: &userID, Timestamp: time.Now()}
		l.SetGejala(schema.Batuk)
		return []schema.Laporan{l}, 51, nil
	})

	w := performRequest(router, "GET", "/laporan?halaman=2&per_halaman=50&jam=24&user_id="+userID.String(), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(w)
	assert.Equal(t, float64(51), body["total"])
	laporan := body["laporan"].([]interface{})
	assert.Len(t, laporan, 1)
	assert.Equal(t, []interface{}{"batuk"}, laporan[0].(map[string]interface{})["gejala"])

	w = performRequest(router, "GET", "/laporan?user_id=123", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHapusLaporan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	st := mocks.NewMockFluWatchCore(ctl)
	s := Server{store: st}
	router := adminRouter(&s, uuid.New())

	id := uuid.New()
	st.EXPECT().DeleteLaporan(id).Return(nil)
	w := performRequest(router, "DELETE", "/laporan/"+id.String(), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Laporan berhasil dihapus", decodeBody(w)["pesan"])

	hilang := uuid.New()
	st.EXPECT().DeleteLaporan(hilang).Return(store.ErrLaporanNotExist)
	w = performRequest(router, "DELETE", "/laporan/"+hilang.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Laporan tidak ditemukan", decodeBody(w)["pesan"])

	w = performRequest(router, "DELETE", "/laporan/42", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
