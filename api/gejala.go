package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fluwatch/fluwatch-api/score"
	"github.com/fluwatch/fluwatch-api/utils"
)

// daftarGejala lists the symptoms with the weights used by the score, so
// clients can preview the score before submitting
func (s *Server) daftarGejala(c *gin.Context) {
	localizer := utils.NewLocalizer(c.DefaultQuery("lang", utils.DefaultLang))
	c.JSON(http.StatusOK, utils.DaftarGejala(localizer, score.BobotGejala))
}
