package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/fluwatch/fluwatch-api/background"
	"github.com/fluwatch/fluwatch-api/external/cadence"
	"github.com/fluwatch/fluwatch-api/external/googleauth"
	"github.com/fluwatch/fluwatch-api/external/openrouter"
	"github.com/fluwatch/fluwatch-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.FluWatchCore
	mongoStore store.MongoStore

	// JWT signing secret
	jwtSecret []byte

	// External services
	ai             openrouter.OpenRouter
	googleVerifier googleauth.Verifier

	// job pool enqueuer
	background background.TaskSender

	// cadence client
	cadenceClient cadence.WorkflowStarter

	// per ip request limits
	limiter *rateLimiter
}

// NewServer new instance of server
func NewServer(
	fluwatchStore store.FluWatchCore,
	mongoStore store.MongoStore,
	jwtSecret string,
	ai openrouter.OpenRouter,
	googleVerifier googleauth.Verifier,
	backgroundEnqueuer background.TaskSender,
	cadenceClient cadence.WorkflowStarter) *Server {
	return &Server{
		store:          fluwatchStore,
		mongoStore:     mongoStore,
		jwtSecret:      []byte(jwtSecret),
		ai:             ai,
		googleVerifier: googleVerifier,
		background:     backgroundEnqueuer,
		cadenceClient:  cadenceClient,
		limiter:        newRateLimiter(),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(s.recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(securityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(viper.GetString("frontend.url")),
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "DELETE", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		abortWithEncoding(c, http.StatusNotFound, errorNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		abortWithEncoding(c, http.StatusMethodNotAllowed, errorMethodNotAllowed)
	})

	defaultLimit := s.rateLimit("default", "300/hour", "60/minute")

	apiRoute := r.Group("/api")
	apiRoute.Use(requestLogger("API"))
	apiRoute.GET("/health", defaultLimit, s.healthz)
	apiRoute.GET("/gejala", defaultLimit, s.daftarGejala)
	apiRoute.GET("/peta", s.rateLimit("peta", "60/minute"), s.peta)

	laporanRoute := apiRoute.Group("/laporan")
	{
		laporanRoute.POST("",
			s.rateLimit("laporan-kirim", "10/minute", "50/hour"),
			s.authMiddleware(),
			s.activePenggunaMiddleware(),
			s.kirimLaporan)
		laporanRoute.GET("", s.rateLimit("laporan", "60/minute"), s.ambilLaporan)
		laporanRoute.GET("/statistik", s.rateLimit("statistik", "60/minute"), s.statistik)
	}

	analisisRoute := apiRoute.Group("/analisis")
	analisisRoute.Use(s.authMiddleware())
	{
		analisisRoute.POST("", s.rateLimit("analisis", "5/minute", "20/hour"), s.analisisPenyebaran)
		analisisRoute.GET("/riwayat", defaultLimit, s.riwayatAnalisis)
	}

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/daftar", s.rateLimit("daftar", "5/hour"), s.daftar)
		authRoute.POST("/masuk", s.rateLimit("masuk", "10/minute", "30/hour"), s.masuk)
		authRoute.GET("/saya", defaultLimit, s.authMiddleware(), s.saya)
		authRoute.POST("/google", s.rateLimit("google", "20/minute"), s.googleMasuk)
		authRoute.POST("/lupa-password", s.rateLimit("lupa-password", "3/hour"), s.lupaPassword)
		authRoute.POST("/reset-password", s.rateLimit("reset-password", "5/hour"), s.resetPassword)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(defaultLimit, s.authMiddleware(), s.adminMiddleware())
	{
		adminRoute.GET("/pengguna", s.adminDaftarPengguna)
		adminRoute.PATCH("/pengguna/:id", s.adminUbahPengguna)
		adminRoute.DELETE("/pengguna/:id", s.adminHapusPengguna)
		adminRoute.GET("/laporan", s.adminDaftarLaporan)
		adminRoute.DELETE("/laporan/:id", s.adminHapusLaporan)
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"layanan": "FluWatch API",
	})
}

func allowedOrigins(frontendURL string) []string {
	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	for _, o := range origins {
		if o == frontendURL {
			return origins
		}
	}
	if frontendURL != "" {
		origins = append([]string{frontendURL}, origins...)
	}
	return origins
}

func responseWithEncoding(c *gin.Context, code int, obj interface{}) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj interface{}, errors ...error) {
	for _, err := range errors {
		if err != nil {
			c.Error(err)
		}
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
