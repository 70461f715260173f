package api

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/fluwatch/fluwatch-api/background"
	"github.com/fluwatch/fluwatch-api/consts"
	"github.com/fluwatch/fluwatch-api/schema"
	"github.com/fluwatch/fluwatch-api/store"
	"github.com/fluwatch/fluwatch-api/utils"
)

const (
	pesanLupaPassword  = "Jika email terdaftar, link reset password telah dikirim ke inbox kamu"
	pesanResetPassword = "Password berhasil diubah. Silakan masuk dengan password baru"

	defaultFrontendURL = "http://localhost:5173"
	usernameBawaan     = "pengguna"
	maxUsernameGoogle  = 40
)

var (
	reUsername     = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)
	reEmail        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	reNonUsername  = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	bcryptHashCost = bcrypt.DefaultCost
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Server) responseWithToken(c *gin.Context, code int, p *schema.Pengguna) {
	token, err := s.issueToken(p)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(code, gin.H{
		"token":    token,
		"pengguna": p,
	})
}

func (s *Server) daftar(c *gin.Context) {
	data := jsonBody(c)

	username := strings.TrimSpace(toString(data["username"]))
	email := strings.ToLower(strings.TrimSpace(toString(data["email"])))
	password := toString(data["password"])

	if !reUsername.MatchString(username) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidUsername)
		return
	}

	if !reEmail.MatchString(email) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidEmail)
		return
	}

	if utf8.RuneCountInString(password) < consts.MinPasswordLength {
		abortWithEncoding(c, http.StatusBadRequest, errorPasswordTooShort)
		return
	}

	_, err := s.store.GetPenggunaByEmail(email)
	if err == nil {
		abortWithEncoding(c, http.StatusConflict, errorPenggunaTaken)
		return
	} else if !gorm.IsRecordNotFoundError(err) && shouldInterupt(err, c) {
		return
	}

	taken, err := s.store.UsernameTaken(username)
	if shouldInterupt(err, c) {
		return
	}
	if taken {
		abortWithEncoding(c, http.StatusConflict, errorPenggunaTaken)
		return
	}

	hash, err := hashPassword(password)
	if shouldInterupt(err, c) {
		return
	}

	p := &schema.Pengguna{
		Username:     username,
		Email:        email,
		PasswordHash: &hash,
		Role:         schema.RolePengguna,
		IsActive:     true,
	}
	if err := s.store.CreatePengguna(p); err != nil {
		if err == store.ErrPenggunaTaken {
			abortWithEncoding(c, http.StatusConflict, errorPenggunaTaken, err)
			return
		}
		shouldInterupt(err, c)
		return
	}

	s.responseWithToken(c, http.StatusCreated, p)
}

func (s *Server) masuk(c *gin.Context) {
	data := jsonBody(c)

	email := strings.ToLower(strings.TrimSpace(toString(data["email"])))
	password := toString(data["password"])

	p, err := s.store.GetPenggunaByEmail(email)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusUnauthorized, errorWrongCredential)
			return
		}
		shouldInterupt(err, c)
		return
	}

	if !p.HasPassword() ||
		bcrypt.CompareHashAndPassword([]byte(*p.PasswordHash), []byte(password)) != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorWrongCredential)
		return
	}

	if !p.IsActive {
		abortWithEncoding(c, http.StatusForbidden, errorPenggunaInactive)
		return
	}

	s.responseWithToken(c, http.StatusOK, p)
}

func (s *Server) saya(c *gin.Context) {
	p, err := s.currentPengguna(c)
	if shouldInterupt(err, c) {
		return
	}

	if p == nil {
		abortWithEncoding(c, http.StatusNotFound, errorPenggunaNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pengguna": p})
}

// googleMasuk signs in with a Google ID token. Unknown identities get a
// new account, and an existing account with the same email is linked.
func (s *Server) googleMasuk(c *gin.Context) {
	if s.googleVerifier == nil || !s.googleVerifier.Configured() {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorGoogleUnavailable)
		return
	}

	data := jsonBody(c)
	credential := toString(data["credential"])
	if credential == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorGoogleNoToken)
		return
	}

	profile, err := s.googleVerifier.Verify(c.Request.Context(), credential)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorGoogleInvalid, err)
		return
	}

	p, err := s.store.GetPenggunaByGoogleID(profile.GoogleID)
	if gorm.IsRecordNotFoundError(err) {
		p, err = s.store.GetPenggunaByEmail(profile.Email)
	}

	switch {
	case err == nil:
		if p.GoogleID == nil {
			if err := s.store.LinkGoogleID(p.ID, profile.GoogleID); shouldInterupt(err, c) {
				return
			}
			googleID := profile.GoogleID
			p.GoogleID = &googleID
		}

		if !p.IsActive {
			abortWithEncoding(c, http.StatusForbidden, errorPenggunaInactive)
			return
		}

	case gorm.IsRecordNotFoundError(err):
		username, err := s.usernameBaru(profile.Nama)
		if shouldInterupt(err, c) {
			return
		}

		googleID := profile.GoogleID
		p = &schema.Pengguna{
			Username: username,
			Email:    profile.Email,
			GoogleID: &googleID,
			Role:     schema.RolePengguna,
			IsActive: true,
		}
		if err := s.store.CreatePengguna(p); err != nil {
			if err == store.ErrPenggunaTaken {
				abortWithEncoding(c, http.StatusConflict, errorPenggunaTaken, err)
				return
			}
			shouldInterupt(err, c)
			return
		}

	default:
		shouldInterupt(err, c)
		return
	}

	s.responseWithToken(c, http.StatusOK, p)
}

// usernameBaru derives a free username from a display name
func (s *Server) usernameBaru(nama string) (string, error) {
	base := reNonUsername.ReplaceAllString(nama, "_")
	if len(base) > maxUsernameGoogle {
		base = base[:maxUsernameGoogle]
	}
	if base == "" {
		base = usernameBawaan
	}

	username := base
	for counter := 1; ; counter++ {
		taken, err := s.store.UsernameTaken(username)
		if err != nil {
			return "", err
		}
		if !taken {
			return username, nil
		}
		username = base + "_" + strconv.Itoa(counter)
	}
}

// lupaPassword always answers the same way so it does not reveal which
// emails are registered
func (s *Server) lupaPassword(c *gin.Context) {
	data := jsonBody(c)
	email := strings.ToLower(strings.TrimSpace(toString(data["email"])))

	if !reEmail.MatchString(email) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidEmail)
		return
	}

	p, err := s.store.GetPenggunaByEmail(email)
	if err != nil && !gorm.IsRecordNotFoundError(err) {
		shouldInterupt(err, c)
		return
	}

	if err == nil && p.IsActive && p.HasPassword() {
		token, err := utils.RandomToken(consts.ResetTokenBytes)
		if shouldInterupt(err, c) {
			return
		}

		if err := s.store.SetResetToken(p.ID, token, time.Now().UTC().Add(consts.ResetTokenTTL)); shouldInterupt(err, c) {
			return
		}

		frontendURL := viper.GetString("frontend.url")
		if frontendURL == "" {
			frontendURL = defaultFrontendURL
		}
		link := strings.TrimRight(frontendURL, "/") + "/reset-password?token=" + token

		if _, err := s.background.SendTask(background.KirimEmailResetSignature(p.Email, p.Username, link)); err != nil {
			log.WithError(err).WithField("email", p.Email).Error("enqueue reset email")
			c.Error(err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"pesan": pesanLupaPassword})
}

func (s *Server) resetPassword(c *gin.Context) {
	data := jsonBody(c)
	token := strings.TrimSpace(toString(data["token"]))
	passwordBaru := toString(data["password_baru"])

	if token == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorResetTokenEmpty)
		return
	}

	if utf8.RuneCountInString(passwordBaru) < consts.MinPasswordLength {
		abortWithEncoding(c, http.StatusBadRequest, errorPasswordTooShort)
		return
	}

	p, err := s.store.GetPenggunaByResetToken(token)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusBadRequest, errorResetTokenUnknown)
			return
		}
		shouldInterupt(err, c)
		return
	}

	if p.ResetTokenExpires == nil || p.ResetTokenExpires.Before(time.Now()) {
		abortWithEncoding(c, http.StatusBadRequest, errorResetTokenExpired)
		return
	}

	hash, err := hashPassword(passwordBaru)
	if shouldInterupt(err, c) {
		return
	}

	if err := s.store.ResetPassword(p.ID, hash); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"pesan": pesanResetPassword})
}
