package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fluwatch/fluwatch-api/utils"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitI18NBundleFromDir("../i18n")
	bcryptHashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func signTestToken(subject string, expiresAt time.Time, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   subject,
		IssuedAt:  expiresAt.Add(-time.Hour).Unix(),
		ExpiresAt: expiresAt.Unix(),
	})
	s, _ := token.SignedString([]byte(secret))
	return s
}

func testToken(id uuid.UUID) string {
	return signTestToken(id.String(), time.Now().Add(time.Hour), testSecret)
}

// performRequest sends a JSON request through the router. An empty token
// sends no Authorization header.
func performRequest(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			json.NewEncoder(&buf).Encode(b)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
