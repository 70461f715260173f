package api

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseRateSpec(t *testing.T) {
	spec, err := parseRateSpec("10/minute")
	assert.NoError(t, err)
	assert.Equal(t, rateSpec{count: 10, period: time.Minute}, spec)

	spec, err = parseRateSpec("3/hour")
	assert.NoError(t, err)
	assert.Equal(t, rateSpec{count: 3, period: time.Hour}, spec)

	for _, bad := range []string{"", "10", "0/minute", "x/minute", "10/week"} {
		_, err := parseRateSpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestRateLimiterAllow(t *testing.T) {
	l := newRateLimiter()
	specs := []rateSpec{{count: 2, period: time.Minute}, {count: 3, period: time.Hour}}
	now := time.Now()

	assert.True(t, l.allow("a", specs, now))
	assert.True(t, l.allow("a", specs, now))
	assert.False(t, l.allow("a", specs, now))

	assert.True(t, l.allow("b", specs, now))

	// the minute bucket refills, the hour bucket does not
	later := now.Add(time.Minute)
	assert.True(t, l.allow("a", specs, later))
	assert.False(t, l.allow("a", specs, later.Add(time.Minute)))
}

func TestRateLimiterRejectedRequestKeepsTokens(t *testing.T) {
	l := newRateLimiter()
	specs := []rateSpec{{count: 3, period: time.Hour}, {count: 1, period: time.Minute}}
	now := time.Now()

	assert.True(t, l.allow("a", specs, now))
	for i := 0; i < 5; i++ {
		assert.False(t, l.allow("a", specs, now))
	}

	// the hour bucket still holds the two tokens the rejected calls did not use
	assert.True(t, l.allow("a", specs, now.Add(time.Minute)))
	assert.True(t, l.allow("a", specs, now.Add(2*time.Minute)))
	assert.False(t, l.allow("a", specs, now.Add(3*time.Minute)))
}

func TestRateLimiterSweepsIdleVisitors(t *testing.T) {
	l := newRateLimiter()
	specs := []rateSpec{{count: 1, period: time.Minute}}
	lama := time.Now().Add(-2 * time.Hour)

	for i := 0; i < limiterSweepSize; i++ {
		l.allow(strconv.Itoa(i), specs, lama)
	}
	assert.Len(t, l.visitors, limiterSweepSize)

	l.allow("baru", specs, time.Now())
	assert.Len(t, l.visitors, 1)
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		forwarded string
		realIP    string
		expected  string
	}{
		{"203.0.113.7, 10.0.0.1", "198.51.100.2", "203.0.113.7"},
		{"", "198.51.100.2", "198.51.100.2"},
		{"", "", "192.0.2.1"},
	}

	for _, c := range cases {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Request = httptest.NewRequest("GET", "/", nil)
		if c.forwarded != "" {
			ctx.Request.Header.Set("X-Forwarded-For", c.forwarded)
		}
		if c.realIP != "" {
			ctx.Request.Header.Set("X-Real-IP", c.realIP)
		}
		assert.Equal(t, c.expected, clientIP(ctx))
	}
}

func TestRecovery(t *testing.T) {
	s := Server{}
	router := gin.New()
	router.Use(s.recovery())
	router.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := performRequest(router, "GET", "/", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Kesalahan internal server", decodeBody(w)["pesan"])
}
