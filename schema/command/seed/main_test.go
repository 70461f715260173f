package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSemua(t *testing.T) {
	now := time.Now().UTC()
	s := seeder{rnd: rand.New(rand.NewSource(1)), now: now}

	laporan := s.semua()
	assert.Len(t, laporan, 180)

	aktif := 0
	for _, l := range laporan {
		assert.NotEmpty(t, l.GejalaAktif())
		assert.True(t, l.TingkatKeparahan >= 1 && l.TingkatKeparahan <= 10)
		assert.NotNil(t, l.NamaWilayah)
		assert.True(t, l.Timestamp.Before(now))
		assert.True(t, l.Timestamp.After(now.Add(-723*time.Hour)))
		if l.Timestamp.After(now.Add(-9 * time.Hour)) {
			aktif++
		}
	}
	assert.True(t, aktif >= 20)

	for _, l := range laporan[160:] {
		assert.True(t, l.TingkatKeparahan >= 8)
		assert.True(t, l.Timestamp.After(now.Add(-339*time.Hour)))
	}
}
