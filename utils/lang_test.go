package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluwatch/fluwatch-api/schema"
)

func TestLabelGejala(t *testing.T) {
	InitI18NBundleFromDir("../i18n")

	id := NewLocalizer("")
	assert.Equal(t, "Mual/Muntah", LabelGejala(id, schema.MualMuntah))
	assert.Equal(t, "Sakit Tenggorokan", LabelGejala(id, schema.SakitTenggorokan))

	en := NewLocalizer("en")
	assert.Equal(t, "Fever", LabelGejala(en, schema.Demam))

	assert.Equal(t, "bersin", LabelGejala(id, schema.Gejala("bersin")))
}

func TestDaftarGejala(t *testing.T) {
	InitI18NBundleFromDir("../i18n")

	daftar := DaftarGejala(NewLocalizer("id"), map[schema.Gejala]int{schema.Demam: 25})
	assert.Len(t, daftar, len(schema.GejalaFields))
	assert.Equal(t, schema.GejalaInfo{ID: schema.Demam, Label: "Demam", Bobot: 25}, daftar[0])
	assert.Equal(t, schema.SesakNapas, daftar[9].ID)
	assert.Equal(t, 0, daftar[9].Bobot)
}

func TestHashIP(t *testing.T) {
	h := HashIP("127.0.0.1")
	assert.Len(t, h, 16)
	assert.Equal(t, h, HashIP("127.0.0.1"))
	assert.NotEqual(t, h, HashIP("127.0.0.2"))
	// sha256("127.0.0.1")
	assert.Equal(t, "12ca17b49af22894", h)
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken(48)
	assert.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")

	b, err := RandomToken(48)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
