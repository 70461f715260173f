package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/fluwatch/fluwatch-api/schema"
)

const DefaultLang = "id"

var bundle *i18n.Bundle

func InitI18NBundle() {
	InitI18NBundleFromDir(viper.GetString("i18n.dir"))
}

func InitI18NBundleFromDir(dir string) {
	bundle = i18n.NewBundle(language.Indonesian)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.MustLoadMessageFile(path.Join(dir, "id.yaml"))
	bundle.MustLoadMessageFile(path.Join(dir, "en.yaml"))
}

func NewLocalizer(lang string) *i18n.Localizer {
	if lang == "" {
		lang = DefaultLang
	}
	return i18n.NewLocalizer(bundle, lang)
}

// LabelGejala returns the display name of a symptom, or the symptom id
// when no translation exists
func LabelGejala(localizer *i18n.Localizer, g schema.Gejala) string {
	label, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "gejala_" + string(g)})
	if err != nil || label == "" {
		return string(g)
	}
	return label
}

// DaftarGejala lists the symptoms with their labels and weights in canonical order
func DaftarGejala(localizer *i18n.Localizer, bobot map[schema.Gejala]int) []schema.GejalaInfo {
	daftar := make([]schema.GejalaInfo, 0, len(schema.GejalaFields))
	for _, g := range schema.GejalaFields {
		daftar = append(daftar, schema.GejalaInfo{
			ID:    g,
			Label: LabelGejala(localizer, g),
			Bobot: bobot[g],
		})
	}
	return daftar
}
