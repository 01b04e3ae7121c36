package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle = i18n.NewBundle(language.English)

// InitI18NBundle loads the spoken-prompt catalogs. Callers that skip
// initialization still work: localization falls back to the default
// message embedded at the call site.
func InitI18NBundle() {
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "en.yaml"))
	bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "pcm.yaml"))
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// Spoken renders a voice prompt in the configured language.
func Spoken(msg *i18n.Message, data map[string]interface{}) string {
	localizer := NewLocalizer(viper.GetString("i18n.default"))
	out, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return out
}
