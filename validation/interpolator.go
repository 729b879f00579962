package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/grzegorzmaniak/gothic-validator/helpers"
)

const DefaultLocale = "en"

// ErrConfiguration marks failures while configuring the validation engine.
// They are never fatal for the default validator.
var ErrConfiguration = errors.New("validation configuration error")

// MessageInterpolator turns a violation reported by the engine into a client message.
type MessageInterpolator interface {
	Interpolate(fe validator.FieldError) string
}

type translatorInterpolator struct {
	trans ut.Translator
}

func (i *translatorInterpolator) Interpolate(fe validator.FieldError) string {
	return fe.Translate(i.trans)
}

type localeSupport struct {
	translator func() locales.Translator
	register   func(v *validator.Validate, trans ut.Translator) error
}

var supportedLocales = map[string]localeSupport{
	"en": {translator: en.New, register: en_translations.RegisterDefaultTranslations},
	"es": {translator: es.New, register: es_translations.RegisterDefaultTranslations},
	"fr": {translator: fr.New, register: fr_translations.RegisterDefaultTranslations},
	"zh": {translator: zh.New, register: zh_translations.RegisterDefaultTranslations},
}

// MessageInterpolatorFactory builds a translating interpolator for Locale.
// An empty Locale means DefaultLocale.
type MessageInterpolatorFactory struct {
	Locale string
}

// Build registers the locale's default translations on v and returns an
// interpolator using them. Every failure wraps ErrConfiguration.
func (f MessageInterpolatorFactory) Build(v *validator.Validate) (MessageInterpolator, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: validation engine is nil", ErrConfiguration)
	}

	locale := strings.ToLower(helpers.DefaultString(strings.TrimSpace(f.Locale), DefaultLocale))
	support, ok := supportedLocales[locale]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported locale %q", ErrConfiguration, f.Locale)
	}

	uni := ut.New(en.New(), support.translator())
	trans, found := uni.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("%w: no translator for locale %q", ErrConfiguration, locale)
	}

	if err := support.register(v, trans); err != nil {
		return nil, fmt.Errorf("%w: registering %s translations: %v", ErrConfiguration, locale, err)
	}

	return &translatorInterpolator{trans: trans}, nil
}
