// Package i18n handles localized user-facing strings.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	goLocale "github.com/jeandeaual/go-locale"
	i18nLib "github.com/kaptinlin/go-i18n"
	"golang.org/x/text/language"

	"github.com/khicago/covstat/internal/environment"
)

type LocaleProvider interface {
	GetLocales() ([]string, error)
}

type DefaultLocaleProvider struct{}

func (provider DefaultLocaleProvider) GetLocales() ([]string, error) {
	return goLocale.GetLocales()
}

//go:embed lang/*.json
var langFS embed.FS

const defaultLocale = "en-GB"

// Vars are the placeholder values of a message.
type Vars map[string]any

var (
	langDir        = "lang"
	localeProvider LocaleProvider = DefaultLocaleProvider{}

	setupOnce sync.Once
	// localizerMu guards localizer.Get(); go-i18n's internal cache is not safe for concurrent use.
	localizerMu sync.Mutex
	localizer   *i18nLib.Localizer
)

func ResetForTesting() {
	localizerMu.Lock()
	localizer = nil
	localizerMu.Unlock()
	setupOnce = sync.Once{}
}

// T translates key for the user's locale. In test mode it returns the key and
// the sorted vars so assertions do not depend on the message catalogue.
func T(key string, vars ...Vars) string {
	if len(vars) > 1 {
		panic("i18n.T accepts at most one Vars argument")
	}

	if environment.IsTestMode() {
		return formatKeyAndVars(key, vars...)
	}

	setupOnce.Do(setup)

	localizerMu.Lock()
	defer localizerMu.Unlock()

	if len(vars) == 0 {
		return localizer.Get(key)
	}
	return localizer.Get(key, i18nLib.Vars(vars[0]))
}

func setup() {
	files, err := langFS.ReadDir(langDir)
	if err != nil {
		panic(err)
	}

	locales := []string{defaultLocale}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		locale := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		if strings.EqualFold(locale, defaultLocale) {
			continue
		}
		locales = append(locales, locale)
	}

	newBundle := i18nLib.NewBundle(
		i18nLib.WithDefaultLocale(defaultLocale),
		i18nLib.WithLocales(locales...),
	)
	if err := newBundle.LoadFS(langFS, fmt.Sprintf("%s/*.json", langDir)); err != nil {
		panic(err)
	}

	newLocalizer := newBundle.NewLocalizer(buildLocalizerLocales(userLocales())...)

	localizerMu.Lock()
	localizer = newLocalizer
	localizerMu.Unlock()
}

func userLocales() []string {
	if envLocale, present := os.LookupEnv("LANG"); present {
		return []string{envLocale}
	}

	detected, err := localeProvider.GetLocales()
	if err != nil {
		return []string{language.English.String()}
	}

	locales := make([]string, 0, len(detected))
	for _, locale := range detected {
		if locale != "" {
			locales = append(locales, locale)
		}
	}
	return locales
}

func formatKeyAndVars(key string, vars ...Vars) string {
	if len(vars) == 0 || len(vars[0]) == 0 {
		return key
	}

	names := make([]string, 0, len(vars[0]))
	for name := range vars[0] {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s=%v", name, vars[0][name]))
	}
	return fmt.Sprintf("%s {%s}", key, strings.Join(pairs, ", "))
}

// buildLocalizerLocales canonicalises raw locale names (en_GB -> en-GB) and
// adds each base language after its regional variant.
func buildLocalizerLocales(rawLocales []string) []string {
	locales := make([]string, 0, len(rawLocales)*2)
	seen := make(map[string]struct{}, len(rawLocales)*2)
	add := func(locale string) {
		if _, ok := seen[locale]; ok {
			return
		}
		seen[locale] = struct{}{}
		locales = append(locales, locale)
	}

	for _, raw := range rawLocales {
		if raw == "" {
			continue
		}
		// POSIX values such as en_GB.UTF-8 carry an encoding suffix.
		raw, _, _ = strings.Cut(raw, ".")

		tag, err := language.Parse(raw)
		if err != nil {
			continue
		}
		add(tag.String())
		if base, _ := tag.Base(); base.String() != "" {
			add(base.String())
		}
	}

	return locales
}
