// File: data.go
// Title: Locale Data Catalog
// Description: Implements loading and lookup of locale formatting data.
//              A catalog holds one Data record per locale, loaded from the
//              embedded TOML files and optionally from a directory of
//              TOML or YAML files. Lookup resolves requested locales with
//              a fallback chain: exact match, base language, then English.

package intl

import (
	"embed"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	lerror "github.com/msto63/lingua/core/error"
	"github.com/msto63/lingua/utils/stringx"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

// StylePatterns holds one pattern per formatting style
type StylePatterns struct {
	Full   string `toml:"full" yaml:"full"`
	Long   string `toml:"long" yaml:"long"`
	Medium string `toml:"medium" yaml:"medium"`
	Short  string `toml:"short" yaml:"short"`
}

// Names holds wide and abbreviated name lists (months or weekdays)
type Names struct {
	Wide        []string `toml:"wide" yaml:"wide"`
	Abbreviated []string `toml:"abbreviated" yaml:"abbreviated"`
}

// DayPeriods holds the locale's day period markers
type DayPeriods struct {
	AM string `toml:"am" yaml:"am"`
	PM string `toml:"pm" yaml:"pm"`
}

// Data is the complete formatting data set of one locale
type Data struct {
	Locale string `toml:"locale" yaml:"locale"`

	// Date and time patterns per style
	Date StylePatterns `toml:"date" yaml:"date"`
	Time StylePatterns `toml:"time" yaml:"time"`

	// Glue patterns combining date and time, keyed by the date style.
	// {1} is the date portion, {0} the time portion.
	DateTime StylePatterns `toml:"datetime" yaml:"datetime"`

	Months     Names      `toml:"months" yaml:"months"`
	Weekdays   Names      `toml:"weekdays" yaml:"weekdays"`
	DayPeriods DayPeriods `toml:"dayperiods" yaml:"dayperiods"`
}

// datePattern selects the date pattern for a style
func (d *Data) datePattern(style DateStyle) string {
	switch style {
	case DateStyleFull:
		return d.Date.Full
	case DateStyleLong:
		return d.Date.Long
	case DateStyleMedium:
		return d.Date.Medium
	default:
		return d.Date.Short
	}
}

// timePattern selects the time pattern for a style
func (d *Data) timePattern(style TimeStyle) string {
	switch style {
	case TimeStyleFull:
		return d.Time.Full
	case TimeStyleLong:
		return d.Time.Long
	case TimeStyleMedium:
		return d.Time.Medium
	default:
		return d.Time.Short
	}
}

// gluePattern selects the date-time glue pattern for a date style
func (d *Data) gluePattern(style DateStyle) string {
	switch style {
	case DateStyleFull:
		return d.DateTime.Full
	case DateStyleLong:
		return d.DateTime.Long
	case DateStyleMedium:
		return d.DateTime.Medium
	default:
		return d.DateTime.Short
	}
}

// validate checks structural completeness of a data record
func (d *Data) validate() error {
	if stringx.IsBlank(d.Locale) {
		return lerror.New("locale identifier missing").
			WithCode(lerror.CodeInvalidLocaleData)
	}
	if len(d.Months.Wide) != 12 || len(d.Months.Abbreviated) != 12 {
		return lerror.New("locale data must define 12 wide and 12 abbreviated months").
			WithCode(lerror.CodeInvalidLocaleData).
			WithDetail("locale", d.Locale)
	}
	if len(d.Weekdays.Wide) != 7 || len(d.Weekdays.Abbreviated) != 7 {
		return lerror.New("locale data must define 7 wide and 7 abbreviated weekdays").
			WithCode(lerror.CodeInvalidLocaleData).
			WithDetail("locale", d.Locale)
	}
	if stringx.IsBlank(d.Date.Short) || stringx.IsBlank(d.Time.Short) {
		return lerror.New("locale data must define at least short date and time patterns").
			WithCode(lerror.CodeInvalidLocaleData).
			WithDetail("locale", d.Locale)
	}
	return nil
}

// Catalog holds locale data records with thread-safe lookup
type Catalog struct {
	mu   sync.RWMutex
	data map[string]*Data
}

// NewCatalog creates a catalog preloaded with the embedded locale data
func NewCatalog() (*Catalog, error) {
	catalog := &Catalog{
		data: make(map[string]*Data),
	}

	entries, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return nil, lerror.Wrap(err, "failed to read embedded locale data").
			WithCode(lerror.CodeInvalidLocaleData).
			WithOperation("intl.NewCatalog")
	}

	for _, entry := range entries {
		content, err := embeddedLocales.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, lerror.Wrap(err, "failed to read embedded locale file").
				WithCode(lerror.CodeInvalidLocaleData).
				WithDetail("file", entry.Name())
		}

		var data Data
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, lerror.Wrap(err, "failed to parse embedded locale file").
				WithCode(lerror.CodeInvalidLocaleData).
				WithDetail("file", entry.Name())
		}

		if err := catalog.add(&data); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// add validates and stores one data record
func (c *Catalog) add(data *Data) error {
	if err := data.validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.data[normalizeLocale(data.Locale)] = data
	c.mu.Unlock()
	return nil
}

// LoadDir loads additional locale files from a directory. TOML and YAML
// files are supported, detected by extension. Records replace embedded
// data for the same locale.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return lerror.Wrap(err, "failed to read locale data directory").
			WithCode(lerror.CodeLocaleNotFound).
			WithOperation("intl.LoadDir").
			WithDetail("directory", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return lerror.Wrap(err, "failed to read locale file").
				WithCode(lerror.CodeInvalidLocaleData).
				WithDetail("file", entry.Name())
		}

		var data Data
		if ext == ".toml" {
			err = toml.Unmarshal(content, &data)
		} else {
			err = yaml.Unmarshal(content, &data)
		}
		if err != nil {
			return lerror.Wrap(err, "failed to parse locale file").
				WithCode(lerror.CodeInvalidLocaleData).
				WithDetail("file", entry.Name())
		}

		// Default the locale identifier to the file name, as with
		// translation files ("de.toml" -> "de")
		if stringx.IsBlank(data.Locale) {
			data.Locale = strings.TrimSuffix(entry.Name(), ext)
		}

		if err := c.add(&data); err != nil {
			return err
		}
	}

	return nil
}

// Lookup resolves locale data with fallback: exact match, base language,
// then English.
func (c *Catalog) Lookup(locale string) (*Data, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	normalized := normalizeLocale(locale)

	if data, ok := c.data[normalized]; ok {
		return data, nil
	}

	// Base language fallback: "en-US" -> "en"
	if idx := strings.IndexAny(normalized, "-_"); idx > 0 {
		if data, ok := c.data[normalized[:idx]]; ok {
			return data, nil
		}
	}

	if data, ok := c.data["en"]; ok {
		return data, nil
	}

	return nil, lerror.New("no locale data available").
		WithCode(lerror.CodeLocaleNotFound).
		WithOperation("intl.Lookup").
		WithDetail("locale", locale)
}

// Locales returns the sorted identifiers of all loaded locale data
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	locales := make([]string, 0, len(c.data))
	for locale := range c.data {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// normalizeLocale lowercases a locale identifier and unifies separators
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the shared catalog of embedded locale data
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = NewCatalog()
	})
	return defaultCatalog, defaultCatalogErr
}
