package otconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/npillmayer/otrebuild/ot"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned for configuration files which cannot be read.
var ErrConfig = errors.New("invalid configuration")

// Config is the configuration of a config-based font rebuild.
// All sections are optional and may be nil.
type Config struct {
	General *General         `yaml:"general,omitempty"`
	Style   *Style           `yaml:"style,omitempty"`
	Metrics *Metrics         `yaml:"metrics,omitempty"`
	Name    map[string]Names `yaml:"name,omitempty"`
}

// General holds font-wide settings.
type General struct {
	Version              *float64 `yaml:"version,omitempty"`
	EmbeddingRestriction *int     `yaml:"embeddingRestriction,omitempty"`
}

// Embedding restriction codes.
const (
	EmbedInstallable = iota
	EmbedEditable
	EmbedPreviewAndPrint
	EmbedRestricted
)

// Style holds style-linking, width and weight of a font.
type Style struct {
	StyleLink          *int     `yaml:"styleLink,omitempty"`
	WidthScale         *int     `yaml:"widthScale,omitempty"`
	WeightScale        *int     `yaml:"weightScale,omitempty"`
	ItalicAngle        *float64 `yaml:"italicAngle,omitempty"`
	IsMonospaced       *bool    `yaml:"isMonospaced,omitempty"`
	UnderlinePosition  *float64 `yaml:"underlinePosition,omitempty"`
	UnderlineThickness *float64 `yaml:"underlineThickness,omitempty"`
}

// Metrics holds vertical metrics for tables 'hhea' and 'OS/2'.
type Metrics struct {
	HheaAscender  *float64 `yaml:"hheaAscender,omitempty"`
	HheaDescender *float64 `yaml:"hheaDescender,omitempty"`
	HheaLineGap   *float64 `yaml:"hheaLineGap,omitempty"`
	TypoAscender  *float64 `yaml:"typoAscender,omitempty"`
	TypoDescender *float64 `yaml:"typoDescender,omitempty"`
	TypoLineGap   *float64 `yaml:"typoLineGap,omitempty"`
	WinAscender   *float64 `yaml:"winAscender,omitempty"`
	WinDescender  *float64 `yaml:"winDescender,omitempty"`
}

// Names holds the names of a font for one language, keyed by the name
// fields below.
type Names map[string]string

// Name fields of a language section.
const (
	FontFamily     = "fontFamily"
	FontSubfamily  = "fontSubfamily"
	FontFullName   = "fontFullName"
	PostScriptName = "postScriptName"
	VersionString  = "versionString"
	UniqueID       = "uniqueID"
	Copyright      = "copyright"
	Trademark      = "trademark"
	Description    = "description"
	Designer       = "designer"
	DesignerURL    = "designerURL"
	Distributor    = "distributor"
	DistributorURL = "distributorURL"
	DistributorID  = "distributorID"
	License        = "license"
	LicenseURL     = "licenseURL"
)

var nameFields = []string{
	FontFamily, FontSubfamily, FontFullName, PostScriptName, VersionString,
	UniqueID, Copyright, Trademark, Description, Designer, DesignerURL,
	Distributor, DistributorURL, DistributorID, License, LicenseURL,
}

// Get returns a name field with surrounding white space removed. Empty
// values are None.
func (n Names) Get(field string) ot.Option[string] {
	if s := strings.TrimSpace(n[field]); s != "" {
		return ot.Some(s)
	}
	return ot.None[string]()
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration. Unknown keys are an error, an empty
// document is an empty configuration.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	for tag, names := range cfg.Name {
		for field := range names {
			if !slices.Contains(nameFields, field) {
				return nil, fmt.Errorf("%w: unknown field %q in names for %q", ErrConfig, field, tag)
			}
		}
	}
	tracer().Debugf("configuration with %d name languages", len(cfg.Name))
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func (cfg *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}

// --- Accessors -------------------------------------------------------------

func inRange(p *int, lo, hi int) ot.Option[int] {
	if p == nil || *p < lo || *p > hi {
		return ot.None[int]()
	}
	return ot.Some(*p)
}

// Version is the font revision from section general.
func (cfg *Config) Version() ot.Option[float64] {
	if cfg.General == nil {
		return ot.None[float64]()
	}
	return ot.FromPtr(cfg.General.Version)
}

// EmbeddingRestriction is one of the Embed... codes.
func (cfg *Config) EmbeddingRestriction() ot.Option[int] {
	if cfg.General == nil {
		return ot.None[int]()
	}
	return inRange(cfg.General.EmbeddingRestriction, EmbedInstallable, EmbedRestricted)
}

// HasStyle reports whether the configuration has a style section.
func (cfg *Config) HasStyle() bool {
	return cfg.Style != nil
}

// StyleLink is the style-link code, 0 (none) to 4 (bold italic).
func (cfg *Config) StyleLink() ot.Option[int] {
	if cfg.Style == nil {
		return ot.None[int]()
	}
	return inRange(cfg.Style.StyleLink, 0, 4)
}

// WidthScale is the width, 1 (ultra-condensed) to 9 (ultra-expanded).
func (cfg *Config) WidthScale() ot.Option[int] {
	if cfg.Style == nil {
		return ot.None[int]()
	}
	return inRange(cfg.Style.WidthScale, 1, 9)
}

// WeightScale is the weight, 1 (ultralight) to 10 (black).
func (cfg *Config) WeightScale() ot.Option[int] {
	if cfg.Style == nil {
		return ot.None[int]()
	}
	return inRange(cfg.Style.WeightScale, 1, 10)
}

// ItalicAngle is the italic angle in degrees, counter-clockwise.
func (cfg *Config) ItalicAngle() ot.Option[float64] {
	if cfg.Style == nil {
		return ot.None[float64]()
	}
	return ot.FromPtr(cfg.Style.ItalicAngle)
}

// IsMonospaced tells whether all glyphs have the same advance.
func (cfg *Config) IsMonospaced() ot.Option[bool] {
	if cfg.Style == nil {
		return ot.None[bool]()
	}
	return ot.FromPtr(cfg.Style.IsMonospaced)
}

// Underline returns the underline position and thickness.
func (cfg *Config) Underline() (pos, thickness ot.Option[float64]) {
	if cfg.Style == nil {
		return ot.None[float64](), ot.None[float64]()
	}
	return ot.FromPtr(cfg.Style.UnderlinePosition), ot.FromPtr(cfg.Style.UnderlineThickness)
}

// HheaMetrics returns ascender, descender and line gap for table 'hhea'.
func (cfg *Config) HheaMetrics() (asc, desc, gap ot.Option[float64]) {
	if cfg.Metrics == nil {
		return ot.None[float64](), ot.None[float64](), ot.None[float64]()
	}
	m := cfg.Metrics
	return ot.FromPtr(m.HheaAscender), ot.FromPtr(m.HheaDescender), ot.FromPtr(m.HheaLineGap)
}

// TypoMetrics returns the typographic ascender, descender and line gap.
func (cfg *Config) TypoMetrics() (asc, desc, gap ot.Option[float64]) {
	if cfg.Metrics == nil {
		return ot.None[float64](), ot.None[float64](), ot.None[float64]()
	}
	m := cfg.Metrics
	return ot.FromPtr(m.TypoAscender), ot.FromPtr(m.TypoDescender), ot.FromPtr(m.TypoLineGap)
}

// WinMetrics returns the Windows clipping ascent and descent.
func (cfg *Config) WinMetrics() (asc, desc ot.Option[float64]) {
	if cfg.Metrics == nil {
		return ot.None[float64](), ot.None[float64]()
	}
	return ot.FromPtr(cfg.Metrics.WinAscender), ot.FromPtr(cfg.Metrics.WinDescender)
}

// English returns the English names. The result is nil if there are none.
func (cfg *Config) English() Names {
	return cfg.Name["en"]
}

// Languages returns the language tags of all name sections except English,
// sorted.
func (cfg *Config) Languages() []string {
	tags := slices.Sorted(maps.Keys(cfg.Name))
	return slices.DeleteFunc(tags, func(tag string) bool { return tag == "en" })
}
