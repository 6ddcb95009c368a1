package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// engineOptionsDoc is the YAML-shaped subset of EngineOptions a host
// application may supply as a config file: page dimensions, the font-face
// fallback table, and the line-spacing/emoji defaults. Ports (FontMetrics,
// ImageMetrics, Logger) are never expressed in YAML; they are always wired
// in code.
type engineOptionsDoc struct {
	PageWidthPt       float64 `yaml:"pageWidthPt"`
	PageHeightPt      float64 `yaml:"pageHeightPt"`
	LineSpacingFactor float64 `yaml:"lineSpacingFactor"`
	UseImageForEmojis bool    `yaml:"useImageForEmojis"`
	Fonts             struct {
		Regular    string `yaml:"regular"`
		Bold       string `yaml:"bold"`
		Italic     string `yaml:"italic"`
		BoldItalic string `yaml:"boldItalic"`
		Emoji      string `yaml:"emoji"`
	} `yaml:"fonts"`
}

// LoadEngineOptionsYAML parses a YAML document into the page/font/spacing
// fields of EngineOptions, leaving the port fields (FontMetrics,
// ImageMetrics, Logger) on the caller-supplied base untouched.
func LoadEngineOptionsYAML(data []byte, base EngineOptions) (EngineOptions, error) {
	var doc engineOptionsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return base, fmt.Errorf("layout: parsing engine options YAML: %w", err)
	}
	out := base
	if doc.PageWidthPt > 0 {
		out.PageWidthPt = doc.PageWidthPt
	}
	if doc.PageHeightPt > 0 {
		out.PageHeightPt = doc.PageHeightPt
	}
	if doc.LineSpacingFactor > 0 {
		out.LineSpacingFactor = doc.LineSpacingFactor
	}
	out.UseImageForEmojis = doc.UseImageForEmojis
	out.Fonts = FontConfig{
		Regular:    doc.Fonts.Regular,
		Bold:       doc.Fonts.Bold,
		Italic:     doc.Fonts.Italic,
		BoldItalic: doc.Fonts.BoldItalic,
		Emoji:      doc.Fonts.Emoji,
	}
	return out, nil
}
