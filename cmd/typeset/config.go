package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/tsawler/typeset/model"
)

// watermarkConfig is the YAML shape of a watermark settings file. Enum
// fields are strings and map onto the model types leniently; unknown
// values fall back to defaults rather than failing the run.
type watermarkConfig struct {
	Text     string  `yaml:"text"`
	Template string  `yaml:"template"`
	Opacity  float64 `yaml:"opacity"`
	FontSize string  `yaml:"fontSize"`
	Color    string  `yaml:"color"`

	Position struct {
		Type        string  `yaml:"type"`
		Corner      string  `yaml:"corner"`
		OffsetX     float64 `yaml:"offsetX"`
		OffsetY     float64 `yaml:"offsetY"`
		Coordinates []struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		} `yaml:"coordinates"`
	} `yaml:"position"`

	Transparency struct {
		Type  string  `yaml:"type"`
		Value float64 `yaml:"value"`
		Start float64 `yaml:"start"`
		End   float64 `yaml:"end"`
	} `yaml:"transparency"`

	Style struct {
		FontFamily string   `yaml:"fontFamily"`
		Rotation   *float64 `yaml:"rotation"`
		Shadow     *struct {
			OffsetX float64 `yaml:"offsetX"`
			OffsetY float64 `yaml:"offsetY"`
			Opacity float64 `yaml:"opacity"`
		} `yaml:"shadow"`
		Outline *struct {
			Width   float64 `yaml:"width"`
			Opacity float64 `yaml:"opacity"`
		} `yaml:"outline"`
	} `yaml:"style"`

	Pages struct {
		Range       string `yaml:"range"`
		Pages       []int  `yaml:"pages"`
		CustomText  string `yaml:"customText"`
		Conditional *struct {
			HasImages     *bool  `yaml:"hasImages"`
			HasTables     *bool  `yaml:"hasTables"`
			ContentLength string `yaml:"contentLength"`
		} `yaml:"conditional"`
	} `yaml:"pages"`
}

// loadWatermarkConfig reads and converts a YAML settings file.
func loadWatermarkConfig(path string) (model.WatermarkSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.WatermarkSettings{}, err
	}

	var cfg watermarkConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.WatermarkSettings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.settings(), nil
}

// settings converts the YAML shape to model settings, filling defaults
// for anything left unset.
func (c watermarkConfig) settings() model.WatermarkSettings {
	s := model.DefaultWatermarkSettings()

	if c.Text != "" {
		s.Text = c.Text
	}
	s.Template = model.ParseTemplate(c.Template)
	if c.Opacity > 0 {
		s.Opacity = c.Opacity
	}
	if c.FontSize != "" {
		s.FontSize = c.FontSize
	}
	if c.Color != "" {
		s.Color = c.Color
	}

	s.Position.Type = model.ParsePositionType(c.Position.Type)
	s.Position.Corner = model.ParseCorner(c.Position.Corner)
	s.Position.Offset = model.Point{X: c.Position.OffsetX, Y: c.Position.OffsetY}
	for _, pt := range c.Position.Coordinates {
		s.Position.Coordinates = append(s.Position.Coordinates, model.Point{X: pt.X, Y: pt.Y})
	}

	s.Transparency = model.Transparency{
		Type:  model.ParseTransparencyType(c.Transparency.Type),
		Value: c.Transparency.Value,
		Start: c.Transparency.Start,
		End:   c.Transparency.End,
	}
	if s.Transparency.Value == 0 {
		s.Transparency.Value = s.Opacity
	}

	s.Style.FontFamily = c.Style.FontFamily
	s.Style.Rotation = c.Style.Rotation
	if sh := c.Style.Shadow; sh != nil {
		s.Style.Shadow = &model.ShadowEffect{
			OffsetX: sh.OffsetX,
			OffsetY: sh.OffsetY,
			Opacity: sh.Opacity,
		}
	}
	if ol := c.Style.Outline; ol != nil {
		s.Style.Outline = &model.OutlineEffect{Width: ol.Width, Opacity: ol.Opacity}
	}

	s.PageSpecific.Range = model.ParsePageRange(c.Pages.Range)
	s.PageSpecific.Pages = c.Pages.Pages
	s.PageSpecific.CustomText = c.Pages.CustomText
	if cond := c.Pages.Conditional; cond != nil {
		s.PageSpecific.Conditional = &model.Conditional{
			HasImages:     cond.HasImages,
			HasTables:     cond.HasTables,
			ContentLength: model.ParseContentLength(cond.ContentLength),
		}
	}
	return s
}
