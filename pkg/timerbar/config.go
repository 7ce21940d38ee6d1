package timerbar

import (
	"fmt"

	"go.uber.org/multierr"
)

const (
	DefaultWidth       = 50
	DefaultBlank       = "-"
	DefaultFilled      = "▊"
	DefaultLeftBorder  = "|"
	DefaultRightBorder = "|"
)

type (
	// Config is the full appearance of a bar. It is treated as a value: the
	// bar swaps it wholesale and derives its layout from it.
	Config struct {
		TotalSteps       int
		BarWidth         int
		BlankGlyph       string
		FilledGlyph      string
		LeftBorder       string
		RightBorder      string
		PrefixText       string
		SuffixText       string
		FillBeforeAction bool
	}

	// Patch holds the fields to change on Update. A nil field is left as
	// is, so "not provided" and "provided as empty" stay distinct.
	Patch struct {
		TotalSteps       *int
		BarWidth         *int
		BlankGlyph       *string
		FilledGlyph      *string
		LeftBorder       *string
		RightBorder      *string
		PrefixText       *string
		SuffixText       *string
		FillBeforeAction *bool
	}
)

// DefaultConfig returns the default appearance for a bar of totalSteps.
func DefaultConfig(totalSteps int) Config {
	return Config{
		TotalSteps:  totalSteps,
		BarWidth:    DefaultWidth,
		BlankGlyph:  DefaultBlank,
		FilledGlyph: DefaultFilled,
		LeftBorder:  DefaultLeftBorder,
		RightBorder: DefaultRightBorder,
	}
}

// Validate reports every rule the configuration breaks. Each reported error
// is a *ConfigurationError; use multierr.Errors to list them.
func (c Config) Validate() error {
	var err error
	if c.TotalSteps <= 0 {
		err = multierr.Append(err, newConfigurationError("TotalSteps",
			fmt.Sprintf("must be positive, got %d", c.TotalSteps)))
	}
	if c.BarWidth < 0 {
		err = multierr.Append(err, newConfigurationError("BarWidth",
			fmt.Sprintf("must not be negative, got %d", c.BarWidth)))
	}
	if c.BarWidth > 0 && c.FilledGlyph == "" {
		err = multierr.Append(err, newConfigurationError("FilledGlyph",
			"must not be empty when bar width is positive"))
	}
	if c.BarWidth > 0 && c.BlankGlyph == "" {
		err = multierr.Append(err, newConfigurationError("BlankGlyph",
			"must not be empty when bar width is positive"))
	}
	return err
}

// Apply returns c with the patch fields set and whether any of them
// affects the layout of the bar.
func (c Config) Apply(p Patch) (Config, bool) {
	changed := false
	setString := func(dst *string, src *string, affectsLayout bool) {
		if src == nil {
			return
		}
		*dst = *src
		changed = changed || affectsLayout
	}

	if p.TotalSteps != nil {
		c.TotalSteps = *p.TotalSteps
	}
	if p.BarWidth != nil {
		c.BarWidth = *p.BarWidth
		changed = true
	}
	if p.FillBeforeAction != nil {
		c.FillBeforeAction = *p.FillBeforeAction
	}
	setString(&c.BlankGlyph, p.BlankGlyph, true)
	setString(&c.FilledGlyph, p.FilledGlyph, false)
	setString(&c.LeftBorder, p.LeftBorder, true)
	setString(&c.RightBorder, p.RightBorder, true)
	setString(&c.PrefixText, p.PrefixText, true)
	setString(&c.SuffixText, p.SuffixText, true)

	return c, changed
}

// Int returns a pointer to v, for building a Patch.
func Int(v int) *int { return &v }

// String returns a pointer to v, for building a Patch.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for building a Patch.
func Bool(v bool) *bool { return &v }
