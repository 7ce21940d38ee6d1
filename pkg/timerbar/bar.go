package timerbar

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
	"go.uber.org/zap"
)

var log = zap.L()

// SetLogger replaces the package logger.
func SetLogger(l *zap.Logger) {
	log = l
}

// ProgressBar renders a fixed width bar that fills as steps advance.
//
// A ProgressBar is not safe for concurrent use. Callers sharing one bar
// between goroutines must serialize access themselves.
type ProgressBar struct {
	cfg    Config
	layout layout

	current []string
	text    string
}

// layout is derived from Config and is rebuilt whenever a layout field
// changes. All slices hold one grapheme cluster per element.
type layout struct {
	prefixLen int
	template  []string
	filled    []string
}

type Option func(*Config)

func WithWidth(width int) Option {
	return func(c *Config) { c.BarWidth = width }
}

func WithBlank(glyph string) Option {
	return func(c *Config) { c.BlankGlyph = glyph }
}

// WithFilled sets the fill glyph. A glyph of several characters is cycled
// across the filled cells.
func WithFilled(glyph string) Option {
	return func(c *Config) { c.FilledGlyph = glyph }
}

func WithBorders(left, right string) Option {
	return func(c *Config) {
		c.LeftBorder = left
		c.RightBorder = right
	}
}

func WithPrefix(text string) Option {
	return func(c *Config) { c.PrefixText = text }
}

func WithSuffix(text string) Option {
	return func(c *Config) { c.SuffixText = text }
}

// WithFillBeforeAction makes the bar count the step being rendered as
// already done, for callers that render before doing the step's work.
func WithFillBeforeAction(v bool) Option {
	return func(c *Config) { c.FillBeforeAction = v }
}

// New returns a blank bar for totalSteps steps using the default
// appearance changed by opts.
func New(totalSteps int, opts ...Option) (*ProgressBar, error) {
	cfg := DefaultConfig(totalSteps)
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig returns a blank bar for cfg.
func NewWithConfig(cfg Config) (*ProgressBar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &ProgressBar{cfg: cfg}
	b.layout = newLayout(cfg)
	b.reset()
	return b, nil
}

// RenderAtStep fills the bar for step and returns the rendered text. Steps
// outside [0, TotalSteps] are clamped to an empty or full bar.
func (b *ProgressBar) RenderAtStep(step int) string {
	copy(b.current, b.layout.template)

	n := b.FillCount(step)
	filled := b.layout.filled
	for i := 0; i < n; i++ {
		b.current[b.layout.prefixLen+i] = filled[i%len(filled)]
	}

	b.text = strings.Join(b.current, "")
	return b.text
}

// FillCount returns how many cells RenderAtStep(step) fills. Ties are
// rounded to even.
func (b *ProgressBar) FillCount(step int) int {
	effective := float64(step)
	if b.cfg.FillBeforeAction {
		effective++
	}

	n := math.RoundToEven(effective / float64(b.cfg.TotalSteps) * float64(b.cfg.BarWidth))
	switch {
	case n <= 0:
		return 0
	case n >= float64(b.cfg.BarWidth):
		return b.cfg.BarWidth
	default:
		return int(n)
	}
}

// Update applies the set fields of p. The merged configuration is
// validated first; on error the bar is left untouched. Changing a layout
// field (width, blank glyph, borders, prefix or suffix) resets the bar to
// blank.
func (b *ProgressBar) Update(p Patch) error {
	cfg, layoutChanged := b.cfg.Apply(p)
	if err := cfg.Validate(); err != nil {
		return err
	}

	b.reconfigure(cfg, layoutChanged)
	return nil
}

// SetPrefix replaces the text before the left border and resets the bar.
func (b *ProgressBar) SetPrefix(text string) {
	cfg := b.cfg
	cfg.PrefixText = text
	b.reconfigure(cfg, true)
}

// SetSuffix replaces the text after the right border and resets the bar.
func (b *ProgressBar) SetSuffix(text string) {
	cfg := b.cfg
	cfg.SuffixText = text
	b.reconfigure(cfg, true)
}

// Restart rebuilds the blank bar from the current configuration.
func (b *ProgressBar) Restart() {
	b.layout = newLayout(b.cfg)
	b.reset()
}

// String returns the last render, or the blank bar if nothing has been
// rendered since construction or the last reset.
func (b *ProgressBar) String() string {
	return b.text
}

// Config returns a copy of the current configuration.
func (b *ProgressBar) Config() Config {
	return b.cfg
}

// Cells returns the length of every render in characters.
func (b *ProgressBar) Cells() int {
	return len(b.layout.template)
}

func (b *ProgressBar) reconfigure(cfg Config, layoutChanged bool) {
	b.cfg = cfg
	if !layoutChanged {
		b.layout.filled = cells(cfg.FilledGlyph)
		log.Debug("bar reconfigured",
			zap.Int("totalSteps", cfg.TotalSteps),
			zap.Bool("fillBeforeAction", cfg.FillBeforeAction))
		return
	}

	b.layout = newLayout(cfg)
	b.reset()
	log.Debug("bar layout rebuilt",
		zap.Int("width", cfg.BarWidth),
		zap.Int("cells", len(b.layout.template)))
}

func (b *ProgressBar) reset() {
	b.current = make([]string, len(b.layout.template))
	copy(b.current, b.layout.template)
	b.text = strings.Join(b.current, "")
}

func newLayout(cfg Config) layout {
	prefix := cells(cfg.PrefixText)
	left := cells(cfg.LeftBorder)
	right := cells(cfg.RightBorder)
	suffix := cells(cfg.SuffixText)

	template := make([]string, 0, len(prefix)+len(left)+cfg.BarWidth+len(right)+len(suffix))
	template = append(template, prefix...)
	template = append(template, left...)
	blank := cells(cfg.BlankGlyph)
	for i := 0; i < cfg.BarWidth; i++ {
		template = append(template, blank[i%len(blank)])
	}
	template = append(template, right...)
	template = append(template, suffix...)

	return layout{
		prefixLen: len(prefix) + len(left),
		template:  template,
		filled:    cells(cfg.FilledGlyph),
	}
}

// cells splits s into user-perceived characters.
func cells(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
