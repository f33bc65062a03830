package components

import (
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Slider picks a number in [min, max] snapped to step. Left and right move
// by one step, home and end jump to the bounds.
type Slider struct {
	BaseComponent
	id        string
	label     string
	min       float64
	max       float64
	step      float64
	value     float64
	showValue bool
	focused   bool
	track     progress.Model
}

// NewSlider creates a slider over [0, 100] with step 1.
func NewSlider(label string) *Slider {
	s := &Slider{
		BaseComponent: NewBaseComponent(),
		label:         label,
		max:           100,
		step:          1,
		showValue:     true,
		track:         progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	return s
}

// View renders the slider.
func (s *Slider) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, track and value.
func (s *Slider) ViewWithContext(ctx RenderContext) string {
	look, metrics := s.look(ctx)
	theme := ctx.Theme

	labelStyle := apply(look.Content, theme.Typography.Label, theme)
	if s.focused {
		labelStyle = apply(look.Accent, labelStyle, theme)
	}
	header := labelStyle.Render(s.label)
	if s.showValue {
		header += " " + apply(look.Muted, lipgloss.NewStyle(), theme).Render(s.formatValue())
	}

	track := s.track
	track.Width = innerWidth(ctx, metrics, 0)
	return lipgloss.JoinVertical(lipgloss.Left, header, track.ViewAs(s.Ratio()))
}

func (s *Slider) formatValue() string {
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

// Update moves the value on arrow, home and end keys.
func (s *Slider) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return nil
	}
	next := s.value
	switch {
	case keyMatches(keyMsg, keys.Left):
		next -= s.step
	case keyMatches(keyMsg, keys.Right):
		next += s.step
	case keyMatches(keyMsg, keys.Home):
		next = s.min
	case keyMatches(keyMsg, keys.End):
		next = s.max
	default:
		return nil
	}
	if !s.SetValue(next) {
		return nil
	}
	return emit(ValueChangedMsg{ID: s.id, Value: s.value})
}

// SetValue clamps and snaps v, reporting whether the value changed.
func (s *Slider) SetValue(v float64) bool {
	snapped := s.snap(v)
	if snapped == s.value {
		return false
	}
	s.value = snapped
	return true
}

func (s *Slider) snap(v float64) float64 {
	if s.step <= 0 {
		return math.Min(math.Max(v, s.min), s.max)
	}
	v = s.min + math.Round((v-s.min)/s.step)*s.step
	return math.Min(math.Max(trimNoise(v), s.min), s.top())
}

// top is the largest value on the step grid that does not exceed max.
func (s *Slider) top() float64 {
	if s.max <= s.min {
		return s.min
	}
	steps := math.Floor((s.max-s.min)/s.step + 1e-9)
	return trimNoise(s.min + steps*s.step)
}

// trimNoise drops float noise such as 0.30000000000000004.
func trimNoise(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// Ratio returns the value's position in [0,1].
func (s *Slider) Ratio() float64 {
	if s.max <= s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

// Focus gives the slider keyboard focus.
func (s *Slider) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes keyboard focus.
func (s *Slider) Blur() {
	s.focused = false
}

// Focused reports whether the slider has focus.
func (s *Slider) Focused() bool {
	return s.focused
}

// WithID sets the identifier reported in ValueChangedMsg.
func (s *Slider) WithID(id string) *Slider {
	s.id = id
	return s
}

// WithRange sets the bounds and step and re-snaps the current value.
func (s *Slider) WithRange(min, max, step float64) *Slider {
	s.min, s.max, s.step = min, max, step
	s.value = s.snap(s.value)
	return s
}

// WithValue sets the initial value, clamped and snapped.
func (s *Slider) WithValue(v float64) *Slider {
	s.value = s.snap(v)
	return s
}

// WithShowValue toggles the numeric readout.
func (s *Slider) WithShowValue(show bool) *Slider {
	s.showValue = show
	return s
}

// WithVariant sets the slider variant.
func (s *Slider) WithVariant(variant Variant) *Slider {
	s.SetVariant(variant)
	return s
}

// WithSize sets the slider size.
func (s *Slider) WithSize(size Size) *Slider {
	s.SetSize(size)
	return s
}
