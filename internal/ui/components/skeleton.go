package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/prism/internal/ui/motion"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shape is the placeholder layout a Skeleton draws.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeRounded
	ShapePill
	ShapeCircle
	ShapeLines
	ShapeCard
	ShapeTable
)

var shapeNames = [...]string{
	ShapeRectangle: "rectangle",
	ShapeRounded:   "rounded",
	ShapePill:      "pill",
	ShapeCircle:    "circle",
	ShapeLines:     "lines",
	ShapeCard:      "card",
	ShapeTable:     "table",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape resolves a shape name. Empty selects ShapeRectangle.
func ParseShape(value string) (Shape, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return ShapeRectangle, nil
	}
	for i, candidate := range shapeNames {
		if candidate == name {
			return Shape(i), nil
		}
	}
	return ShapeRectangle, fmt.Errorf("unknown shape %q", value)
}

const pulseInterval = 600 * time.Millisecond

var pulseShades = [...]string{"░", "▒"}

// PulseMsg advances the skeleton with the matching ID to its next shade.
type PulseMsg struct {
	ID string
}

// Skeleton is a pulsing placeholder for content that is still loading.
type Skeleton struct {
	BaseComponent
	shape   Shape
	lines   int
	rows    int
	columns int
	phase   int
	pulseID string
}

// NewSkeleton creates a placeholder of the given shape.
func NewSkeleton(shape Shape) *Skeleton {
	return &Skeleton{
		BaseComponent: NewBaseComponent(),
		shape:         shape,
		lines:         3,
		rows:          3,
		columns:       3,
		pulseID:       motion.NextID(),
	}
}

// Init starts pulsing.
func (s *Skeleton) Init() tea.Cmd {
	return s.tick()
}

func (s *Skeleton) tick() tea.Cmd {
	id := s.pulseID
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg { return PulseMsg{ID: id} })
}

// Update advances the pulse phase.
func (s *Skeleton) Update(msg tea.Msg) tea.Cmd {
	pulse, ok := msg.(PulseMsg)
	if !ok || pulse.ID != s.pulseID {
		return nil
	}
	s.phase = (s.phase + 1) % len(pulseShades)
	return s.tick()
}

// Phase returns the current pulse phase.
func (s *Skeleton) Phase() int {
	return s.phase
}

// View renders the skeleton.
func (s *Skeleton) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the placeholder for the current phase.
func (s *Skeleton) ViewWithContext(ctx RenderContext) string {
	look, metrics := s.look(ctx)
	theme := ctx.Theme
	width := innerWidth(ctx, metrics, 0)
	fill := apply(look.Muted, s.ComputeStyle(theme), theme)
	shade := pulseShades[s.phase]
	bar := func(w int) string { return fill.Render(strings.Repeat(shade, max(w, 1))) }

	switch s.shape {
	case ShapeRounded:
		frame := apply(look.Frame, lipgloss.NewStyle(), theme).Border(theme.Borders.Rounded)
		return frame.Render(s.block(bar, width-2, 2))
	case ShapePill:
		return fill.Render("◖") + bar(width/2) + fill.Render("◗")
	case ShapeCircle:
		return lipgloss.JoinVertical(lipgloss.Center, bar(4), bar(6), bar(4))
	case ShapeLines:
		return s.staggered(bar, width, s.lines)
	case ShapeCard:
		avatar := lipgloss.JoinVertical(lipgloss.Center, bar(2), bar(4), bar(2))
		heading := lipgloss.JoinVertical(lipgloss.Left, bar(width/2), bar(width/3))
		top := lipgloss.JoinHorizontal(lipgloss.Top, avatar, "  ", heading)
		return lipgloss.JoinVertical(lipgloss.Left, top, "", s.staggered(bar, width, s.lines))
	case ShapeTable:
		return s.table(bar, width)
	default:
		return s.block(bar, width, 3)
	}
}

func (s *Skeleton) block(bar func(int) string, width, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = bar(width)
	}
	return strings.Join(rows, "\n")
}

// staggered draws lines whose widths shrink toward the last one.
func (s *Skeleton) staggered(bar func(int) string, width, count int) string {
	if count <= 0 {
		count = 1
	}
	rows := make([]string, count)
	for i := range rows {
		w := width
		if i == count-1 && count > 1 {
			w = width * 3 / 5
		} else if i%2 == 1 {
			w = width * 4 / 5
		}
		rows[i] = bar(w)
	}
	return strings.Join(rows, "\n")
}

func (s *Skeleton) table(bar func(int) string, width int) string {
	columns := max(s.columns, 1)
	cell := max((width-(columns-1))/columns, 1)
	rows := make([]string, 0, s.rows+1)
	for r := 0; r <= s.rows; r++ {
		cells := make([]string, columns)
		for c := range cells {
			w := cell
			if r > 0 && (r+c)%2 == 1 {
				w = cell * 2 / 3
			}
			cells[c] = lipgloss.NewStyle().Width(cell).Render(bar(w))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// WithLines sets the number of text lines for lines and card shapes.
func (s *Skeleton) WithLines(lines int) *Skeleton {
	if lines > 0 {
		s.lines = lines
	}
	return s
}

// WithGrid sets the body rows and columns of the table shape.
func (s *Skeleton) WithGrid(rows, columns int) *Skeleton {
	if rows > 0 {
		s.rows = rows
	}
	if columns > 0 {
		s.columns = columns
	}
	return s
}

// WithVariant sets the skeleton variant.
func (s *Skeleton) WithVariant(variant Variant) *Skeleton {
	s.SetVariant(variant)
	return s
}

// WithSize sets the skeleton size.
func (s *Skeleton) WithSize(size Size) *Skeleton {
	s.SetSize(size)
	return s
}

// Shape returns the placeholder shape.
func (s *Skeleton) Shape() Shape {
	return s.shape
}
