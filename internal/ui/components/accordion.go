package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/accordion"
	"github.com/alexisbeaulieu97/prism/internal/ui"
	"github.com/alexisbeaulieu97/prism/internal/ui/motion"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	chevronOpen   = "▾"
	chevronClosed = "▸"
)

// Accordion renders an accordion.Group as a list of collapsible sections.
// Up and down move the cursor, enter or space toggles the item under it.
// Content is revealed through a spring so opening reads as an expansion.
type Accordion struct {
	BaseComponent
	id      string
	group   accordion.Group
	cursor  int
	focused bool
	animID  string
	ticking bool
	reveal  []motion.Transition
}

// NewAccordion builds the view over a fresh group.
func NewAccordion(items []accordion.Item, mode accordion.Mode) *Accordion {
	a := &Accordion{
		BaseComponent: NewBaseComponent(),
		animID:        motion.NextID(),
	}
	return a.WithGroup(accordion.NewGroup(items, mode))
}

// WithGroup replaces the controlled group and snaps reveals to its state.
func (a *Accordion) WithGroup(group accordion.Group) *Accordion {
	a.group = group
	a.reveal = make([]motion.Transition, group.Len())
	for i := range a.reveal {
		open, _ := group.IsOpen(i)
		a.reveal[i] = motion.Default().Snap(boolTarget(open))
	}
	if a.cursor >= group.Len() {
		a.cursor = 0
	}
	return a
}

// View renders the accordion.
func (a *Accordion) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders headers with chevrons and the revealed part of open items.
func (a *Accordion) ViewWithContext(ctx RenderContext) string {
	look, metrics := a.look(ctx)
	theme := ctx.Theme
	width := innerWidth(ctx, metrics, 2+2*metrics.PaddingX)
	contentWidth := width - 2
	items := a.group.Items()

	rows := make([]string, 0, len(items)*2)
	for i, item := range items {
		open, _ := a.group.IsOpen(i)
		chevron := chevronClosed
		if open {
			chevron = chevronOpen
		}

		header := apply(look.Content, theme.Typography.Label, theme)
		if a.focused && i == a.cursor {
			header = apply(look.Accent, header, theme)
		}
		rows = append(rows, header.Render(chevron+" "+item.Title))

		if body := a.revealed(ctx.WithWidth(contentWidth), item, i); body != "" {
			style := apply(look.Muted, lipgloss.NewStyle(), theme).PaddingLeft(2).Width(contentWidth + 2)
			rows = append(rows, style.Render(body))
		}
		if i < len(items)-1 && metrics.Gap > 0 {
			rows = append(rows, "")
		}
	}

	frame := apply(look.Frame, a.ComputeStyle(theme), theme).
		Padding(metrics.PaddingY, metrics.PaddingX).
		Width(width + 2*metrics.PaddingX)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// revealed returns the visible lines of an item's content for the current frame.
func (a *Accordion) revealed(ctx RenderContext, item accordion.Item, index int) string {
	if index >= len(a.reveal) {
		return ""
	}
	progress := a.reveal[index].Value()
	if progress <= 0 {
		return ""
	}
	body := renderContent(ctx, item.Content)
	if body == "" {
		return ""
	}
	lines := strings.Split(lipgloss.NewStyle().Width(ctx.Width).Render(body), "\n")
	visible := int(math.Ceil(progress * float64(len(lines))))
	if visible > len(lines) {
		visible = len(lines)
	}
	return strings.Join(lines[:visible], "\n")
}

func renderContent(ctx RenderContext, content any) string {
	switch c := content.(type) {
	case nil:
		return ""
	case string:
		return c
	case ui.Renderable:
		return renderChild(ctx, c)
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// Update moves the cursor, toggles items and advances reveal frames.
func (a *Accordion) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case motion.FrameMsg:
		if msg.ID != a.animID || !a.ticking {
			return nil
		}
		return a.step()
	case tea.KeyMsg:
		if !a.focused || a.group.Len() == 0 {
			return nil
		}
		switch {
		case keyMatches(msg, keys.Up):
			if a.cursor > 0 {
				a.cursor--
			}
		case keyMatches(msg, keys.Down):
			if a.cursor < a.group.Len()-1 {
				a.cursor++
			}
		case keyMatches(msg, keys.Activate):
			cmd, _ := a.Toggle(a.cursor)
			return cmd
		}
	}
	return nil
}

// Toggle applies a click on index and starts the reveal animation.
func (a *Accordion) Toggle(index int) (tea.Cmd, error) {
	next, err := a.group.Toggle(index)
	if err != nil {
		return nil, err
	}
	a.group = next
	for i := range a.reveal {
		open, _ := a.group.IsOpen(i)
		a.reveal[i] = a.reveal[i].SetTarget(boolTarget(open))
	}
	open, _ := a.group.IsOpen(index)
	return tea.Batch(
		emit(ToggledMsg{ID: a.id, Index: index, Open: open}),
		a.startTicking(),
	), nil
}

// startTicking schedules the first frame unless a frame chain is already running.
func (a *Accordion) startTicking() tea.Cmd {
	if a.ticking {
		return nil
	}
	a.ticking = true
	return motion.Tick(a.animID, motion.DefaultFPS)
}

func (a *Accordion) step() tea.Cmd {
	animating := false
	for i := range a.reveal {
		a.reveal[i] = a.reveal[i].Step()
		if !a.reveal[i].Settled() {
			animating = true
		}
	}
	if !animating {
		a.ticking = false
		return nil
	}
	return motion.Tick(a.animID, motion.DefaultFPS)
}

// Settle jumps every reveal to its target.
func (a *Accordion) Settle() {
	for i := range a.reveal {
		a.reveal[i] = a.reveal[i].Snap(a.reveal[i].Target())
	}
}

// Animating reports whether any reveal is still moving.
func (a *Accordion) Animating() bool {
	for _, r := range a.reveal {
		if !r.Settled() {
			return true
		}
	}
	return false
}

// Group returns the controlled group value.
func (a *Accordion) Group() accordion.Group {
	return a.group
}

// Cursor returns the index of the highlighted item.
func (a *Accordion) Cursor() int {
	return a.cursor
}

// Focus gives the accordion keyboard focus.
func (a *Accordion) Focus() tea.Cmd {
	a.focused = true
	return nil
}

// Blur removes keyboard focus.
func (a *Accordion) Blur() {
	a.focused = false
}

// Focused reports whether the accordion has focus.
func (a *Accordion) Focused() bool {
	return a.focused
}

// WithID sets the identifier reported in ToggledMsg.
func (a *Accordion) WithID(id string) *Accordion {
	a.id = id
	return a
}

// WithVariant sets the accordion variant.
func (a *Accordion) WithVariant(variant Variant) *Accordion {
	a.SetVariant(variant)
	return a
}

// WithSize sets the accordion size.
func (a *Accordion) WithSize(size Size) *Accordion {
	a.SetSize(size)
	return a
}

func boolTarget(open bool) float64 {
	if open {
		return 1
	}
	return 0
}
