package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinct/internal/tokens"
	"github.com/alexisbeaulieu97/tinct/internal/ui"
)

// Direction is the main axis of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Alignment positions children on the cross axis of a vertical stack.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Stack lays children out along one axis, optionally separated by a spacing
// token from the current theme.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         *tokens.SpacingKey
	align       Alignment
	constraints Constraints
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child with the same theme value. Width is
// split evenly between the children of a horizontal stack.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	th := ctx.Theme()
	bounds := ctx.Constraints.Tighten(s.constraints)
	childCtx := ctx.WithConstraints(s.childBounds(bounds))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(th)
	if bounds.MaxWidth > 0 {
		style = style.MaxWidth(bounds.MaxWidth)
	}
	if bounds.MaxHeight > 0 {
		style = style.MaxHeight(bounds.MaxHeight)
	}
	if len(views) == 0 {
		return style.Render("")
	}
	return style.Render(s.join(views, s.gapCells(ctx)))
}

func (s *Stack) gapCells(ctx RenderContext) int {
	if s.gap == nil {
		return 0
	}
	return ctx.Theme().Spacing.Get(*s.gap).Cells()
}

func (s *Stack) join(views []string, gap int) string {
	if s.direction == DirectionHorizontal {
		if gap > 0 {
			views = interleave(views, strings.Repeat(" ", gap))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	if gap > 0 {
		// An empty element joins as one blank line.
		views = interleave(views, strings.Repeat("\n", gap-1))
	}
	return lipgloss.JoinVertical(s.align.position(), views...)
}

func interleave(views []string, sep string) []string {
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, view)
	}
	return out
}

func (s *Stack) childBounds(bounds Constraints) Constraints {
	n := len(s.children)
	if s.direction != DirectionHorizontal || bounds.MaxWidth <= 0 || n == 0 {
		return bounds
	}
	available := bounds.MaxWidth
	if s.gap != nil {
		available -= n - 1
	}
	if available > 0 {
		bounds.MaxWidth = available / n
	}
	return bounds
}

func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap separates children by the theme spacing for key.
func (s *Stack) WithGap(key tokens.SpacingKey) *Stack {
	s.gap = &key
	return s
}

// WithAlign sets the cross axis alignment of a vertical stack.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints bounds the stack in addition to the context's bounds.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

func (s *Stack) Children() []ui.Renderable {
	return s.children
}
