package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item. selected is true for the highlighted item.
type RenderFunc[T any] func(item T, selected bool, width int) string

// KeyMap defines the navigation bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns arrow, vim and paging bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
	}
}

// Model is a list of items each rendered as a block of itemHeight lines.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	keys       KeyMap

	// selected is the highlighted item index (0-based)
	selected int

	// first is the index of the first visible item
	first int

	// height and width of the viewport, in lines and columns
	height int
	width  int

	// itemHeight is the number of lines one rendered item occupies
	itemHeight int
}

// New creates a list. itemHeight below 1 is treated as 1.
func New[T any](items []T, height, width, itemHeight int, renderFunc RenderFunc[T]) *Model[T] {
	if itemHeight < 1 {
		itemHeight = 1
	}
	return &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
		height:     height,
		width:      width,
		itemHeight: itemHeight,
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.SetSelected(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.SetSelected(m.selected + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.SetSelected(m.selected - m.Capacity())
	case key.Matches(msg, m.keys.PageDown):
		m.SetSelected(m.selected + m.Capacity())
	case key.Matches(msg, m.keys.Home):
		m.SetSelected(0)
	case key.Matches(msg, m.keys.End):
		m.SetSelected(len(m.items) - 1)
	}
}

// Capacity returns how many items fit in the viewport, at least one.
func (m *Model[T]) Capacity() int {
	n := m.height / m.itemHeight
	if n < 1 {
		return 1
	}
	return n
}

// SetSize changes the viewport and keeps the selection visible.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollToSelection()
}

// SetSelected moves the selection, capped to valid bounds.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.scrollToSelection()
}

// scrollToSelection moves the window the least distance that shows the selection.
func (m *Model[T]) scrollToSelection() {
	capacity := m.Capacity()
	if m.selected < m.first {
		m.first = m.selected
	}
	if m.selected >= m.first+capacity {
		m.first = m.selected - capacity + 1
	}
	if maxFirst := len(m.items) - capacity; m.first > maxFirst {
		m.first = max(maxFirst, 0)
	}
}

// View renders the visible items separated by newlines.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	last := min(m.first+m.Capacity(), len(m.items))
	blocks := make([]string, 0, last-m.first)
	for i := m.first; i < last; i++ {
		blocks = append(blocks, m.renderFunc(m.items[i], i == m.selected, m.width))
	}
	return strings.Join(blocks, "\n")
}

// ItemCount returns the number of items.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the highlighted index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// VisibleRange returns the [from, to) item indexes currently shown.
func (m *Model[T]) VisibleRange() (int, int) {
	return m.first, min(m.first+m.Capacity(), len(m.items))
}

// SelectedItem returns the highlighted item, or nil for an empty list.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
