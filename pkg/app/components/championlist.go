package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/champions/pkg/app/styles"
	"github.com/kerbaras/champions/pkg/data"
)

type ChampionListItem struct {
	Champion data.Champion
	Liked    bool
}

// ChampionList is a scrollable one-line-per-champion list with an optional
// name filter.
type ChampionList struct {
	Items         []ChampionListItem
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
	ShowHearts    bool

	query   string
	visible []int // indexes into Items matching query
}

func NewChampionList() *ChampionList {
	return &ChampionList{
		Items:         []ChampionListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  "No champions",
		ShowHearts:    true,
	}
}

func (m *ChampionList) SetItems(items []ChampionListItem) {
	m.Items = items
	m.refilter()
}

// SetFilter keeps only champions whose name contains query (case-insensitive).
func (m *ChampionList) SetFilter(query string) {
	m.query = strings.ToLower(strings.TrimSpace(query))
	m.refilter()
}

func (m *ChampionList) Filter() string {
	return m.query
}

func (m *ChampionList) refilter() {
	m.visible = m.visible[:0]
	for i, item := range m.Items {
		if m.query == "" || strings.Contains(strings.ToLower(item.Champion.Name), m.query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.SelectedIndex >= len(m.visible) && len(m.visible) > 0 {
		m.SelectedIndex = len(m.visible) - 1
	}
	if len(m.visible) == 0 {
		m.SelectedIndex = 0
	}
}

// Len is the number of visible items.
func (m *ChampionList) Len() int {
	return len(m.visible)
}

func (m *ChampionList) Next() {
	if len(m.visible) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.visible) {
		m.SelectedIndex = 0
	}
}

func (m *ChampionList) Prev() {
	if len(m.visible) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.visible) - 1
	}
}

func (m *ChampionList) Selected() *ChampionListItem {
	if len(m.visible) == 0 || m.SelectedIndex >= len(m.visible) {
		return nil
	}
	return &m.Items[m.visible[m.SelectedIndex]]
}

// SetLiked updates the heart of every item with the given champion id.
func (m *ChampionList) SetLiked(id int, liked bool) {
	for i := range m.Items {
		if m.Items[i].Champion.ID == id {
			m.Items[i].Liked = liked
		}
	}
}

func (m *ChampionList) View() string {
	if len(m.visible) == 0 {
		msg := m.EmptyMessage
		if m.query != "" {
			msg = fmt.Sprintf("No champions match %q", m.query)
		}
		emptyMsg := styles.MutedStyle.Render(msg)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	start, end := m.window()

	var b strings.Builder
	for i := start; i < end; i++ {
		item := m.Items[m.visible[i]]

		name := item.Champion.Name
		title := styles.MutedStyle.Render(item.Champion.Title)
		cursor := "  "
		if i == m.SelectedIndex {
			cursor = styles.SelectedStyle.Render("▸ ")
			name = styles.SelectedStyle.Render(name)
		} else {
			name = styles.TextStyle.Render(name)
		}

		line := cursor
		if m.ShowHearts {
			line += styles.Heart(item.Liked) + " "
		}
		line += fmt.Sprintf("%s  %s", name, title)

		b.WriteString(line)
		b.WriteString("\n")
	}

	if end-start < len(m.visible) {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d champions", start+1, end, len(m.visible)),
		))
		b.WriteString("\n")
	}

	return b.String()
}

// window keeps the selection inside a page of Height rows.
func (m *ChampionList) window() (int, int) {
	size := m.Height - 1
	if size < 1 {
		size = 1
	}
	total := len(m.visible)
	if total <= size {
		return 0, total
	}

	start := m.SelectedIndex - size/2
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > total {
		end = total
		start = end - size
	}
	return start, end
}
