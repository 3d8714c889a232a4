package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/dropzone"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/list"
	"github.com/aretw0/dropzone/pkg/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	typeColumn = "column"
	typeCard   = "card"
)

var (
	colorAccent = lipgloss.Color("#a78bfa")
	colorFocus  = lipgloss.Color("#f472b6")
	colorDim    = lipgloss.Color("#6b7280")

	columnStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1).Width(24)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorDim).Width(20)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(colorFocus)
)

// Card is an item on the board.
type Card struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
}

// Column is a list of cards.
type Column struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Cards []Card `yaml:"cards" json:"cards"`
}

func cardID(c Card) string { return c.ID }

// MoveCard applies a drop result to the board. Drops on a column append to it; drops on a
// card insert next to that card in the card's column. It reports false, leaving a copy of
// columns unchanged, when the result is cancelled or refers to unknown ids.
func MoveCard(columns []Column, r *domain.DropResult) ([]Column, bool) {
	out := make([]Column, len(columns))
	copy(out, columns)
	if r.Cancelled() {
		return out, false
	}

	from, card := -1, Card{}
	for i, col := range out {
		if idx := list.IndexOf(col.Cards, cardID, r.Source.ID); idx >= 0 {
			from, card = i, col.Cards[idx]
			break
		}
	}
	if from < 0 {
		return out, false
	}

	dest := r.Destination
	targetCol := dest.ID
	if dest.Type != typeColumn {
		targetCol = dest.ParentID
	}
	to := -1
	for i, col := range out {
		if col.ID == targetCol {
			to = i
			break
		}
	}
	if to < 0 {
		return out, false
	}

	out[from].Cards = list.RemoveByID(out[from].Cards, cardID, card.ID)
	cards := out[to].Cards
	index := len(cards)
	if dest.Type != typeColumn {
		if idx := list.IndexOf(cards, cardID, dest.ID); idx >= 0 {
			index = idx
			if dest.Position != domain.Before {
				index++
			}
		}
	}
	out[to].Cards = list.InsertAt(cards, index, card)
	return out, true
}

type announcementMsg string

// Board is an interactive kanban board whose cards are moved through the dropzone engine,
// with the mouse or with the keyboard (space to pick up, arrows to choose, enter to drop).
type Board struct {
	engine  *dropzone.Engine
	zones   *zone.Manager
	rectFor func(id string) ports.RectProvider

	columns  []Column
	col, row int
	hover    string
	pointer  domain.Point
	status   string
	messages chan string
	err      error
}

// NewBoard creates a board over columns. Engine options such as dropzone.WithLogger are
// passed through; the announcement sink is always the board's status line.
func NewBoard(columns []Column, opts ...dropzone.Option) (*Board, error) {
	zones := zone.New()
	return newBoard(columns, func(id string) ports.RectProvider { return zoneRect{zones: zones, id: id} }, zones, opts...)
}

func newBoard(columns []Column, rectFor func(string) ports.RectProvider, zones *zone.Manager, opts ...dropzone.Option) (*Board, error) {
	b := &Board{
		zones:    zones,
		rectFor:  rectFor,
		columns:  columns,
		messages: make(chan string, 16),
	}
	eng, err := dropzone.New(append([]dropzone.Option{dropzone.WithAnnouncementSink(b)}, opts...)...)
	if err != nil {
		return nil, err
	}
	b.engine = eng
	eng.OnDragEnd(b.apply)
	b.sync()
	return b, nil
}

// Engine returns the engine the board drives.
func (b *Board) Engine() *dropzone.Engine {
	return b.engine
}

// Columns returns the current board layout.
func (b *Board) Columns() []Column {
	return b.columns
}

// Close releases the engine and the zone manager.
func (b *Board) Close() {
	b.engine.Close()
	if b.zones != nil {
		b.zones.Close()
	}
}

// SetAnnouncement receives announcer text; it may be called from the announcer's timer.
func (b *Board) SetAnnouncement(text string) {
	select {
	case b.messages <- text:
	default:
	}
}

// sync registers every column and card with their current parent and index.
func (b *Board) sync() {
	accept := domain.AcceptTypes(typeCard)
	for _, col := range b.columns {
		b.engine.RegisterDroppable(col.ID, b.rectFor(col.ID), domain.DroppableConfig{
			Type:      typeColumn,
			Accept:    accept,
			Container: true,
			Label:     col.Title,
		})
		for i, c := range col.Cards {
			rect := b.rectFor(c.ID)
			b.engine.RegisterDraggable(c.ID, rect, domain.DraggableConfig{
				Type:     typeCard,
				ParentID: col.ID,
				Index:    domain.IndexOf(i),
				Label:    c.Title,
			})
			b.engine.RegisterDroppable(c.ID, rect, domain.DroppableConfig{
				Type:     typeCard,
				Accept:   accept,
				ParentID: col.ID,
				Label:    c.Title,
			})
		}
	}
}

func (b *Board) apply(ev *domain.DropEvent) {
	columns, ok := MoveCard(b.columns, ev.Result)
	if !ok {
		return
	}
	b.columns = columns
	b.sync()
	for i, col := range b.columns {
		if j := list.IndexOf(col.Cards, cardID, ev.Item.ID); j >= 0 {
			b.col, b.row = i, j
		}
	}
}

func (b *Board) selected() (Card, bool) {
	if b.col < 0 || b.col >= len(b.columns) || b.row >= len(b.columns[b.col].Cards) {
		return Card{}, false
	}
	return b.columns[b.col].Cards[b.row], true
}

func (b *Board) waitForAnnouncement() tea.Cmd {
	return func() tea.Msg {
		return announcementMsg(<-b.messages)
	}
}

func (b *Board) Init() tea.Cmd {
	return b.waitForAnnouncement()
}

func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case announcementMsg:
		b.status = string(msg)
		return b, b.waitForAnnouncement()
	case tea.KeyMsg:
		return b, b.handleKey(msg.String())
	case tea.MouseMsg:
		b.handleMouse(msg)
	}
	return b, nil
}

func (b *Board) handleKey(key string) tea.Cmd {
	if key == "ctrl+c" {
		return tea.Quit
	}
	if b.engine.IsDragging() {
		if _, err := b.engine.HandleKey(key, nil); err != nil {
			b.err = err
		}
		return nil
	}

	switch key {
	case "q":
		return tea.Quit
	case "left", "h":
		b.col = max(0, b.col-1)
		b.row = 0
	case "right", "l":
		b.col = max(0, min(len(b.columns)-1, b.col+1))
		b.row = 0
	case "up", "k":
		b.row = max(0, b.row-1)
	case "down", "j":
		if b.col >= 0 && b.col < len(b.columns) {
			b.row = min(max(0, len(b.columns[b.col].Cards)-1), b.row+1)
		}
	case " ", "space", "enter":
		if c, ok := b.selected(); ok {
			b.err = b.engine.BeginKeyboardDrag(c.ID)
		}
	}
	return nil
}

func (b *Board) handleMouse(msg tea.MouseMsg) {
	p := cellCenter(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || b.engine.IsDragging() {
			return
		}
		for i, col := range b.columns {
			for j, c := range col.Cards {
				r, ok := b.rectFor(c.ID).Rect()
				if ok && r.Contains(p) {
					b.col, b.row = i, j
					b.pointer = p
					b.err = b.engine.StartDrag(domain.Item{ID: c.ID, Type: typeCard, ParentID: col.ID, Index: domain.IndexOf(j)})
					return
				}
			}
		}
	case tea.MouseActionMotion:
		if !b.pointerDrag() {
			return
		}
		b.pointer = p
		target := b.zoneAt(p)
		if target == "" {
			b.engine.DragLeave(b.hover)
			b.hover = ""
			return
		}
		if _, ok, err := b.engine.DragOver(target, p); err == nil && ok {
			b.hover = target
		}
	case tea.MouseActionRelease:
		if !b.pointerDrag() {
			return
		}
		target := b.hover
		b.hover = ""
		if target == "" {
			b.engine.EndDrag(nil)
			return
		}
		_, b.err = b.engine.Drop(target, p, nil)
	}
}

// pointerDrag reports whether the mouse owns the current drag; keyboard drags ignore it.
func (b *Board) pointerDrag() bool {
	s := b.engine.Session()
	return s.Active && s.Mode == domain.ModePointer
}

// zoneAt returns the innermost drop zone under p.
func (b *Board) zoneAt(p domain.Point) string {
	best, bestArea := "", 0.0
	for _, z := range b.engine.ListDroppables() {
		if !z.Bounds.Contains(p) {
			continue
		}
		area := z.Bounds.Width * z.Bounds.Height
		if best == "" || area < bestArea {
			best, bestArea = z.ID, area
		}
	}
	return best
}

func (b *Board) mark(id, s string) string {
	if b.zones == nil {
		return s
	}
	return b.zones.Mark(id, s)
}

func (b *Board) View() string {
	session := b.engine.Session()
	focused := session.Keyboard.CurrentZoneID

	var cols []string
	for i, col := range b.columns {
		parts := []string{titleStyle.Render(col.Title), ""}
		for j, c := range col.Cards {
			style := cardStyle
			switch {
			case session.Active && session.Item.ID == c.ID:
				style = style.Faint(true).BorderForeground(colorAccent)
			case c.ID == focused || c.ID == b.hover:
				style = style.BorderForeground(colorFocus)
			case !session.Active && i == b.col && j == b.row:
				style = style.Bold(true).BorderForeground(colorAccent)
			}
			parts = append(parts, b.mark(c.ID, style.Render(c.Title)), "")
		}
		style := columnStyle
		if col.ID == focused || col.ID == b.hover {
			style = style.BorderForeground(colorFocus)
		}
		cols = append(cols, b.mark(col.ID, style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))))
	}

	var out strings.Builder
	out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	out.WriteString("\n\n")
	out.WriteString(statusStyle.Render(b.status))
	if b.err != nil {
		fmt.Fprintf(&out, "  %v", b.err)
	}
	out.WriteString("\n")
	if session.Active {
		out.WriteString(helpStyle.Render("←↑↓→ choose zone  ⏎ drop  esc cancel"))
	} else {
		out.WriteString(helpStyle.Render("←↑↓→ select  space pick up  mouse drag  q quit"))
	}

	if b.zones == nil {
		return out.String()
	}
	return b.zones.Scan(out.String())
}
