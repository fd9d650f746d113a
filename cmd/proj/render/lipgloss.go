package render

import (
	"fmt"
	"io"
	"os"
	"proj/internal/config"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	itemIndent = "  "
	columnGap  = "  "
	ellipsis   = "…"
)

type LipglossRenderer struct {
	width int
	now   func() time.Time
	r     *lipgloss.Renderer

	groupStyle  lipgloss.Style
	nameStyle   lipgloss.Style
	pathStyle   lipgloss.Style
	footerStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:       width,
		now:         time.Now,
		r:           r,
		groupStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		nameStyle:   r.NewStyle().Bold(true),
		pathStyle:   r.NewStyle().Faint(true),
		footerStyle: r.NewStyle().Faint(true),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) WithClock(now func() time.Time) *LipglossRenderer {
	r.now = now
	return r
}

func (r *LipglossRenderer) RenderProjectList(view ProjectListView) string {
	if view.IsEmpty() {
		return "No projects found.\n"
	}

	nameWidth := 0
	for _, g := range view.Groups {
		for _, item := range g.Items {
			nameWidth = max(nameWidth, lipgloss.Width(item.Name))
		}
	}

	var sb strings.Builder
	for i, g := range view.Groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.groupStyle.Render(g.Label))
		sb.WriteString("\n")
		for _, item := range g.Items {
			sb.WriteString(r.renderItem(item, nameWidth))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(r.footerStyle.Render(r.footer(view)))
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item ProjectListItem, nameWidth int) string {
	padding := nameWidth - lipgloss.Width(item.Name)
	prefix := itemIndent + item.Name + strings.Repeat(" ", padding) + columnGap

	path := config.ShortenPath(item.Path)
	if avail := r.width - lipgloss.Width(prefix); avail > 0 {
		path = truncateLeft(path, avail)
	}

	return itemIndent + r.nameStyle.Render(item.Name) + strings.Repeat(" ", padding) + columnGap + r.pathStyle.Render(path)
}

func (r *LipglossRenderer) footer(view ProjectListView) string {
	noun := "projects"
	if view.Count() == 1 {
		noun = "project"
	}
	line := fmt.Sprintf("%d %s", view.Count(), noun)
	if !view.Scanned.IsZero() {
		line += " · scanned " + r.formatTime(view.Scanned, r.now())
	}
	return line
}

// truncateLeft keeps the tail of s, which is the informative end of a path.
func truncateLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return ellipsis
	}
	return ellipsis + string(runes[len(runes)-width+1:])
}

func (r *LipglossRenderer) formatTime(t, now time.Time) string {
	loc := now.Location()
	t = t.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	days := int(today.Sub(target).Hours() / 24)

	timeStr := t.Format("15:04")

	switch {
	case days == 0:
		return "today " + timeStr
	case days == 1:
		return "yesterday " + timeStr
	case days < 7:
		return t.Format("Mon") + " " + timeStr
	case t.Year() == now.Year():
		return t.Format("Jan 2") + " " + timeStr
	default:
		return t.Format("Jan 2 '06") + " " + timeStr
	}
}
