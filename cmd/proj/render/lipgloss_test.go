package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 1, 7, 12, 0, 0, 0, time.Local)

func newTestRenderer(width int) *LipglossRenderer {
	return NewLipglossRenderer(&bytes.Buffer{}, width).WithClock(func() time.Time { return fixedNow })
}

func TestRenderProjectList(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	t.Run("empty", func(t *testing.T) {
		out := newTestRenderer(80).RenderProjectList(ProjectListView{})

		golden.RequireEqual(t, []byte(out))
	})

	t.Run("grouped discovery", func(t *testing.T) {
		out := newTestRenderer(80).RenderProjectList(ProjectListView{
			Groups: []ProjectGroup{
				{Label: "clients", Items: []ProjectListItem{
					{Name: "api", Path: "/work/clients/api"},
					{Name: "web", Path: "/work/clients/web"},
				}},
				{Label: "(root)", Items: []ProjectListItem{
					{Name: "work", Path: "/work"},
				}},
			},
			Scanned: time.Date(2026, 1, 6, 10, 0, 0, 0, time.Local),
		})

		golden.RequireEqual(t, []byte(out))
	})

	t.Run("manual map", func(t *testing.T) {
		out := newTestRenderer(80).RenderProjectList(ProjectListView{
			Groups: []ProjectGroup{
				{Label: "work", Items: []ProjectListItem{{Name: "api", Path: "/home/tester/work/api"}}},
			},
		})

		golden.RequireEqual(t, []byte(out))
	})
}

func TestRenderProjectList_TruncatesLongPaths(t *testing.T) {
	out := newTestRenderer(20).RenderProjectList(ProjectListView{
		Groups: []ProjectGroup{
			{Label: "x", Items: []ProjectListItem{{Name: "api", Path: "/very/long/path/to/api"}}},
		},
	})

	assert.Contains(t, out, "  api  …/path/to/api\n")
}

func TestFormatTime(t *testing.T) {
	r := newTestRenderer(80)

	testCases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"same day", time.Date(2026, 1, 7, 9, 30, 0, 0, time.Local), "today 09:30"},
		{"yesterday", time.Date(2026, 1, 6, 23, 0, 0, 0, time.Local), "yesterday 23:00"},
		{"this week", time.Date(2026, 1, 4, 8, 0, 0, 0, time.Local), "Sun 08:00"},
		{"previous year", time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local), "Jun 1 '25 08:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.formatTime(tc.at, fixedNow))
		})
	}
}
