package render

import "time"

type Renderer interface {
	RenderProjectList(view ProjectListView) string
}

type ProjectListView struct {
	Groups []ProjectGroup
	// Scanned is when the listed repositories were discovered. Zero for the
	// manual project map.
	Scanned time.Time
}

type ProjectGroup struct {
	Label string
	Items []ProjectListItem
}

type ProjectListItem struct {
	Name string
	Path string
}

func (v ProjectListView) IsEmpty() bool {
	return v.Count() == 0
}

func (v ProjectListView) Count() int {
	n := 0
	for _, g := range v.Groups {
		n += len(g.Items)
	}
	return n
}
