package proptest

import (
	"path/filepath"
	"proj/internal/catalog"
	"proj/internal/config"
	"proj/internal/scan"

	"pgregory.net/rapid"
)

var (
	iterDirGen    = rapid.StringMatching(`[a-z]{8}`)
	segmentGen    = rapid.StringMatching(`[a-z]{1,6}`)
	keywordGen    = rapid.StringMatching(`[a-zA-Z]{1,3}`)
	wdGen         = rapid.StringMatching(`/[a-z]{3,8}(/[a-z]{3,8}){0,2}`)
	categoryGen   = rapid.StringMatching(`[a-z][a-z0-9-]{0,8}`)
	projectGen    = rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9_.-]{0,12}`)
	queryPartsGen = rapid.SliceOfN(keywordGen, 0, 3)
)

type markerKind int

const (
	markerNone markerKind = iota
	markerDir
	markerFile
)

type node struct {
	name     string
	marker   markerKind
	files    []string
	children []*node
}

func markerGen() *rapid.Generator[markerKind] {
	return rapid.Custom(func(t *rapid.T) markerKind {
		// Unmarked directories dominate so that trees are deep enough to
		// exercise nesting.
		return rapid.SampledFrom([]markerKind{markerNone, markerNone, markerNone, markerDir, markerFile}).Draw(t, "marker")
	})
}

func treeGen() *rapid.Generator[*node] {
	return rapid.Custom(func(t *rapid.T) *node {
		return genNode(t, "", 0)
	})
}

func genNode(t *rapid.T, name string, depth int) *node {
	n := &node{name: name, marker: markerGen().Draw(t, "marker")}

	taken := map[string]bool{scan.Marker: true}
	files := rapid.IntRange(0, 2).Draw(t, "files")
	for range files {
		f := segmentGen.Draw(t, "file")
		if taken[f] {
			continue
		}
		taken[f] = true
		n.files = append(n.files, f)
	}

	if depth >= maxTreeDepth {
		return n
	}
	children := rapid.IntRange(0, maxChildren).Draw(t, "children")
	for range children {
		c := segmentGen.Draw(t, "child")
		if taken[c] {
			continue
		}
		taken[c] = true
		n.children = append(n.children, genNode(t, c, depth+1))
	}
	return n
}

// reposGen produces a plausible scan result under wd: unique paths, names
// equal to the last path element.
func reposGen(wd string, minCount, maxCount int) *rapid.Generator[[]scan.Repository] {
	return rapid.Custom(func(t *rapid.T) []scan.Repository {
		n := rapid.IntRange(minCount, maxCount).Draw(t, "numRepos")
		seen := map[string]bool{}
		repos := []scan.Repository{}
		for range n {
			var name, path, top string
			switch rapid.IntRange(0, 5).Draw(t, "shape") {
			case 0:
				name, path, top = filepath.Base(wd), wd, scan.RootFolder
			case 1:
				name = projectGen.Draw(t, "leaf")
				path, top = filepath.Join(wd, name), name
			default:
				top = rapid.SampledFrom([]string{"clients", "tools", "Work"}).Draw(t, "top")
				name = projectGen.Draw(t, "leaf")
				path = filepath.Join(wd, top, name)
			}
			if seen[path] {
				continue
			}
			seen[path] = true
			repos = append(repos, scan.Repository{Name: name, Path: path, TopLevelFolder: top})
		}
		return repos
	})
}

func autoCatalogGen() *rapid.Generator[*catalog.Catalog] {
	return rapid.Custom(func(t *rapid.T) *catalog.Catalog {
		wd := wdGen.Draw(t, "wd")
		return catalog.NewAuto(wd, reposGen(wd, minRepos, maxRepos).Draw(t, "repos"))
	})
}

// categoriesGen produces a manual project map with unique category names
// and unique project names per category.
func categoriesGen() *rapid.Generator[config.Categories] {
	return rapid.Custom(func(t *rapid.T) config.Categories {
		var cs config.Categories
		cats := rapid.IntRange(0, 4).Draw(t, "numCategories")
		seenCat := map[string]bool{}
		for range cats {
			name := categoryGen.Draw(t, "category")
			if seenCat[name] {
				continue
			}
			seenCat[name] = true

			c := config.Category{Name: name}
			seenProj := map[string]bool{}
			projects := rapid.IntRange(1, 4).Draw(t, "numProjects")
			for range projects {
				p := projectGen.Draw(t, "project")
				if seenProj[p] {
					continue
				}
				seenProj[p] = true
				c.Projects = append(c.Projects, config.ProjectRef{
					Name: p,
					Path: "/" + name + "/" + p,
				})
			}
			cs = append(cs, c)
		}
		return cs
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("[]"),
		rapid.Just("null"),
		rapid.Just(`{"version": "1"}`),
		rapid.Just(`{"version": 1}`),
		rapid.Just(`{"version": 2, "workingDirectory": "/w", "repos": []}`),
		rapid.Just(`{"version": 1, "workingDirectory": "/w", "repos": [{"name": "", "path": "/w/a"}]}`),
		rapid.Just(`{"version": 1, "workingDirectory": "/w", "repos": [{"name": "a", "path": "rel/a"}]}`),
		rapid.Just(`{"version": 1, "workingDirectory": "/w", "repos": {"a": 1}}`),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(1, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}
