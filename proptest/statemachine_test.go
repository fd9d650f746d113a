package proptest

import (
	"errors"
	"proj/internal/config"
	"proj/internal/scan"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

type fixedSource []scan.Repository

func (f fixedSource) Load(string) ([]scan.Repository, error)    { return slices.Clone(f), nil }
func (f fixedSource) Refresh(string) ([]scan.Repository, error) { return slices.Clone(f), nil }

// categoriesModel tracks the expected manual map as ordered name lists.
type categoriesModel struct {
	order    []string
	projects map[string][]string
}

func (m *categoriesModel) add(category, name string) bool {
	if slices.Contains(m.projects[category], name) {
		return false
	}
	if _, ok := m.projects[category]; !ok {
		m.order = append(m.order, category)
	}
	m.projects[category] = append(m.projects[category], name)
	return true
}

func (m *categoriesModel) remove(category, name string) bool {
	i := slices.Index(m.projects[category], name)
	if i < 0 {
		return false
	}
	m.projects[category] = slices.Delete(m.projects[category], i, i+1)
	if len(m.projects[category]) == 0 {
		delete(m.projects, category)
		m.order = slices.DeleteFunc(m.order, func(c string) bool { return c == category })
	}
	return true
}

func (m *categoriesModel) check(t *rapid.T, cs config.Categories) {
	t.Helper()
	if diff := cmp.Diff(m.order, cs.Names(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("category order drifted (-model +real):\n%s", diff)
	}
	for _, c := range cs {
		var names []string
		for _, p := range c.Projects {
			names = append(names, p.Name)
		}
		if diff := cmp.Diff(m.projects[c.Name], names); diff != "" {
			t.Fatalf("projects of %q drifted (-model +real):\n%s", c.Name, diff)
		}
	}
}

func TestProperty_StateMachine_ManualMap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var cs config.Categories
		model := &categoriesModel{projects: map[string][]string{}}
		categories := []string{"work", "home", "oss"}
		names := []string{"api", "web", "cli", "dotfiles"}

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				c := rapid.SampledFrom(categories).Draw(t, "category")
				n := rapid.SampledFrom(names).Draw(t, "name")

				next, err := cs.Add(c, n, "/"+c+"/"+n)
				if model.add(c, n) {
					if err != nil {
						t.Fatalf("add %s/%s: %v", c, n, err)
					}
					cs = next
				} else if !errors.Is(err, config.ErrProjectExists) {
					t.Fatalf("duplicate add %s/%s: got %v", c, n, err)
				}
			},

			"remove": func(t *rapid.T) {
				c := rapid.SampledFrom(categories).Draw(t, "category")
				n := rapid.SampledFrom(names).Draw(t, "name")
				_, known := model.projects[c]

				next, err := cs.Remove(c, n)
				switch {
				case model.remove(c, n):
					if err != nil {
						t.Fatalf("remove %s/%s: %v", c, n, err)
					}
					cs = next
				case !known:
					if !errors.Is(err, config.ErrUnknownCategory) {
						t.Fatalf("remove from unknown %s: got %v", c, err)
					}
				default:
					if !errors.Is(err, config.ErrUnknownProject) {
						t.Fatalf("remove unknown %s/%s: got %v", c, n, err)
					}
				}
			},

			"": func(t *rapid.T) {
				model.check(t, cs)
			},
		})
	})
}
