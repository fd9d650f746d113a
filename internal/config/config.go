package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound        = errors.New("configuration file not found")
	ErrUnknownCategory = errors.New("category not found")
	ErrUnknownProject  = errors.New("project not found in category")
	ErrProjectExists   = errors.New("project already exists in category")
)

type Config struct {
	WorkingDirectory string     `yaml:"working_directory,omitempty"`
	Editor           string     `yaml:"editor,omitempty"`
	Projects         Categories `yaml:"projects,omitempty"`
}

// AutoDiscovery reports whether a working directory is configured. When it
// is, the manual project map is ignored entirely.
func (c *Config) AutoDiscovery() bool {
	return c.WorkingDirectory != ""
}

// ResolvedWorkingDirectory returns the working directory with ~ expanded.
func (c *Config) ResolvedWorkingDirectory() (string, error) {
	if c.WorkingDirectory == "" {
		return "", nil
	}
	return ExpandPath(c.WorkingDirectory)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s (run 'proj setup' to create one)", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrEmpty is Load without the missing-file error, for commands that
// create or edit the configuration.
func LoadOrEmpty(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return &Config{}, nil
	}
	return cfg, err
}

func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

type ProjectRef struct {
	Name string
	Path string
}

type Category struct {
	Name     string
	Projects []ProjectRef
}

// Categories is the manual category -> name -> path map. It is a slice so
// the order written in the config file is the order shown to the user.
type Categories []Category

func (cs Categories) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

func (cs Categories) Lookup(category string) (Category, bool) {
	i := cs.index(category)
	if i < 0 {
		return Category{}, false
	}
	return cs[i], true
}

func (cs Categories) index(category string) int {
	return slices.IndexFunc(cs, func(c Category) bool { return c.Name == category })
}

// Add returns a copy of cs with the project appended to category, creating
// the category at the end if needed.
func (cs Categories) Add(category, name, path string) (Categories, error) {
	out := cs.clone()
	i := out.index(category)
	if i < 0 {
		return append(out, Category{Name: category, Projects: []ProjectRef{{Name: name, Path: path}}}), nil
	}
	if slices.ContainsFunc(out[i].Projects, func(p ProjectRef) bool { return p.Name == name }) {
		return nil, fmt.Errorf("%w: %s/%s", ErrProjectExists, category, name)
	}
	out[i].Projects = append(out[i].Projects, ProjectRef{Name: name, Path: path})
	return out, nil
}

// Remove returns a copy of cs without the project. A category left empty is
// dropped.
func (cs Categories) Remove(category, name string) (Categories, error) {
	out := cs.clone()
	i := out.index(category)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	j := slices.IndexFunc(out[i].Projects, func(p ProjectRef) bool { return p.Name == name })
	if j < 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownProject, category, name)
	}
	out[i].Projects = slices.Delete(out[i].Projects, j, j+1)
	if len(out[i].Projects) == 0 {
		out = slices.Delete(out, i, i+1)
	}
	return out, nil
}

func (cs Categories) clone() Categories {
	out := make(Categories, len(cs))
	for i, c := range cs {
		out[i] = Category{Name: c.Name, Projects: slices.Clone(c.Projects)}
	}
	return out
}

func (cs *Categories) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: projects must be a mapping of category to projects", node.Line)
	}

	var out Categories
	seenCategories := make(map[string]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if seenCategories[keyNode.Value] {
			return fmt.Errorf("line %d: duplicate category %q", keyNode.Line, keyNode.Value)
		}
		seenCategories[keyNode.Value] = true
		if valNode.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: category %q must be a mapping of name to path", valNode.Line, keyNode.Value)
		}

		cat := Category{Name: keyNode.Value}
		seenProjects := make(map[string]bool)
		for j := 0; j+1 < len(valNode.Content); j += 2 {
			nameNode := valNode.Content[j]
			if seenProjects[nameNode.Value] {
				return fmt.Errorf("line %d: duplicate project %q in category %q", nameNode.Line, nameNode.Value, keyNode.Value)
			}
			seenProjects[nameNode.Value] = true

			var path string
			if err := valNode.Content[j+1].Decode(&path); err != nil {
				return fmt.Errorf("category %q project %q: %w", keyNode.Value, valNode.Content[j].Value, err)
			}
			cat.Projects = append(cat.Projects, ProjectRef{Name: valNode.Content[j].Value, Path: path})
		}
		out = append(out, cat)
	}

	*cs = out
	return nil
}

func (cs Categories) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range cs {
		projects := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range c.Projects {
			projects.Content = append(projects.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Path},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name},
			projects,
		)
	}
	return root, nil
}
