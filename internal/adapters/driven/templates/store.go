// Package templates bundles the declarative agent and workflow YAML
// definitions into the binary and implements the TemplateStore port.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.TemplateStore = (*Store)(nil)

//go:embed templates/agents/*.yaml templates/workflows/*.yaml
var bundled embed.FS

// templateHeader is the part of a template file the listing surfaces.
type templateHeader struct {
	Kind        string `yaml:"kind"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Store lists the bundled templates.
type Store struct {
	fsys fs.FS
}

// New creates a store over the embedded templates.
func New() *Store {
	return &Store{fsys: bundled}
}

// List returns every bundled template, sorted by file name.
func (s *Store) List() ([]domain.WorkflowTemplate, error) {
	var templates []domain.WorkflowTemplate
	for _, dir := range []string{"templates/agents", "templates/workflows"} {
		entries, err := fs.ReadDir(s.fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("templates: read %s: %w", dir, err)
		}
		for _, entry := range entries {
			body, err := fs.ReadFile(s.fsys, path.Join(dir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("templates: read %s: %w", entry.Name(), err)
			}

			var header templateHeader
			if err := yaml.Unmarshal(body, &header); err != nil {
				return nil, fmt.Errorf("templates: parse %s: %w", entry.Name(), err)
			}

			templates = append(templates, domain.WorkflowTemplate{
				FileName:    entry.Name(),
				Kind:        header.Kind,
				Name:        header.Name,
				Description: header.Description,
				Body:        string(body),
			})
		}
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].FileName < templates[j].FileName
	})
	return templates, nil
}
