// Package content defines the portfolio data model and its loader. Content
// ships embedded in the binary and can be overridden by a YAML file and
// FOLIO_* environment variables.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Portfolio is the complete portfolio content.
type Portfolio struct {
	Hero       Hero             `koanf:"hero" json:"hero" yaml:"hero"`
	About      []string         `koanf:"about" json:"about" yaml:"about"`
	Projects   []Project        `koanf:"projects" json:"projects" yaml:"projects"`
	Experience []ExperienceItem `koanf:"experience" json:"experience" yaml:"experience"`
	FAQ        []FAQItem        `koanf:"faq" json:"faq" yaml:"faq"`
	Contact    Contact          `koanf:"contact" json:"contact" yaml:"contact"`
}

// Hero is the landing section.
type Hero struct {
	Name     string `koanf:"name" json:"name" yaml:"name"`
	Tagline  string `koanf:"tagline" json:"tagline" yaml:"tagline"`
	Location string `koanf:"location" json:"location" yaml:"location"`
}

// Project is a single portfolio entry.
type Project struct {
	Name    string   `koanf:"name" json:"name" yaml:"name"`
	Summary string   `koanf:"summary" json:"summary" yaml:"summary"`
	Tech    []string `koanf:"tech" json:"tech" yaml:"tech"`
	Link    string   `koanf:"link" json:"link" yaml:"link"`
}

// ExperienceItem is one accordion entry in the experience section.
type ExperienceItem struct {
	Role    string   `koanf:"role" json:"role" yaml:"role"`
	Org     string   `koanf:"org" json:"org" yaml:"org"`
	Period  string   `koanf:"period" json:"period" yaml:"period"`
	Details []string `koanf:"details" json:"details" yaml:"details"`
}

// FAQItem is one accordion entry in the contact section.
type FAQItem struct {
	Question string `koanf:"question" json:"question" yaml:"question"`
	Answer   string `koanf:"answer" json:"answer" yaml:"answer"`
}

// Contact holds the outbound links.
type Contact struct {
	Email   string `koanf:"email" json:"email" yaml:"email"`
	GitHub  string `koanf:"github" json:"github" yaml:"github"`
	Website string `koanf:"website" json:"website" yaml:"website"`
}

// envPrefix is the environment override namespace, e.g. FOLIO_HERO_NAME.
const envPrefix = "FOLIO_"

// Default returns the embedded portfolio content.
func Default() (Portfolio, error) {
	var p Portfolio
	if err := yamlv3.Unmarshal(defaultYAML, &p); err != nil {
		return Portfolio{}, fmt.Errorf("parsing embedded content: %w", err)
	}
	return p, nil
}

// Load builds the portfolio content: embedded defaults, overlaid by the
// YAML file at path (if non-empty), overlaid by FOLIO_* environment
// variables. The merged result is validated.
func Load(path string) (Portfolio, error) {
	p, err := Default()
	if err != nil {
		return Portfolio{}, err
	}

	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Portfolio{}, fmt.Errorf("accessing content file %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Portfolio{}, fmt.Errorf("reading content file %s: %w", path, err)
		}
	}

	// FOLIO_HERO_NAME -> hero.name, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return Portfolio{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &p); err != nil {
		return Portfolio{}, fmt.Errorf("unmarshalling content: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Validate checks the merged content for the fields the UI cannot render
// without.
func (p Portfolio) Validate() error {
	if strings.TrimSpace(p.Hero.Name) == "" {
		return fmt.Errorf("hero.name is required")
	}
	for i, proj := range p.Projects {
		if strings.TrimSpace(proj.Name) == "" {
			return fmt.Errorf("projects[%d].name is required", i)
		}
	}
	for i, item := range p.Experience {
		if strings.TrimSpace(item.Role) == "" {
			return fmt.Errorf("experience[%d].role is required", i)
		}
	}
	for i, item := range p.FAQ {
		if strings.TrimSpace(item.Question) == "" {
			return fmt.Errorf("faq[%d].question is required", i)
		}
	}
	return nil
}
