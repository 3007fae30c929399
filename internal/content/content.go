// Package content holds the static copy rendered on the portfolio page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// ErrMissingName is returned when a catalog has no personal name.
var ErrMissingName = errors.New("content: personal name is required")

type Personal struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	CV       string `yaml:"cv"`
}

type Link struct {
	Text string
	Href string
	Icon string
}

type Hero struct {
	Icon string `yaml:"icon"`
	CTA  struct {
		Text   string `yaml:"text"`
		Icon   string `yaml:"icon"`
		Target string `yaml:"target"`
	} `yaml:"cta"`
}

type SkillGroup struct {
	Title string   `yaml:"title"`
	Icon  string   `yaml:"icon"`
	List  []string `yaml:"list"`
}

type About struct {
	Paragraphs []string     `yaml:"paragraphs"`
	Skills     []SkillGroup `yaml:"skills"`
}

type Project struct {
	ID           int      `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	LiveURL      string   `yaml:"live_url"`
	GitHubURL    string   `yaml:"github_url"`
	Featured     bool     `yaml:"featured"`
}

type Contact struct {
	Intro     string `yaml:"intro"`
	FormTitle string `yaml:"form_title"`
	FormIntro string `yaml:"form_intro"`
}

// Catalog is everything the page renders besides the motion field.
type Catalog struct {
	Personal Personal  `yaml:"personal"`
	Hero     Hero      `yaml:"hero"`
	About    About     `yaml:"about"`
	Projects []Project `yaml:"projects"`
	Contact  Contact   `yaml:"contact"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if c.Personal.Name == "" {
		return nil, ErrMissingName
	}
	return &c, nil
}

// SocialLinks are the hero's outbound links.
func (c *Catalog) SocialLinks() []Link {
	var links []Link
	if c.Personal.GitHub != "" {
		links = append(links, Link{Text: "GitHub", Href: c.Personal.GitHub, Icon: "github"})
	}
	if c.Personal.LinkedIn != "" {
		links = append(links, Link{Text: "LinkedIn", Href: c.Personal.LinkedIn, Icon: "linkedin"})
	}
	if c.Personal.Email != "" {
		links = append(links, Link{Text: "Email", Href: "mailto:" + c.Personal.Email, Icon: "mail"})
	}
	return links
}

// ContactLinks are the links shown beside the contact form.
func (c *Catalog) ContactLinks() []Link {
	var links []Link
	if c.Personal.Email != "" {
		links = append(links, Link{Text: "Email Me", Href: "mailto:" + c.Personal.Email, Icon: "mail"})
	}
	if c.Personal.LinkedIn != "" {
		links = append(links, Link{Text: "LinkedIn", Href: c.Personal.LinkedIn, Icon: "linkedin"})
	}
	return links
}

// ShowcaseProjects returns the projects with featured ones first, keeping
// catalog order within each group.
func (c *Catalog) ShowcaseProjects() []Project {
	out := slices.Clone(c.Projects)
	slices.SortStableFunc(out, func(a, b Project) int {
		switch {
		case a.Featured == b.Featured:
			return 0
		case a.Featured:
			return -1
		default:
			return 1
		}
	})
	return out
}
