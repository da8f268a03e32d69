// Package content holds the copy shown on the portfolio page.
//
// Content is read from YAML. The built-in copy is embedded in the binary and
// can be overridden with a file on disk, which is reloaded on change in
// development and on a schedule in production.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// DefaultPhraseInterval is how long each hero phrase stays on screen.
const DefaultPhraseInterval = 3 * time.Second

// Skill colors map to the site palette.
const (
	ColorPrimary   = "primary"
	ColorSecondary = "secondary"
	ColorAccent    = "accent"
	ColorHighlight = "highlight"
	ColorEnergy    = "energy"
)

var palette = map[string]string{
	ColorPrimary:   "#6C63FF",
	ColorSecondary: "#FF6584",
	ColorAccent:    "#4ECDC4",
	ColorHighlight: "#FFC857",
	ColorEnergy:    "#FF5A5F",
}

// Hex returns the palette value for a color name, or "" if unknown.
func Hex(color string) string {
	return palette[color]
}

// Content is everything the landing page renders.
type Content struct {
	Profile  Profile  `yaml:"profile"`
	Hero     Hero     `yaml:"hero"`
	About    About    `yaml:"about"`
	Projects Projects `yaml:"projects"`
	Contact  Contact  `yaml:"contact"`
	Discord  Discord  `yaml:"discord"`
	Socials  []Social `yaml:"socials"`
}

type Profile struct {
	Name        string `yaml:"name"`
	Brand       string `yaml:"brand"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Hero struct {
	Greeting       string        `yaml:"greeting"`
	Lead           string        `yaml:"lead"`
	Tagline        string        `yaml:"tagline"`
	Phrases        []string      `yaml:"phrases"`
	PhraseInterval time.Duration `yaml:"phrase_interval"`
	Code           []string      `yaml:"code"`
	Primary        Link          `yaml:"primary"`
	Secondary      Link          `yaml:"secondary"`
}

type About struct {
	Heading string  `yaml:"heading"`
	Image   string  `yaml:"image"`
	Body    string  `yaml:"body"`
	Skills  []Skill `yaml:"skills"`

	// HTML is Body rendered from markdown.
	HTML template.HTML `yaml:"-"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type Projects struct {
	Heading string    `yaml:"heading"`
	Intro   string    `yaml:"intro"`
	Items   []Project `yaml:"items"`
}

type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Tech        []string `yaml:"tech"`
	GithubURL   string   `yaml:"github_url"`
	DemoURL     string   `yaml:"demo_url"`
	Featured    bool     `yaml:"featured"`
}

type Contact struct {
	Heading     string `yaml:"heading"`
	Intro       string `yaml:"intro"`
	FormHeading string `yaml:"form_heading"`
	SubmitLabel string `yaml:"submit_label"`
}

type Discord struct {
	Heading    string `yaml:"heading"`
	Intro      string `yaml:"intro"`
	Username   string `yaml:"username"`
	ServerName string `yaml:"server_name"`
	InviteURL  string `yaml:"invite_url"`
}

// InviteLabel is the invite URL without its scheme.
func (d Discord) InviteLabel() string {
	s := strings.TrimPrefix(d.InviteURL, "https://")
	return strings.TrimPrefix(s, "http://")
}

type Social struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	return Parse(defaultYAML)
}

// Parse decodes YAML content, applies defaults and renders markdown.
func Parse(data []byte) (*Content, error) {
	c := &Content{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Hero.PhraseInterval <= 0 {
		c.Hero.PhraseInterval = DefaultPhraseInterval
	}
	html, err := renderMarkdown(c.About.Body)
	if err != nil {
		return nil, fmt.Errorf("render about: %w", err)
	}
	c.About.HTML = html
	return c, nil
}

func (c *Content) validate() error {
	var errs []error
	if strings.TrimSpace(c.Profile.Name) == "" {
		errs = append(errs, errors.New("profile.name is required"))
	}
	if len(c.Hero.Phrases) == 0 {
		errs = append(errs, errors.New("hero.phrases must not be empty"))
	}
	for i, s := range c.About.Skills {
		if _, ok := palette[s.Color]; !ok {
			errs = append(errs, fmt.Errorf("about.skills[%d]: unknown color %q", i, s.Color))
		}
	}
	seen := make(map[int]bool, len(c.Projects.Items))
	for i, p := range c.Projects.Items {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("projects.items[%d]: duplicate id %d", i, p.ID))
		}
		seen[p.ID] = true
	}
	return errors.Join(errs...)
}
