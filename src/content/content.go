package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Content is the portfolio page data, loaded once at startup from a YAML
// file so the site copy can change without a rebuild.
type Content struct {
	Personal struct {
		Name      string `yaml:"name"`
		Title     string `yaml:"title"`
		Intro     string `yaml:"intro"`
		Statement string `yaml:"statement"`
	} `yaml:"personal"`

	Education []struct {
		Degree      string `yaml:"degree"`
		Institution string `yaml:"institution"`
		Year        string `yaml:"year"`
		Description string `yaml:"description"`
	} `yaml:"education"`

	Skills []string `yaml:"skills"`

	Projects []struct {
		Title       string   `yaml:"title"`
		Description string   `yaml:"description"`
		TechStack   []string `yaml:"tech_stack"`
		Link        string   `yaml:"link"`
	} `yaml:"projects"`

	Achievements []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Year        string `yaml:"year"`
	} `yaml:"achievements"`

	WorkSamples []struct {
		Title string `yaml:"title"`
		Type  string `yaml:"type"`
		Link  string `yaml:"link"`
	} `yaml:"work_samples"`

	Contact struct {
		Email    string `yaml:"email"`
		GitHub   string `yaml:"github"`
		LinkedIn string `yaml:"linkedin"`
		Phone    string `yaml:"phone"`
	} `yaml:"contact"`
}

// Load reads and parses the content file
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content file: %w", err)
	}

	if c.Personal.Name == "" {
		return nil, fmt.Errorf("content file %s is missing personal.name", path)
	}

	return &c, nil
}
