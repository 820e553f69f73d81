// Package pages holds the canned copy for the static site pages.
package pages

import (
	_ "embed"
	"fmt"
	"net/mail"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type Section struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

type Hero struct {
	Title    string    `yaml:"title"`
	Intro    string    `yaml:"intro"`
	Sections []Section `yaml:"sections"`
	Thanks   string    `yaml:"thanks"`
}

type Content struct {
	Home    Hero `yaml:"home"`
	About   Hero `yaml:"about"`
	Contact Hero `yaml:"contact"`
}

// Default returns the embedded page copy.
func Default() (Content, error) { return Parse(defaultContent) }

func Parse(b []byte) (Content, error) {
	var c Content
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Content{}, fmt.Errorf("parse page content: %w", err)
	}
	for name, h := range map[string]Hero{"home": c.Home, "about": c.About, "contact": c.Contact} {
		if strings.TrimSpace(h.Title) == "" {
			return Content{}, fmt.Errorf("parse page content: %s.title is required", name)
		}
	}
	return c, nil
}

// ContactMessage is a submitted contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// FieldErrors maps form field names to a validation message.
type FieldErrors map[string]string

// Validate mirrors the form's required fields and email input type.
func (m ContactMessage) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = "Name is required."
	}
	if strings.TrimSpace(m.Email) == "" {
		errs["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(m.Email); err != nil {
		errs["email"] = "Enter a valid email address."
	}
	if strings.TrimSpace(m.Message) == "" {
		errs["message"] = "Message is required."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
