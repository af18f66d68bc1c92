package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9-]+`)
var slugDashes = regexp.MustCompile(`-{2,}`)

// Slugify turns a title into a lowercase url-safe slug
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugDashes.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = uuid.NewString()[:8]
	}
	return slug
}

// UniqueSlug appends a short random suffix to a slug that already exists
func UniqueSlug(slug string) string {
	return slug + "-" + uuid.NewString()[:8]
}
