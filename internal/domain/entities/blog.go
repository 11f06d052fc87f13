package entities

import (
	"strings"
	"time"
)

// Author is the embedded byline of a blog article.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// Blog is a marketing article managed through the admin dashboard.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Image and ImagePublicID reference the cover asset in the object store.
// ImagePublicID is what the best-effort cleanup on delete uses.
type Blog struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaDescription string    `json:"metaDescription"`
	Author          Author    `json:"author"`
	Image           string    `json:"image"`
	ImagePublicID   string    `json:"imagePublicId,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (b Blog) ResourceID() string { return b.ID }

func (b Blog) AssetID() string { return b.ImagePublicID }

// Validate checks required fields in a fixed order and returns the first
// violation.
func (b Blog) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return missingField("title")
	}
	if strings.TrimSpace(b.Content) == "" {
		return missingField("content")
	}
	if strings.TrimSpace(b.MetaDescription) == "" {
		return missingField("metaDescription")
	}
	if strings.TrimSpace(b.Author.Name) == "" {
		return missingField("author.name")
	}
	if strings.TrimSpace(b.Image) == "" {
		return missingField("image")
	}
	return nil
}
