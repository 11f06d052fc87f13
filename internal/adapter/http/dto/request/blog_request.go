package request

import "locotraq/internal/domain/entities"

type AuthorRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

// BlogRequest is the admin payload for creating or updating a blog article.
// Required-field validation happens in the domain layer so the error order
// matches the client library exactly.
type BlogRequest struct {
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	MetaDescription string        `json:"metaDescription"`
	Author          AuthorRequest `json:"author"`
	Image           string        `json:"image"`
	ImagePublicID   string        `json:"imagePublicId"`
	Tags            []string      `json:"tags"`
	Published       bool          `json:"published"`
}

func (r BlogRequest) ToEntity() entities.Blog {
	return entities.Blog{
		Title:           r.Title,
		Content:         r.Content,
		MetaDescription: r.MetaDescription,
		Author: entities.Author{
			Name:   r.Author.Name,
			Avatar: r.Author.Avatar,
			Bio:    r.Author.Bio,
		},
		Image:         r.Image,
		ImagePublicID: r.ImagePublicID,
		Tags:          r.Tags,
		Published:     r.Published,
	}
}
