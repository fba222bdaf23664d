package dto

// CreateBlogPostRequest captures a new article from the admin editor.
type CreateBlogPostRequest struct {
	Title   string  `json:"title"`
	Slug    string  `json:"slug,omitempty"`
	Content string  `json:"content"`
	Excerpt *string `json:"excerpt,omitempty"`
}

// UpdateBlogPostRequest is the admin PATCH payload for blog posts. All
// fields are optional; only present fields are persisted.
type UpdateBlogPostRequest struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	Excerpt     *string `json:"excerpt,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
	IsFeatured  *bool   `json:"is_featured,omitempty"`
}
