package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/entity"
	"github.com/clearskyva/backoffice/internal/repository"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// BlogService manages marketing-site articles.
type BlogService struct {
	repo repository.BlogPostsRepository
	now  func() time.Time
}

// NewBlogService builds a new BlogService.
func NewBlogService(repo repository.BlogPostsRepository) *BlogService {
	return &BlogService{repo: repo, now: time.Now}
}

// CreatePost stores a new draft. A missing slug is derived from the title.
func (s *BlogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*entity.BlogPost, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)
	req.Content = strings.TrimSpace(req.Content)

	if req.Title == "" {
		return nil, ValidationError{Message: "title is required"}
	}
	if req.Content == "" {
		return nil, ValidationError{Message: "content is required"}
	}
	if req.Slug == "" {
		req.Slug = Slugify(req.Title)
	}
	if req.Slug == "" {
		return nil, ValidationError{Message: "slug could not be derived from title"}
	}

	post := &entity.BlogPost{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Excerpt: req.Excerpt,
	}
	return s.repo.Insert(ctx, post)
}

// ListPosts returns all posts for the admin view.
func (s *BlogService) ListPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return s.repo.List(ctx, false)
}

// ListPublishedPosts returns the publicly visible articles.
func (s *BlogService) ListPublishedPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return s.repo.List(ctx, true)
}

// GetPublishedBySlug resolves a public article read and bumps its view
// counter. Drafts behave as missing.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, repository.ErrBlogPostNotFound
	}

	if err := s.repo.IncrementViews(ctx, post.ID); err == nil {
		post.Views++
	}
	return post, nil
}

// UpdatePost applies the allow-listed partial update. Publish-state
// changes route through the entity transition so published_at always
// follows is_published.
func (s *BlogService) UpdatePost(ctx context.Context, id string, req dto.UpdateBlogPostRequest) (*entity.BlogPost, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid blog post id"}
	}

	update := repository.BlogPostUpdate{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	}

	if req.IsPublished != nil {
		var scratch entity.BlogPost
		scratch.SetPublished(*req.IsPublished, s.now().UTC())
		update.PublishedAt = scratch.PublishedAt
		update.SetPublishedAt = true
	}

	return s.repo.Update(ctx, postID, update)
}

// DeletePost removes an article permanently.
func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid blog post id"}
	}
	return s.repo.Delete(ctx, postID)
}

// Slugify lowercases the input and collapses runs of non-alphanumerics
// into single hyphens.
func Slugify(input string) string {
	slug := strings.ToLower(strings.TrimSpace(input))
	slug = slugStrip.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
