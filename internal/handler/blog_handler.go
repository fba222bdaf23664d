package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/repository"
	"github.com/clearskyva/backoffice/internal/service"
)

// BlogHandler covers the public article reads and the admin blog CRUD.
type BlogHandler struct {
	blog *service.BlogService
}

// NewBlogHandler constructs a handler instance.
func NewBlogHandler(blog *service.BlogService) *BlogHandler {
	return &BlogHandler{blog: blog}
}

// ListPublished returns the publicly visible articles.
func (h *BlogHandler) ListPublished(c echo.Context) error {
	records, err := h.blog.ListPublishedPosts(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list posts")
	}
	return Success(c, http.StatusOK, "posts retrieved", records)
}

// GetBySlug resolves a public article read and bumps its view counter.
func (h *BlogHandler) GetBySlug(c echo.Context) error {
	post, err := h.blog.GetPublishedBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrBlogPostNotFound) {
			return Error(c, http.StatusNotFound, "post not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to load post")
	}
	return Success(c, http.StatusOK, "post retrieved", post)
}

// ListAll returns every article, drafts included, for the admin view.
func (h *BlogHandler) ListAll(c echo.Context) error {
	records, err := h.blog.ListPosts(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list posts")
	}
	return Success(c, http.StatusOK, "posts retrieved", records)
}

// Create stores a new draft.
func (h *BlogHandler) Create(c echo.Context) error {
	var req dto.CreateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	post, err := h.blog.CreatePost(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrSlugDuplicate):
			return Error(c, http.StatusConflict, "slug already exists")
		default:
			return Error(c, http.StatusInternalServerError, "failed to create post")
		}
	}

	return Success(c, http.StatusCreated, "post created", post)
}

// Update applies the allow-listed partial update, including publish state.
func (h *BlogHandler) Update(c echo.Context) error {
	var req dto.UpdateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	post, err := h.blog.UpdatePost(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrBlogPostNotFound):
			return Error(c, http.StatusNotFound, "post not found")
		case errors.Is(err, repository.ErrSlugDuplicate):
			return Error(c, http.StatusConflict, "slug already exists")
		default:
			return Error(c, http.StatusInternalServerError, "failed to update post")
		}
	}

	return Success(c, http.StatusOK, "post updated", post)
}

// Delete removes an article permanently.
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blog.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrBlogPostNotFound):
			return Error(c, http.StatusNotFound, "post not found")
		default:
			return Error(c, http.StatusInternalServerError, "failed to delete post")
		}
	}
	return Success(c, http.StatusOK, "post deleted", nil)
}
