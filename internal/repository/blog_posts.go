package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearskyva/backoffice/internal/entity"
)

// Sentinel errors for blog post lookups and writes.
var (
	ErrBlogPostNotFound = errors.New("blog post not found")
	ErrSlugDuplicate    = errors.New("slug already exists")
)

// BlogPostUpdate carries the allow-listed partial update for a blog post.
// PublishedAt is written whenever SetPublishedAt is true, including the
// nil value that clears the column on unpublish.
type BlogPostUpdate struct {
	Title          *string
	Content        *string
	Excerpt        *string
	IsPublished    *bool
	IsFeatured     *bool
	PublishedAt    *time.Time
	SetPublishedAt bool
}

// BlogPostsRepository declares persistence operations for blog posts.
type BlogPostsRepository interface {
	Insert(ctx context.Context, post *entity.BlogPost) (*entity.BlogPost, error)
	List(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, update BlogPostUpdate) (*entity.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXBlogPostsRepository implements BlogPostsRepository with pgx.
type PGXBlogPostsRepository struct {
	pool pgxPool
}

// NewPGXBlogPostsRepository instantiates a blog posts repository.
func NewPGXBlogPostsRepository(pool *pgxpool.Pool) *PGXBlogPostsRepository {
	return &PGXBlogPostsRepository{pool: pool}
}

const blogPostColumns = `id, title, slug, content, excerpt, is_published, is_featured, published_at, views, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := row.Scan(&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt, &post.IsPublished, &post.IsFeatured, &post.PublishedAt, &post.Views, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Insert stores a new article as an unpublished draft.
func (r *PGXBlogPostsRepository) Insert(ctx context.Context, post *entity.BlogPost) (*entity.BlogPost, error) {
	if post == nil {
		return nil, fmt.Errorf("blog post payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO blog_posts (title, slug, content, excerpt, is_published, is_featured)
        VALUES ($1, $2, $3, $4, FALSE, FALSE)
        RETURNING `+blogPostColumns,
		post.Title, post.Slug, post.Content, post.Excerpt)

	created, err := scanBlogPost(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("%w: %v", ErrSlugDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert blog post: %w", err)
	}
	return created, nil
}

// List returns posts, newest first. When publishedOnly is set, drafts are
// excluded and the order follows published_at.
func (r *PGXBlogPostsRepository) List(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE is_published = TRUE ORDER BY published_at DESC`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []entity.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog posts: %w", err)
	}
	return posts, nil
}

// FindByID retrieves a post by identifier.
func (r *PGXBlogPostsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1`, id)

	post, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("query blog post by id: %w", err)
	}
	return post, nil
}

// FindBySlug retrieves a post by slug.
func (r *PGXBlogPostsRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = $1`, slug)

	post, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("query blog post by slug: %w", err)
	}
	return post, nil
}

// IncrementViews bumps the view counter without touching updated_at.
func (r *PGXBlogPostsRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment blog post views: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}

// Update patches post attributes and stamps updated_at.
func (r *PGXBlogPostsRepository) Update(ctx context.Context, id uuid.UUID, update BlogPostUpdate) (*entity.BlogPost, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	appendClause := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if update.Title != nil {
		appendClause("title", *update.Title)
	}
	if update.Content != nil {
		appendClause("content", *update.Content)
	}
	if update.Excerpt != nil {
		appendClause("excerpt", *update.Excerpt)
	}
	if update.IsPublished != nil {
		appendClause("is_published", *update.IsPublished)
	}
	if update.IsFeatured != nil {
		appendClause("is_featured", *update.IsFeatured)
	}
	if update.SetPublishedAt {
		appendClause("published_at", update.PublishedAt)
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE blog_posts SET %s WHERE id = $%d RETURNING %s`, strings.Join(setClauses, ", "), idx, blogPostColumns)

	post, err := scanBlogPost(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogPostNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("%w: %v", ErrSlugDuplicate, pgErr)
		}
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return post, nil
}

// Delete removes a post by id.
func (r *PGXBlogPostsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}
