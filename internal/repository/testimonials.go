package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearskyva/backoffice/internal/entity"
)

// ErrTestimonialNotFound is returned when no testimonial matches the lookup criteria.
var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialsRepository declares persistence operations for testimonials.
type TestimonialsRepository interface {
	Insert(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error)
	List(ctx context.Context, approvedOnly bool) ([]entity.Testimonial, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	UpdateFlags(ctx context.Context, id uuid.UUID, isApproved, isFeatured *bool) (*entity.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXTestimonialsRepository implements TestimonialsRepository with pgx.
type PGXTestimonialsRepository struct {
	pool pgxPool
}

// NewPGXTestimonialsRepository instantiates a testimonials repository.
func NewPGXTestimonialsRepository(pool *pgxpool.Pool) *PGXTestimonialsRepository {
	return &PGXTestimonialsRepository{pool: pool}
}

const testimonialColumns = `id, client_name, company, role, email, testimonial, rating, service_type, is_approved, is_featured, created_at, updated_at`

func scanTestimonial(row pgx.Row) (*entity.Testimonial, error) {
	var tm entity.Testimonial
	err := row.Scan(&tm.ID, &tm.ClientName, &tm.Company, &tm.Role, &tm.Email, &tm.Text, &tm.Rating, &tm.ServiceType, &tm.IsApproved, &tm.IsFeatured, &tm.CreatedAt, &tm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

// Insert stores a fresh submission. New rows always start unapproved and
// unfeatured regardless of what the caller set on the entity.
func (r *PGXTestimonialsRepository) Insert(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	if testimonial == nil {
		return nil, fmt.Errorf("testimonial payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO testimonials (client_name, company, role, email, testimonial, rating, service_type, is_approved, is_featured)
        VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, FALSE)
        RETURNING `+testimonialColumns,
		testimonial.ClientName, testimonial.Company, testimonial.Role, testimonial.Email, testimonial.Text, testimonial.Rating, testimonial.ServiceType)

	created, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}
	return created, nil
}

// List returns testimonials, newest first. When approvedOnly is set only
// publicly visible rows are returned.
func (r *PGXTestimonialsRepository) List(ctx context.Context, approvedOnly bool) ([]entity.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if approvedOnly {
		query += ` WHERE is_approved = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []entity.Testimonial
	for rows.Next() {
		tm, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, *tm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonials: %w", err)
	}
	return testimonials, nil
}

// FindByID retrieves a testimonial by identifier.
func (r *PGXTestimonialsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)

	tm, err := scanTestimonial(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("query testimonial by id: %w", err)
	}
	return tm, nil
}

// UpdateFlags patches the moderation flags. Nil pointers leave the stored
// value untouched; every update stamps updated_at.
func (r *PGXTestimonialsRepository) UpdateFlags(ctx context.Context, id uuid.UUID, isApproved, isFeatured *bool) (*entity.Testimonial, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if isApproved != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_approved = $%d", idx))
		args = append(args, *isApproved)
		idx++
	}
	if isFeatured != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_featured = $%d", idx))
		args = append(args, *isFeatured)
		idx++
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE testimonials SET %s WHERE id = $%d RETURNING %s`, strings.Join(setClauses, ", "), idx, testimonialColumns)

	tm, err := scanTestimonial(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("update testimonial flags: %w", err)
	}
	return tm, nil
}

// Delete removes a testimonial by id.
func (r *PGXTestimonialsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
