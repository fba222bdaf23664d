package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearskyva/backoffice/internal/entity"
)

// ErrInquiryNotFound is returned when no inquiry matches the lookup criteria.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiriesRepository declares persistence operations for contact inquiries.
type InquiriesRepository interface {
	Insert(ctx context.Context, inquiry *entity.Inquiry) (*entity.Inquiry, error)
	List(ctx context.Context, status string) ([]entity.Inquiry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXInquiriesRepository implements InquiriesRepository with pgx.
type PGXInquiriesRepository struct {
	pool pgxPool
}

// NewPGXInquiriesRepository instantiates an inquiries repository.
func NewPGXInquiriesRepository(pool *pgxpool.Pool) *PGXInquiriesRepository {
	return &PGXInquiriesRepository{pool: pool}
}

const inquiryColumns = `id, name, email, phone, age, expertise, company_name, message, status, created_at, updated_at`

func scanInquiry(row pgx.Row) (*entity.Inquiry, error) {
	var inq entity.Inquiry
	err := row.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Age, &inq.Expertise, &inq.CompanyName, &inq.Message, &inq.Status, &inq.CreatedAt, &inq.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

// Insert stores a fresh submission. Status is always "new" regardless of
// what the caller set on the entity.
func (r *PGXInquiriesRepository) Insert(ctx context.Context, inquiry *entity.Inquiry) (*entity.Inquiry, error) {
	if inquiry == nil {
		return nil, fmt.Errorf("inquiry payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO inquiries (name, email, phone, age, expertise, company_name, message, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+inquiryColumns,
		inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Age, inquiry.Expertise, inquiry.CompanyName, inquiry.Message, entity.InquiryStatusNew)

	created, err := scanInquiry(row)
	if err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}
	return created, nil
}

// List returns inquiries, newest first, optionally filtered by status.
func (r *PGXInquiriesRepository) List(ctx context.Context, status string) ([]entity.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created_at DESC`
	args := []any{}
	if status != "" {
		query = `SELECT ` + inquiryColumns + ` FROM inquiries WHERE status = $1 ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []entity.Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry row: %w", err)
		}
		inquiries = append(inquiries, *inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inquiries: %w", err)
	}
	return inquiries, nil
}

// FindByID retrieves an inquiry by identifier.
func (r *PGXInquiriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id)

	inq, err := scanInquiry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("query inquiry by id: %w", err)
	}
	return inq, nil
}

// UpdateStatus moves the inquiry to a new triage status and stamps updated_at.
func (r *PGXInquiriesRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Inquiry, error) {
	row := r.pool.QueryRow(ctx, `
        UPDATE inquiries SET status = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING `+inquiryColumns, status, id)

	inq, err := scanInquiry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return inq, nil
}

// Delete removes an inquiry by id.
func (r *PGXInquiriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
