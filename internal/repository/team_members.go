package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clearskyva/backoffice/internal/entity"
)

// TeamMembersRepository declares read operations for team member profiles.
type TeamMembersRepository interface {
	List(ctx context.Context, activeOnly bool) ([]entity.TeamMember, error)
}

// PGXTeamMembersRepository implements TeamMembersRepository with pgx.
type PGXTeamMembersRepository struct {
	pool pgxPool
}

// NewPGXTeamMembersRepository instantiates a team members repository.
func NewPGXTeamMembersRepository(pool *pgxpool.Pool) *PGXTeamMembersRepository {
	return &PGXTeamMembersRepository{pool: pool}
}

const teamMemberColumns = `id, name, email, role, specialization, skills, experience, is_active, created_at, updated_at`

// List returns team members ordered by name. When activeOnly is set,
// inactive profiles are excluded.
func (r *PGXTeamMembersRepository) List(ctx context.Context, activeOnly bool) ([]entity.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members ORDER BY name`
	if activeOnly {
		query = `SELECT ` + teamMemberColumns + ` FROM team_members WHERE is_active = TRUE ORDER BY name`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []entity.TeamMember
	for rows.Next() {
		var member entity.TeamMember
		if err := rows.Scan(&member.ID, &member.Name, &member.Email, &member.Role, &member.Specialization, &member.Skills, &member.Experience, &member.IsActive, &member.CreatedAt, &member.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}
	return members, nil
}
