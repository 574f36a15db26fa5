package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const memberColumns = `id, account_id, profile_id, email, email_verification, first_name, last_name, role, status, contract_signed, imported_answers, timezone, avatar_id, avatar_url, created_at`

// MemberPostgres is a PostgreSQL implementation of repository.MemberRepository.
type MemberPostgres struct {
	db *sql.DB
}

// NewMemberPostgres creates a new MemberPostgres repository.
func NewMemberPostgres(db *sql.DB) *MemberPostgres {
	return &MemberPostgres{db: db}
}

var _ repository.MemberRepository = (*MemberPostgres)(nil)

func scanMember(row rowScanner) (*model.Member, error) {
	var m model.Member
	if err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.ProfileID,
		&m.Email,
		&m.EmailVerification,
		&m.FirstName,
		&m.LastName,
		&m.Role,
		&m.Status,
		&m.ContractSigned,
		&m.ImportedAnswers,
		&m.Timezone,
		&m.AvatarID,
		&m.AvatarURL,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new member row and returns the stored record.
func (r *MemberPostgres) Create(ctx context.Context, m *model.Member) (*model.Member, error) {
	const q = `
		INSERT INTO members (id, account_id, profile_id, email, email_verification, first_name, last_name, role, status, contract_signed, imported_answers, timezone, avatar_id, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + memberColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.AccountID,
		m.ProfileID,
		m.Email,
		m.EmailVerification,
		m.FirstName,
		m.LastName,
		m.Role,
		m.Status,
		m.ContractSigned,
		m.ImportedAnswers,
		m.Timezone,
		m.AvatarID,
		m.AvatarURL,
		m.CreatedAt,
	)
	return scanMember(row)
}

// FindByID fetches a single member by its ID.
func (r *MemberPostgres) FindByID(ctx context.Context, id string) (*model.Member, error) {
	const q = `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return scanMember(r.db.QueryRowContext(ctx, q, id))
}

// FindByAccountID resolves the member owning the given auth account.
func (r *MemberPostgres) FindByAccountID(ctx context.Context, accountID string) (*model.Member, error) {
	const q = `SELECT ` + memberColumns + ` FROM members WHERE account_id = $1`
	return scanMember(r.db.QueryRowContext(ctx, q, accountID))
}

// List returns members ordered by descending creation time, capped at the
// platform list bound.
func (r *MemberPostgres) List(ctx context.Context) ([]model.Member, error) {
	const q = `
		SELECT ` + memberColumns + `
		FROM members
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the member's editable field set and returns the stored record.
func (r *MemberPostgres) Update(ctx context.Context, m *model.Member) (*model.Member, error) {
	const q = `
		UPDATE members
		SET email = $2, imported_answers = $3, email_verification = $4,
		    first_name = $5, last_name = $6, status = $7, contract_signed = $8,
		    timezone = $9, avatar_url = $10, avatar_id = $11
		WHERE id = $1
		RETURNING ` + memberColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.Email,
		m.ImportedAnswers,
		m.EmailVerification,
		m.FirstName,
		m.LastName,
		m.Status,
		m.ContractSigned,
		m.Timezone,
		m.AvatarURL,
		m.AvatarID,
	)
	return scanMember(row)
}

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

const profileColumns = `id, member_id, primary_role, bio, portfolio_link, created_at`

func scanProfile(row rowScanner) (*model.Profile, error) {
	var p model.Profile
	if err := row.Scan(
		&p.ID,
		&p.MemberID,
		&p.PrimaryRole,
		&p.Bio,
		&p.PortfolioLink,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new profile row and returns the stored record.
func (r *ProfilePostgres) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	const q = `
		INSERT INTO profiles (id, member_id, primary_role, bio, portfolio_link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + profileColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.MemberID,
		p.PrimaryRole,
		p.Bio,
		p.PortfolioLink,
		p.CreatedAt,
	)
	return scanProfile(row)
}

// FindByID fetches a single profile by its ID.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, q, id))
}

// List returns profiles ordered by descending creation time, capped at the
// platform list bound.
func (r *ProfilePostgres) List(ctx context.Context) ([]model.Profile, error) {
	const q = `
		SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
