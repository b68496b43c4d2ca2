package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"placement-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

// NewRecruiterRepository creates a repository for recruiter profiles and their companies
func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

// GetByUserID retrieves the recruiter profile joined with its company
func (r *recruiterRepo) GetByUserID(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	query := `
		SELECT rp.recruiter_id, rp.company_id, rp.full_name, rp.designation, rp.contact_phone,
		       rp.company_email, rp.company_phone, rp.created_at, rp.updated_at,
		       c.company_name, c.industry, c.company_size, c.website, c.description,
		       c.founded_year, c.logo_url, c.address, c.social_links, c.created_at, c.updated_at
		FROM recruiter_profiles rp
		JOIN companies c ON c.company_id = rp.company_id
		WHERE rp.recruiter_id = $1`

	var (
		p                  domain.RecruiterProfile
		c                  domain.Company
		address, socialRaw []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.RecruiterID, &p.CompanyID, &p.FullName, &p.Designation, &p.ContactPhone,
		&p.CompanyEmail, &p.CompanyPhone, &p.CreatedAt, &p.UpdatedAt,
		&c.Name, &c.Industry, &c.Size, &c.Website, &c.Description,
		&c.FoundedYear, &c.LogoURL, &address, &socialRaw, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if len(address) > 0 {
		if err := json.Unmarshal(address, &c.Address); err != nil {
			return nil, err
		}
	}
	if len(socialRaw) > 0 {
		if err := json.Unmarshal(socialRaw, &c.SocialLinks); err != nil {
			return nil, err
		}
	}
	c.ID = p.CompanyID
	p.Company = &c
	return &p, nil
}

// Save writes the company and the recruiter profile in one transaction. The
// company row is created on the first save and updated in place afterwards.
// A per-recruiter advisory lock keeps concurrent first saves from each
// inserting a company.
func (r *recruiterRepo) Save(ctx context.Context, p *domain.RecruiterProfile) (bool, error) {
	c := p.Company
	if c == nil {
		return false, errors.New("recruiter profile requires a company")
	}
	address, err := json.Marshal(c.Address)
	if err != nil {
		return false, err
	}
	social := c.SocialLinks
	if social == nil {
		social = map[string]string{}
	}
	socialRaw, err := json.Marshal(social)
	if err != nil {
		return false, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	// Serialises first saves, which have no recruiter_profiles row to lock yet.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, p.RecruiterID); err != nil {
		return false, err
	}

	var companyID int64
	err = tx.QueryRow(ctx,
		`SELECT company_id FROM recruiter_profiles WHERE recruiter_id = $1 FOR UPDATE`, p.RecruiterID,
	).Scan(&companyID)
	created := errors.Is(err, pgx.ErrNoRows)
	if err != nil && !created {
		return false, err
	}

	if created {
		err = tx.QueryRow(ctx, `
			INSERT INTO companies (
				company_name, industry, company_size, website, description,
				founded_year, logo_url, address, social_links
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb)
			RETURNING company_id, created_at, updated_at`,
			c.Name, c.Industry, c.Size, c.Website, c.Description,
			c.FoundedYear, c.LogoURL, string(address), string(socialRaw),
		).Scan(&companyID, &c.CreatedAt, &c.UpdatedAt)
	} else {
		err = tx.QueryRow(ctx, `
			UPDATE companies SET
				company_name = $2, industry = $3, company_size = $4, website = $5, description = $6,
				founded_year = $7, logo_url = $8, address = $9::jsonb, social_links = $10::jsonb,
				updated_at = NOW()
			WHERE company_id = $1
			RETURNING created_at, updated_at`,
			companyID, c.Name, c.Industry, c.Size, c.Website, c.Description,
			c.FoundedYear, c.LogoURL, string(address), string(socialRaw),
		).Scan(&c.CreatedAt, &c.UpdatedAt)
	}
	if err != nil {
		return false, translateError(err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO recruiter_profiles (
			recruiter_id, company_id, full_name, designation, contact_phone, company_email, company_phone
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (recruiter_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			designation = EXCLUDED.designation,
			contact_phone = EXCLUDED.contact_phone,
			company_email = EXCLUDED.company_email,
			company_phone = EXCLUDED.company_phone,
			updated_at = NOW()
		RETURNING created_at, updated_at`,
		p.RecruiterID, companyID, p.FullName, p.Designation, p.ContactPhone, p.CompanyEmail, p.CompanyPhone,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return false, translateError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	p.CompanyID = companyID
	c.ID = companyID
	return created, nil
}
