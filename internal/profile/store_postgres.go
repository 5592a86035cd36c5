package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"avsar/pkg/platform/sentinel"
)

// PostgresCandidateStore persists candidates in postgres. Tag sets are stored
// as jsonb so the scoring path reads them back exactly as registered.
type PostgresCandidateStore struct {
	db *sql.DB
}

func NewPostgresCandidateStore(db *sql.DB) *PostgresCandidateStore {
	return &PostgresCandidateStore{db: db}
}

const candidateColumns = `id, name, email, phone, skills, qualifications,
	location_preference, current_location, category, district_type,
	past_participation, experience_months, preferred_sectors, languages, registered_at`

func (s *PostgresCandidateStore) Create(ctx context.Context, c *Candidate) error {
	skills, qualifications, prefs, sectors, languages, err := marshalCandidateSets(c)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO candidates (`+candidateColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		c.ID, c.Name, c.Email, c.Phone, skills, qualifications,
		prefs, c.CurrentLocation, string(c.Category), string(c.DistrictType),
		c.PastParticipation, c.ExperienceMonths, sectors, languages, c.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (s *PostgresCandidateStore) FindByID(ctx context.Context, id string) (*Candidate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find candidate: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return c, nil
}

func (s *PostgresCandidateStore) List(ctx context.Context) ([]*Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	defer rows.Close()

	var out []*Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return out, nil
}

func (s *PostgresCandidateStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count candidates: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*Candidate, error) {
	var c Candidate
	var skills, qualifications, prefs, sectors, languages []byte
	var category, district string
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &skills, &qualifications,
		&prefs, &c.CurrentLocation, &category, &district,
		&c.PastParticipation, &c.ExperienceMonths, &sectors, &languages, &c.RegisteredAt)
	if err != nil {
		return nil, err
	}
	c.Category = Category(category)
	c.DistrictType = DistrictType(district)
	for _, pair := range []struct {
		raw []byte
		dst *[]string
	}{
		{skills, &c.Skills},
		{qualifications, &c.Qualifications},
		{prefs, &c.LocationPreference},
		{sectors, &c.PreferredSectors},
		{languages, &c.Languages},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
			return nil, fmt.Errorf("decode candidate tags: %w", err)
		}
	}
	return &c, nil
}

func marshalCandidateSets(c *Candidate) (skills, qualifications, prefs, sectors, languages []byte, err error) {
	for _, pair := range []struct {
		src []string
		dst *[]byte
	}{
		{c.Skills, &skills},
		{c.Qualifications, &qualifications},
		{c.LocationPreference, &prefs},
		{c.PreferredSectors, &sectors},
		{c.Languages, &languages},
	} {
		b, mErr := json.Marshal(pair.src)
		if mErr != nil {
			return nil, nil, nil, nil, nil, fmt.Errorf("encode candidate tags: %w", mErr)
		}
		*pair.dst = b
	}
	return skills, qualifications, prefs, sectors, languages, nil
}

// PostgresPostingStore persists internship postings.
type PostgresPostingStore struct {
	db *sql.DB
}

func NewPostgresPostingStore(db *sql.DB) *PostgresPostingStore {
	return &PostgresPostingStore{db: db}
}

const postingColumns = `id, company_name, contact_email, contact_phone,
	internship_title, description, required_skills, preferred_qualifications,
	location, sector, capacity, duration_months, stipend_range, remote_allowed, registered_at`

func (s *PostgresPostingStore) Create(ctx context.Context, p *Posting) error {
	required, err := json.Marshal(p.RequiredSkills)
	if err != nil {
		return fmt.Errorf("encode posting skills: %w", err)
	}
	preferred, err := json.Marshal(p.PreferredQualifications)
	if err != nil {
		return fmt.Errorf("encode posting qualifications: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO postings (`+postingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		p.ID, p.CompanyName, p.ContactEmail, p.ContactPhone,
		p.InternshipTitle, p.Description, required, preferred,
		p.Location, p.Sector, p.Capacity, p.DurationMonths, p.StipendRange,
		p.RemoteAllowed, p.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("insert posting: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}

func (s *PostgresPostingStore) FindByID(ctx context.Context, id string) (*Posting, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postingColumns+` FROM postings WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find posting: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return p, nil
}

func (s *PostgresPostingStore) List(ctx context.Context) ([]*Posting, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postingColumns+` FROM postings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list postings: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	defer rows.Close()

	var out []*Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list postings: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return out, nil
}

func (s *PostgresPostingStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM postings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count postings: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return n, nil
}

func scanPosting(row rowScanner) (*Posting, error) {
	var p Posting
	var required, preferred []byte
	err := row.Scan(&p.ID, &p.CompanyName, &p.ContactEmail, &p.ContactPhone,
		&p.InternshipTitle, &p.Description, &required, &preferred,
		&p.Location, &p.Sector, &p.Capacity, &p.DurationMonths, &p.StipendRange,
		&p.RemoteAllowed, &p.RegisteredAt)
	if err != nil {
		return nil, err
	}
	if len(required) > 0 {
		if err := json.Unmarshal(required, &p.RequiredSkills); err != nil {
			return nil, fmt.Errorf("decode posting skills: %w", err)
		}
	}
	if len(preferred) > 0 {
		if err := json.Unmarshal(preferred, &p.PreferredQualifications); err != nil {
			return nil, fmt.Errorf("decode posting qualifications: %w", err)
		}
	}
	return &p, nil
}

// Schema is the DDL for the profile tables. Applied by the operator or a
// migration tool; kept here so the store and its schema travel together.
const Schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id                  TEXT PRIMARY KEY,
	name                TEXT NOT NULL,
	email               TEXT NOT NULL,
	phone               TEXT NOT NULL DEFAULT '',
	skills              JSONB NOT NULL,
	qualifications      JSONB NOT NULL,
	location_preference JSONB NOT NULL,
	current_location    TEXT NOT NULL DEFAULT '',
	category            TEXT NOT NULL,
	district_type       TEXT NOT NULL,
	past_participation  BOOLEAN NOT NULL DEFAULT FALSE,
	experience_months   INTEGER NOT NULL DEFAULT 0,
	preferred_sectors   JSONB NOT NULL,
	languages           JSONB NOT NULL,
	registered_at       TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS postings (
	id                       TEXT PRIMARY KEY,
	company_name             TEXT NOT NULL,
	contact_email            TEXT NOT NULL DEFAULT '',
	contact_phone            TEXT NOT NULL DEFAULT '',
	internship_title         TEXT NOT NULL,
	description              TEXT NOT NULL DEFAULT '',
	required_skills          JSONB NOT NULL,
	preferred_qualifications JSONB NOT NULL,
	location                 TEXT NOT NULL,
	sector                   TEXT NOT NULL,
	capacity                 INTEGER NOT NULL CHECK (capacity > 0),
	duration_months          INTEGER NOT NULL DEFAULT 0,
	stipend_range            TEXT NOT NULL DEFAULT '',
	remote_allowed           BOOLEAN NOT NULL DEFAULT FALSE,
	registered_at            TIMESTAMPTZ NOT NULL
);
`
