package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrDuplicate signals the store's uniqueness constraint fired on
	// email or username. It is a single atomic signal; the store does not
	// say which column collided.
	ErrDuplicate = errors.New("account already exists")
	// ErrNotFound signals no account matched the lookup.
	ErrNotFound = errors.New("account not found")
)

// Repository persists accounts. Uniqueness of email and username is the
// store's job; callers must not pre-check with a read.
type Repository interface {
	Create(ctx context.Context, acct Account) error
	FindByEmail(ctx context.Context, email string) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (Account, error)
}

const accountColumns = `id, email, password_hash, name, username, avatar, phone, status, role, created_at, updated_at`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account. A unique-constraint violation on any
// column maps to ErrDuplicate.
func (r *PostgresRepository) Create(ctx context.Context, acct Account) error {
	accountID, err := uuid.Parse(acct.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO users (id, email, password_hash, name, username, avatar, phone, status, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		accountID, acct.Email, acct.PasswordHash, acct.Name, acct.Username,
		nullable(acct.Avatar), nullable(acct.Phone), acct.Status, acct.Role,
		acct.CreatedAt.UTC(), acct.UpdatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// FindByEmail fetches an account by email, compared case-insensitively.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanAccount(row)
}

// FindByID fetches an account by its identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Account, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return Account{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM users WHERE id = $1`, accountID)
	return scanAccount(row)
}

// UpdateProfile applies a partial profile update in a single statement.
// NULL patch parameters fall through to the stored value, matching the
// Merge contract, and updated_at is always refreshed.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (Account, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return Account{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `UPDATE users
        SET name = COALESCE($1, name),
            phone = COALESCE($2, phone),
            avatar = COALESCE($3, avatar),
            updated_at = $4
        WHERE id = $5
        RETURNING `+accountColumns,
		patch.Name, patch.Phone, patch.Avatar, time.Now().UTC(), accountID)
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (Account, error) {
	var (
		id            uuid.UUID
		avatar, phone *string
		acct          Account
	)
	err := row.Scan(&id, &acct.Email, &acct.PasswordHash, &acct.Name, &acct.Username,
		&avatar, &phone, &acct.Status, &acct.Role, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	acct.ID = id.String()
	if avatar != nil {
		acct.Avatar = *avatar
	}
	if phone != nil {
		acct.Phone = *phone
	}
	acct.CreatedAt = acct.CreatedAt.UTC()
	acct.UpdatedAt = acct.UpdatedAt.UTC()
	return acct, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
