package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

type userRow struct {
	ID           string      `db:"id"`
	Username     string      `db:"username"`
	PasswordHash []byte      `db:"password_hash"`
	IsAdmin      bool        `db:"is_admin"`
	Role         null.String `db:"role"`
	Board        null.String `db:"board"`
	State        null.String `db:"state"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
	LastLogin    null.Time   `db:"last_login"`
}

func (r userRow) toUser() user.User {
	return user.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		IsAdmin:      r.IsAdmin,
		Role:         r.Role,
		Board:        r.Board,
		State:        r.State,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		LastLogin:    r.LastLogin.Time,
	}
}

// trapErr maps storage errors to the domain kinds: "no rows" to
// user.ErrNotFound, unique violations to user.ErrUsernameExists, anything
// else to core.ErrStorageUnavailable.
func (repo userRepository) trapErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return user.ErrNotFound
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
		return user.ErrUsernameExists
	}
	return errors.Wrapf(core.ErrStorageUnavailable, "%s: %s", msg, err)
}

func (repo userRepository) CheckUsernameUniqueness(ctx context.Context, username string, excludedUsers ...user.User) error {
	q := `SELECT EXISTS (SELECT 1 FROM "user" WHERE username = $1 AND id != ALL($2))`
	ids := make([]string, 0, len(excludedUsers))
	for _, u := range excludedUsers {
		ids = append(ids, u.ID)
	}

	var exists bool
	if err := repo.db.GetContext(ctx, &exists, q, username, pq.Array(ids)); err != nil {
		return repo.trapErr(err, "checking username uniqueness")
	}
	if exists {
		return user.ErrUsernameExists
	}
	return nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = uuid.New().String()
	q := `
		INSERT INTO "user" (id, username, password_hash, is_admin, role, board, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := repo.db.ExecContext(ctx, q,
		usr.ID, usr.Username, usr.PasswordHash, usr.IsAdmin,
		usr.Role, usr.Board, usr.State, usr.CreatedAt, usr.UpdatedAt,
	)
	if err != nil {
		return user.User{}, repo.trapErr(err, "inserting user")
	}
	return usr, nil
}

func (repo userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	var rows []userRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM "user" ORDER BY created_at`); err != nil {
		return nil, repo.trapErr(err, "querying users")
	}
	users := make([]user.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.toUser())
	}
	return users, nil
}

func (repo userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	var row userRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM "user" WHERE id = $1`, id); err != nil {
		return user.User{}, repo.trapErr(err, "getting user by id")
	}
	return row.toUser(), nil
}

func (repo userRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	var row userRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM "user" WHERE username = $1`, username); err != nil {
		return user.User{}, repo.trapErr(err, "getting user by username")
	}
	return row.toUser(), nil
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.UpdatedAt = time.Now().UTC()
	q := `
		UPDATE "user"
		SET username = $2, password_hash = $3, is_admin = $4, updated_at = $5, last_login = $6
		WHERE id = $1`
	lastLogin := null.NewTime(usr.LastLogin, !usr.LastLogin.IsZero())
	if _, err := repo.db.ExecContext(ctx, q, usr.ID, usr.Username, usr.PasswordHash, usr.IsAdmin, usr.UpdatedAt, lastLogin); err != nil {
		return user.User{}, repo.trapErr(err, "updating user")
	}
	return usr, nil
}

func (repo userRepository) SetUserOnboarding(ctx context.Context, id string, role, board, state null.String) (user.User, error) {
	q := `
		UPDATE "user"
		SET role = $2, board = $3, state = $4, updated_at = $5
		WHERE id = $1
		RETURNING *`
	var row userRow
	if err := repo.db.GetContext(ctx, &row, q, id, role, board, state, time.Now().UTC()); err != nil {
		return user.User{}, repo.trapErr(err, "setting user onboarding")
	}
	return row.toUser(), nil
}
