package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hic-health/hic-be/internal/models"
	"github.com/hic-health/hic-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, password, first_name, last_name, phone, date_of_birth, role,
	specialization, consultation_fee, bio, is_verified, is_active, created_at, updated_at`

// CreateUser inserts a new user row. An empty ID is filled with a UUID.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := storage.ValidateUser(user); err != nil {
		return models.User{}, err
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	query := `
		INSERT INTO users (id, email, password, first_name, last_name, phone, date_of_birth, role,
			specialization, consultation_fee, bio, is_verified, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.Password, user.FirstName, user.LastName, user.Phone, user.DateOfBirth, user.Role,
		user.Specialization, user.ConsultationFee, user.Bio, user.IsVerified, user.IsActive,
	)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, classify("create user", err)
	}
	return created, nil
}

// FindByEmail fetches a user by email, ignoring case.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	user, err := scanUser(row)
	if err != nil {
		return models.User{}, classify("find user by email", err)
	}
	return user, nil
}

// FindByID fetches a user by primary key.
func (s *Store) FindByID(ctx context.Context, id string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return models.User{}, classify("find user by id", err)
	}
	return user, nil
}

// ListUsers returns every user without credentials.
func (s *Store) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, classify("list users", err)
	}
	defer rows.Close()

	out := []models.PublicUser{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, classify("list users", err)
		}
		out = append(out, u.Public())
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list users", err)
	}
	return out, nil
}

// ListActiveDoctors returns the public directory of active doctors.
func (s *Store) ListActiveDoctors(ctx context.Context) ([]models.DoctorListing, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, first_name, last_name, specialization, consultation_fee, bio, is_verified
		FROM users
		WHERE role = $1 AND is_active = TRUE
		ORDER BY last_name, first_name`, models.RoleDoctor)
	if err != nil {
		return nil, classify("list doctors", err)
	}
	defer rows.Close()

	out := []models.DoctorListing{}
	for rows.Next() {
		var d models.DoctorListing
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Specialization, &d.ConsultationFee, &d.Bio, &d.IsVerified); err != nil {
			return nil, classify("list doctors", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list doctors", err)
	}
	return out, nil
}

// DeleteAllUsers removes every user. Appointments must be cleared first.
func (s *Store) DeleteAllUsers(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, classify("delete users", err)
	}
	return tag.RowsAffected(), nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Phone, &u.DateOfBirth, &u.Role,
		&u.Specialization, &u.ConsultationFee, &u.Bio, &u.IsVerified, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}
