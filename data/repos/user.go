package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sr-ssh/vue-table.api/data"
)

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db}
}

func (r *UserRepo) InsertUser(user data.User) (int, error) {
	query := `
		INSERT INTO users (name, date, address, phone)
		VALUES (:name, :date, :address, :phone)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, user)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		err = rows.Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

func (r *UserRepo) GetUserByID(id int) (*data.User, error) {
	var user data.User
	query := `
		SELECT id, name, date, address, phone, created_at, updated_at
		FROM users
		WHERE id = $1`

	err := r.db.Get(&user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

func (r *UserRepo) GetUsers() ([]data.User, error) {
	users := make([]data.User, 0)
	query := `
		SELECT id, name, date, address, phone, created_at, updated_at
		FROM users
		ORDER BY id ASC`

	err := r.db.Select(&users, query)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return users, nil
}

// UpdateUser replaces every column of the user with the given id.
// It returns false if no such user exists.
func (r *UserRepo) UpdateUser(user data.User) (bool, error) {
	query := `
		UPDATE users
		SET name = :name, date = :date, address = :address, phone = :phone, updated_at = now()
		WHERE id = :id`

	res, err := r.db.NamedExec(query, user)
	if err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update user: rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *UserRepo) DeleteUser(id int) (bool, error) {
	query := "DELETE FROM users WHERE id = $1"
	res, err := r.db.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user: rows affected: %w", err)
	}

	return affected > 0, nil
}
