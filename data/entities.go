package data

import (
	"time"

	"github.com/sr-ssh/vue-table.api/models"
)

type User struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Date      string    `db:"date"`
	Address   string    `db:"address"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u User) ToModel() models.User {
	return models.User{
		ID:      u.ID,
		Name:    u.Name,
		Date:    u.Date,
		Address: u.Address,
		Phone:   u.Phone,
	}
}

func FromModel(u models.User) User {
	return User{
		ID:      u.ID,
		Name:    u.Name,
		Date:    u.Date,
		Address: u.Address,
		Phone:   u.Phone,
	}
}
