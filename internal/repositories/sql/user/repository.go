package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/msp-tools/tenant-console/pkg/infra"
)

type Repository interface {
	CreateUser(table *Table) (uint, error)
	GetUserByEmail(email string) (*Table, error)
}

type User struct {
	db     *gorm.DB
	dbName string
}

// NewRepository creates a new console-user repository
func NewRepository(connection *infra.SQLConnection) (Repository, error) {
	if connection == nil {
		return nil, errors.New("connection cannot be nil")
	}

	session, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	meta, err := connection.GetMeta()
	if err != nil {
		return nil, err
	}
	dbName := meta["db_name"].(string)

	return &User{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// CreateUser adds a new console operator.
func (u *User) CreateUser(table *Table) (uint, error) {
	result := u.db.Create(table)
	if result.Error != nil {
		return 0, result.Error
	}
	return table.Id, nil
}

// GetUserByEmail looks an operator up by email.
func (u *User) GetUserByEmail(email string) (*Table, error) {
	var record Table
	result := u.db.Where("email = ?", email).First(&record)
	return &record, result.Error
}
