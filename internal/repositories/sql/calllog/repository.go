package calllog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/msp-tools/tenant-console/pkg/infra"
)

type Repository interface {
	Create(table *Table) (uint, error)
	GetRecent(limit int) ([]Table, error)
	GetByOperation(operation string, limit int) ([]Table, error)
	Prune(keep int) error
}

type CallLog struct {
	db     *gorm.DB
	dbName string
}

// NewRepository creates a new call-log repository
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

	return &CallLog{
		db:     session.(*gorm.DB),
		dbName: dbName,
	}, nil
}

// Create adds one exchange record.
func (c *CallLog) Create(table *Table) (uint, error) {
	result := c.db.Create(table)
	if result.Error != nil {
		return 0, result.Error
	}
	return table.Id, nil
}

// GetRecent returns the latest entries, newest first.
func (c *CallLog) GetRecent(limit int) ([]Table, error) {
	var entries []Table
	result := c.db.Order("id desc").Limit(limit).Find(&entries)
	return entries, result.Error
}

// Prune deletes everything older than the newest `keep` entries.
func (c *CallLog) Prune(keep int) error {
	var boundary []Table
	result := c.db.Order("id desc").Offset(keep).Limit(1).Find(&boundary)
	if result.Error != nil {
		return result.Error
	}
	if len(boundary) == 0 {
		return nil
	}
	return c.db.Where("id <= ?", boundary[0].Id).Delete(&Table{}).Error
}

// GetByOperation returns the latest entries for one operation name.
func (c *CallLog) GetByOperation(operation string, limit int) ([]Table, error) {
	var entries []Table
	result := c.db.Where("operation = ?", operation).Order("id desc").Limit(limit).Find(&entries)
	return entries, result.Error
}
