package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// Visibility selects the read path. Admin reads exclude soft-deleted rows
// but are status-agnostic; public reads additionally require status = true.
type Visibility int

const (
	VisibilityAdmin Visibility = iota
	VisibilityPublic
)

// CatalogRepository implements the operations every catalog table shares:
// visibility-filtered reads, status toggling and one-way soft deletion.
// Entity repositories embed it and add their own create/update SQL.
type CatalogRepository[T any] struct {
	db      *gorm.DB
	table   string
	orderBy string
}

func NewCatalogRepository[T any](db *gorm.DB, table, orderBy string) CatalogRepository[T] {
	return CatalogRepository[T]{
		db:      db,
		table:   table,
		orderBy: orderBy,
	}
}

func (r *CatalogRepository[T]) GetAll(vis Visibility) ([]T, error) {
	var entities []T
	q := r.db.Table(r.table).Where("is_deleted = false")
	if vis == VisibilityPublic {
		q = q.Where("status = true")
	}
	err := q.Order(r.orderBy).Find(&entities).Error
	return entities, err
}

func (r *CatalogRepository[T]) GetByID(id uint, vis Visibility) (*T, error) {
	var entity T
	q := r.db.Table(r.table).Where("id = ? AND is_deleted = false", id)
	if vis == VisibilityPublic {
		q = q.Where("status = true")
	}
	if err := q.First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// ToggleStatus negates the status flag unconditionally. Soft-deleted rows
// are untouched and report as not found.
func (r *CatalogRepository[T]) ToggleStatus(id uint) (*T, error) {
	var entity T
	query := fmt.Sprintf(
		"UPDATE %s SET status = NOT status WHERE id = ? AND is_deleted = false RETURNING *",
		r.table,
	)
	result := r.db.Raw(query, id).Scan(&entity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &entity, nil
}

// SoftDelete is terminal: the is_deleted guard makes a second call a
// not-found, and no operation reverses the flag.
func (r *CatalogRepository[T]) SoftDelete(id uint) (*T, error) {
	var entity T
	query := fmt.Sprintf(
		"UPDATE %s SET is_deleted = true WHERE id = ? AND is_deleted = false RETURNING *",
		r.table,
	)
	result := r.db.Raw(query, id).Scan(&entity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &entity, nil
}

// updateFields applies a partial update and returns the fresh row. An
// empty field set is a no-op read, not an error.
func (r *CatalogRepository[T]) updateFields(id uint, fields map[string]interface{}) (*T, error) {
	if len(fields) == 0 {
		return r.GetByID(id, VisibilityAdmin)
	}

	result := r.db.Table(r.table).
		Where("id = ? AND is_deleted = false", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(id, VisibilityAdmin)
}
