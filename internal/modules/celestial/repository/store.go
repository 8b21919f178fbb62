package repository

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/spacemanagement/internal/entity"
	"anoa.com/spacemanagement/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows or enriches a query (preloads, filters).
type Scope = func(*gorm.DB) *gorm.DB

// Row constrains P to be the pointer type of T implementing entity.Subtype.
type Row[T any] interface {
	*T
	entity.Subtype
}

// Store persists one celestial subtype inside the shared table. Every query
// is pinned to the subtype's discriminator, so a lookup by an id that belongs
// to another subtype behaves exactly like a missing row.
type Store[T any, P Row[T]] struct {
	db *gorm.DB
}

func NewStore[T any, P Row[T]](db *gorm.DB) *Store[T, P] {
	return &Store[T, P]{db: db}
}

// WithTx returns a store bound to tx.
func (s *Store[T, P]) WithTx(tx *gorm.DB) *Store[T, P] {
	return &Store[T, P]{db: tx}
}

// DB exposes the underlying handle so gates can open transactions.
func (s *Store[T, P]) DB() *gorm.DB {
	return s.db
}

// Discriminator is the type tag of T.
func (s *Store[T, P]) Discriminator() string {
	var zero T
	return P(&zero).CelestialType()
}

func (s *Store[T, P]) query(ctx context.Context, scopes ...Scope) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(new(T)).
		Scopes(OfType(s.Discriminator())).
		Scopes(scopes...)
}

// OfType restricts a query on celestial_objects to one discriminator.
func OfType(discriminator string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(entity.CelestialTable+".celestial_object_type = ?", discriminator)
	}
}

// WithImage eager-loads the attached image.
func WithImage(db *gorm.DB) *gorm.DB {
	return db.Preload("Image")
}

// Create stamps the discriminator and inserts obj. Associations are never
// written through here; the caller sets foreign keys explicitly.
func (s *Store[T, P]) Create(ctx context.Context, obj *T) error {
	base := P(obj).Base()
	base.ID = 0
	base.CelestialObjectType = s.Discriminator()

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(obj).Error; err != nil {
		return fmt.Errorf("create %s: %w", s.Discriminator(), err)
	}
	return nil
}

// FindByID returns apperror.ErrNotFound when no row with this id and
// discriminator exists.
func (s *Store[T, P]) FindByID(ctx context.Context, id uint, scopes ...Scope) (*T, error) {
	obj := new(T)
	err := s.query(ctx, scopes...).Where(entity.CelestialTable+".id = ?", id).First(obj).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %d: %w", s.Discriminator(), id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return obj, nil
}

// FindAll lists every row of the subtype ordered by id. An empty result is
// not an error.
func (s *Store[T, P]) FindAll(ctx context.Context, scopes ...Scope) ([]T, error) {
	var objs []T
	if err := s.query(ctx, scopes...).Order(entity.CelestialTable + ".id").Find(&objs).Error; err != nil {
		return nil, err
	}
	return objs, nil
}

func (s *Store[T, P]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.query(ctx).Where(entity.CelestialTable+".id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update overwrites every column of the subtype view (base columns included)
// on an existing row. Last write wins.
func (s *Store[T, P]) Update(ctx context.Context, obj *T) error {
	base := P(obj).Base()

	exists, err := s.Exists(ctx, base.ID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s %d: %w", s.Discriminator(), base.ID, apperror.ErrNotFound)
	}

	base.CelestialObjectType = s.Discriminator()
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(obj).Error; err != nil {
		return fmt.Errorf("update %s %d: %w", s.Discriminator(), base.ID, err)
	}
	return nil
}

// Delete removes the row with this id and discriminator.
func (s *Store[T, P]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Scopes(OfType(s.Discriminator())).
		Where(entity.CelestialTable+".id = ?", id).
		Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", s.Discriminator(), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", s.Discriminator(), id, apperror.ErrNotFound)
	}
	return nil
}
