package store

import (
	"errors"
	"strconv"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/models"
	"gorm.io/gorm"
)

type BlogStore struct {
	db *gorm.DB
}

func NewBlogStore(db *gorm.DB) *BlogStore {
	return &BlogStore{db: db}
}

func (s *BlogStore) Create(blog *models.Blog) error {
	if err := s.db.Create(blog).Error; err != nil {
		return apperr.Internal(err)
	}

	// Load the author so callers can project name/email without a second trip.
	if err := s.db.Preload("Author").First(blog, blog.ID).Error; err != nil {
		return apperr.Internal(err)
	}

	return nil
}

// List returns a page of blogs, newest first. The id tie-break keeps
// pagination stable when creation timestamps collide.
func (s *BlogStore) List(skip, limit int) ([]models.Blog, error) {
	var blogs []models.Blog

	err := s.db.Preload("Author").
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&blogs).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return blogs, nil
}

func (s *BlogStore) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Blog{}).Count(&total).Error; err != nil {
		return 0, apperr.Internal(err)
	}
	return total, nil
}

// FindByID accepts the raw path parameter. Identifiers that do not parse
// are reported as NotFound here so the rest of the app never sees them.
func (s *BlogStore) FindByID(rawID string) (*models.Blog, error) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		return nil, apperr.NotFound("Blog not found")
	}

	var blog models.Blog

	err = s.db.Preload("Author").First(&blog, uint(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Blog not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &blog, nil
}

func (s *BlogStore) Save(blog *models.Blog) error {
	if err := s.db.Omit("Author").Save(blog).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *BlogStore) Delete(blog *models.Blog) error {
	if err := s.db.Delete(blog).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}
