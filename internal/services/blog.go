package services

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/storage"
	"github.com/inkwell-dev/inkwell/internal/store"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type BlogAuthor struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BlogResponse struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	Author    BlogAuthor `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type ListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type BlogService struct {
	blogs  *store.BlogStore
	images *storage.LocalStore
}

func NewBlogService(blogs *store.BlogStore, images *storage.LocalStore) *BlogService {
	return &BlogService{blogs: blogs, images: images}
}

func (s *BlogService) Create(userID uint, title, content string, file *multipart.FileHeader) (*BlogResponse, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return nil, apperr.Validation("Title and content are required")
	}

	blog := &models.Blog{
		Title:    title,
		Content:  content,
		AuthorID: userID,
	}

	if file != nil {
		imageURL, err := s.images.Save(file)
		if err != nil {
			return nil, err
		}
		blog.ImageURL = imageURL
	}

	if err := s.blogs.Create(blog); err != nil {
		return nil, err
	}

	return toBlogResponse(blog), nil
}

// List pages through blogs newest first. Out-of-range pages come back as
// an empty list with the real totals so clients can recover.
func (s *BlogService) List(page, limit int) ([]BlogResponse, *ListMeta, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	skip := (page - 1) * limit

	blogs, err := s.blogs.List(skip, limit)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.blogs.Count()
	if err != nil {
		return nil, nil, err
	}

	responses := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, *toBlogResponse(&blogs[i]))
	}

	meta := &ListMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}

	return responses, meta, nil
}

func (s *BlogService) Get(id string) (*BlogResponse, error) {
	blog, err := s.blogs.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toBlogResponse(blog), nil
}

// Update applies partial semantics: nil or blank fields stay untouched.
// Replacing the image removes the old file best-effort.
func (s *BlogService) Update(id string, userID uint, title, content *string, file *multipart.FileHeader) (*BlogResponse, error) {
	blog, err := s.blogs.FindByID(id)
	if err != nil {
		return nil, err
	}

	if blog.AuthorID != userID {
		return nil, apperr.Forbidden("You are not the author of this blog")
	}

	if title != nil && strings.TrimSpace(*title) != "" {
		blog.Title = strings.TrimSpace(*title)
	}
	if content != nil && strings.TrimSpace(*content) != "" {
		blog.Content = strings.TrimSpace(*content)
	}

	if file != nil {
		imageURL, err := s.images.Save(file)
		if err != nil {
			return nil, err
		}
		if blog.ImageURL != "" {
			s.images.Remove(blog.ImageURL)
		}
		blog.ImageURL = imageURL
	}

	if err := s.blogs.Save(blog); err != nil {
		return nil, err
	}

	return toBlogResponse(blog), nil
}

func (s *BlogService) Delete(id string, userID uint) error {
	blog, err := s.blogs.FindByID(id)
	if err != nil {
		return err
	}

	if blog.AuthorID != userID {
		return apperr.Forbidden("You are not the author of this blog")
	}

	if blog.ImageURL != "" {
		s.images.Remove(blog.ImageURL)
	}

	return s.blogs.Delete(blog)
}

func toBlogResponse(blog *models.Blog) *BlogResponse {
	return &BlogResponse{
		ID:       blog.ID,
		Title:    blog.Title,
		Content:  blog.Content,
		ImageURL: blog.ImageURL,
		Author: BlogAuthor{
			ID:    blog.Author.ID,
			Name:  blog.Author.Name,
			Email: blog.Author.Email,
		},
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}
