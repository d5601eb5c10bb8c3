package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/httpx"
	"github.com/inkwell-dev/inkwell/internal/middleware"
	"github.com/inkwell-dev/inkwell/internal/services"
)

type BlogHandler struct {
	blogs *services.BlogService
}

func NewBlogHandler(blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

func (h *BlogHandler) Create(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		httpx.Abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var title, content string
	var file *multipart.FileHeader

	if isJSON(ctx) {
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := ctx.ShouldBindJSON(&req); err != nil {
			httpx.Error(ctx, apperr.Validation("Invalid request body"))
			return
		}
		title, content = req.Title, req.Content
	} else {
		title = ctx.PostForm("title")
		content = ctx.PostForm("content")
		file = formImage(ctx)
	}

	blog, err := h.blogs.Create(userID, title, content, file)
	if err != nil {
		httpx.Error(ctx, err)
		return
	}

	httpx.Created(ctx, blog, "Blog created successfully")
}

func (h *BlogHandler) List(ctx *gin.Context) {
	// Non-numeric values fall through as 0 and take the service defaults.
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	blogs, meta, err := h.blogs.List(page, limit)
	if err != nil {
		httpx.Error(ctx, err)
		return
	}

	httpx.OKWithMeta(ctx, blogs, "List of blogs", meta)
}

func (h *BlogHandler) Get(ctx *gin.Context) {
	blog, err := h.blogs.Get(ctx.Param("id"))
	if err != nil {
		httpx.Error(ctx, err)
		return
	}

	httpx.OK(ctx, blog, "Blog details")
}

func (h *BlogHandler) Update(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		httpx.Abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var title, content *string
	var file *multipart.FileHeader

	if isJSON(ctx) {
		var req struct {
			Title   *string `json:"title"`
			Content *string `json:"content"`
		}
		if err := ctx.ShouldBindJSON(&req); err != nil {
			httpx.Error(ctx, apperr.Validation("Invalid request body"))
			return
		}
		title, content = req.Title, req.Content
	} else {
		if value, exists := ctx.GetPostForm("title"); exists {
			title = &value
		}
		if value, exists := ctx.GetPostForm("content"); exists {
			content = &value
		}
		file = formImage(ctx)
	}

	blog, err := h.blogs.Update(ctx.Param("id"), userID, title, content, file)
	if err != nil {
		httpx.Error(ctx, err)
		return
	}

	httpx.OK(ctx, blog, "Blog updated successfully")
}

func (h *BlogHandler) Delete(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		httpx.Abort(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.blogs.Delete(ctx.Param("id"), userID); err != nil {
		httpx.Error(ctx, err)
		return
	}

	httpx.OK(ctx, nil, "Blog deleted successfully")
}

func isJSON(ctx *gin.Context) bool {
	return strings.HasPrefix(ctx.ContentType(), "application/json")
}

func formImage(ctx *gin.Context) *multipart.FileHeader {
	file, err := ctx.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}
