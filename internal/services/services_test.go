package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/storage"
	"github.com/inkwell-dev/inkwell/internal/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(&models.User{}, &models.Blog{}))

	return database
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	tokens := auth.NewTokenManager("test-secret", auth.DefaultTTL)

	return NewAuthService(store.NewUserStore(db), tokens), db
}

func newBlogService(t *testing.T) (*BlogService, *storage.LocalStore, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)

	images, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return NewBlogService(store.NewBlogStore(db), images), images, db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Name: "Test", Email: email, PasswordHash: "hash"}
	require.NoError(t, db.Create(user).Error)

	return user
}

func imageFile(t *testing.T, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, "pic.png"))
	header.Set("Content-Type", "image/png")

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["image"][0]
}

func strPtr(s string) *string {
	return &s
}
