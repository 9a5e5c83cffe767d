package media

import (
	"context"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domain "github.com/klassifikator/backend/internal/domain/media"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// MockMediaRepository is a mock implementation of domain.Repository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) FindByID(ctx context.Context, id int64) (*domain.MediaFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaFile), args.Error(1)
}

func (m *MockMediaRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]domain.MediaFile, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaFile), args.Error(1)
}

func (m *MockMediaRepository) FindByOrganizationAndCategory(ctx context.Context, organizationID int64, category string) ([]domain.MediaFile, error) {
	args := m.Called(ctx, organizationID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaFile), args.Error(1)
}

func (m *MockMediaRepository) Save(ctx context.Context, f *domain.MediaFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockObjectStorage is a mock implementation of storage.ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	args := m.Called(ctx, storageKey, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) Delete(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) PublicURL(storageKey string) string {
	args := m.Called(storageKey)
	return args.String(0)
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, bucket, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (noopCache) Set(ctx context.Context, bucket, key string, value interface{}) error {
	return nil
}

func (noopCache) InvalidateBucket(ctx context.Context, bucket string) error {
	return nil
}

func newTestService() (*Service, *MockMediaRepository, *MockObjectStorage) {
	repo := new(MockMediaRepository)
	store := new(MockObjectStorage)
	svc := NewService(repo, store, noopCache{}, resty.New(), zap.NewNop())
	return svc, repo, store
}

func TestUpload_Success(t *testing.T) {
	svc, repo, store := newTestService()
	ctx := context.Background()

	store.On("Upload", ctx, mock.AnythingOfType("string"), []byte("image-bytes"), "image/png").Return(nil)
	store.On("PublicURL", mock.AnythingOfType("string")).Return("https://cdn.example.com/key")
	repo.On("Save", ctx, mock.AnythingOfType("*media.MediaFile")).Return(nil)

	f, err := svc.Upload(ctx, UploadRequest{
		OrganizationID:   5,
		OriginalFilename: "logo.png",
		ContentType:      "image/png",
		Category:         "logo",
		Data:             []byte("image-bytes"),
	})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(f.Filename, "organizations/5/"))
	assert.True(t, strings.HasSuffix(f.Filename, "_logo.png"))
	assert.Equal(t, "https://cdn.example.com/key", f.FilePath)
	assert.Equal(t, int64(11), f.FileSize)
	store.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpload_EmptyFileRejected(t *testing.T) {
	svc, _, store := newTestService()

	f, err := svc.Upload(context.Background(), UploadRequest{OrganizationID: 5})

	assert.Error(t, err)
	assert.Nil(t, f)
	store.AssertNotCalled(t, "Upload")
}

func TestUpload_SaveFailureRemovesObject(t *testing.T) {
	svc, repo, store := newTestService()
	ctx := context.Background()

	store.On("Upload", ctx, mock.AnythingOfType("string"), mock.Anything, mock.Anything).Return(nil)
	store.On("PublicURL", mock.AnythingOfType("string")).Return("url")
	repo.On("Save", ctx, mock.Anything).Return(assert.AnError)
	store.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

	f, err := svc.Upload(ctx, UploadRequest{
		OrganizationID:   5,
		OriginalFilename: "photo.jpg",
		Data:             []byte("x"),
	})

	assert.Error(t, err)
	assert.Nil(t, f)
	store.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("string"))
}

func TestDelete_StorageFailureStillDeletesRecord(t *testing.T) {
	svc, repo, store := newTestService()
	ctx := context.Background()

	f := &domain.MediaFile{OrganizationID: 5, Filename: "organizations/5/abc_logo.png"}
	f.ID = 3

	repo.On("FindByID", ctx, int64(3)).Return(f, nil)
	repo.On("Delete", ctx, int64(3)).Return(nil)
	store.On("Delete", ctx, "organizations/5/abc_logo.png").Return(assert.AnError)

	err := svc.Delete(ctx, 3)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo, store := newTestService()
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(99)).Return(nil, shared.ErrNotFound)

	err := svc.Delete(ctx, 99)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	store.AssertNotCalled(t, "Delete")
}

func TestMimeTypeByExtension(t *testing.T) {
	assert.Equal(t, "image/png", mimeTypeByExtension("logo.PNG"))
	assert.Equal(t, "image/webp", mimeTypeByExtension("photo.webp"))
	assert.Equal(t, "image/jpeg", mimeTypeByExtension("photo.jpg"))
	assert.Equal(t, "image/jpeg", mimeTypeByExtension("noext"))
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "logo.png", filenameFromURL("https://example.com/images/logo.png?v=2"))
	assert.Equal(t, "picture.jpg", filenameFromURL("https://example.com/picture"))
	assert.Equal(t, "download.jpg", filenameFromURL("https://example.com/"))
}
