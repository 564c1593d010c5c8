package storage

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/jitter"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu       sync.Mutex
	uploads  []*domain.Image
	deleted  []string
	failures int
}

func (f *fakeRepo) Upload(_ context.Context, image *domain.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, image)
	return "http://localhost:9000/catalog-images/" + image.Key, nil
}

func (f *fakeRepo) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("temporary")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func newStorage(repo *fakeRepo) *ImageStorage {
	s := NewImageStorage(repo, &cfg.StorageCfg{BucketName: "catalog-images"}, logger.NewNop(), context.Background())
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	s.backoff = jitter.Backoff{Base: time.Millisecond, Max: 4 * time.Millisecond}
	return s
}

func publicMessage(t *testing.T, err error) string {
	t.Helper()
	var pub *e.Public
	require.True(t, errors.As(err, &pub))
	return pub.PublicMessage()
}

func TestImageStorage_RejectsLargeFileWithoutNetwork(t *testing.T) {
	repo := &fakeRepo{}
	s := newStorage(repo)

	file := domain.ImageFile{Name: "big.png", ContentType: "image/png", Data: make([]byte, 6<<20)}
	_, err := s.Upload(context.Background(), file, FolderProducts)

	assert.ErrorIs(t, err, e.ErrFileTooLarge)
	assert.Equal(t, "Ukuran file maksimal 5MB", publicMessage(t, err))
	assert.Empty(t, repo.uploads)
}

func TestImageStorage_SubMegabyteLimitMessage(t *testing.T) {
	repo := &fakeRepo{}
	s := NewImageStorage(repo, &cfg.StorageCfg{BucketName: "catalog-images", MaxUploadSize: 512 << 10}, logger.NewNop(), context.Background())

	file := domain.ImageFile{Name: "big.png", ContentType: "image/png", Data: make([]byte, 600<<10)}
	_, err := s.Upload(context.Background(), file, FolderProducts)

	assert.ErrorIs(t, err, e.ErrFileTooLarge)
	assert.Equal(t, "Ukuran file maksimal 512 KiB", publicMessage(t, err))
	assert.Empty(t, repo.uploads)
}

func TestFormatLimit(t *testing.T) {
	assert.Equal(t, "5MB", formatLimit(5<<20))
	assert.Equal(t, "1.5 MiB", formatLimit(3<<19))
	assert.Equal(t, "100 B", formatLimit(100))
}

func TestImageStorage_RejectsNonImageWithoutNetwork(t *testing.T) {
	repo := &fakeRepo{}
	s := newStorage(repo)

	file := domain.ImageFile{Name: "notes.txt", ContentType: "text/plain", Data: []byte("hello")}
	_, err := s.Upload(context.Background(), file, FolderProducts)

	assert.ErrorIs(t, err, e.ErrNotAnImage)
	assert.Equal(t, "File harus berupa gambar", publicMessage(t, err))
	assert.Empty(t, repo.uploads)
}

func TestImageStorage_UploadKeyFormat(t *testing.T) {
	repo := &fakeRepo{}
	s := newStorage(repo)

	url, err := s.Upload(context.Background(), domain.ImageFile{Name: "Foto.PNG", ContentType: "image/png", Data: []byte{1}}, FolderCategories)
	require.NoError(t, err)
	require.Len(t, repo.uploads, 1)

	key := repo.uploads[0].Key
	assert.Regexp(t, regexp.MustCompile(`^categories/1700000000000-[0-9a-f]{7}\.png$`), key)
	assert.Equal(t, "image/png", repo.uploads[0].ContentType)
	assert.True(t, strings.HasSuffix(url, "/catalog-images/"+key))

	_, err = s.Upload(context.Background(), domain.ImageFile{Name: "blob", ContentType: "image/webp", Data: []byte{1}}, "")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^1700000000000-[0-9a-f]{7}\.webp$`), repo.uploads[1].Key)
}

func TestImageStorage_DeleteForeignURLIsNoop(t *testing.T) {
	repo := &fakeRepo{}
	s := newStorage(repo)

	require.NoError(t, s.Delete(context.Background(), "https://cdn.example.com/other/image.png"))
	assert.Empty(t, repo.deleted)

	require.NoError(t, s.Delete(context.Background(), "http://localhost:9000/catalog-images/products/a.png?v=2"))
	assert.Equal(t, []string{"products/a.png"}, repo.deleted)
}

func TestImageStorage_CleanupRetriesAndDedups(t *testing.T) {
	repo := &fakeRepo{failures: 1}
	s := newStorage(repo)

	s.CleanupImages([]string{
		"http://localhost:9000/catalog-images/content/x.png",
		"http://localhost:9000/catalog-images/content/x.png",
		"https://youtube.com/not-ours.png",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, s.WaitForCleanup(ctx))

	assert.Equal(t, []string{"content/x.png"}, repo.deleted)
}

func TestValidFolder(t *testing.T) {
	assert.True(t, ValidFolder(FolderContent))
	assert.False(t, ValidFolder("avatars"))
}
