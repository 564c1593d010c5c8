package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/infrastructure"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/jitter"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Папки бакета по назначению изображений
const (
	FolderCategories = "categories"
	FolderProducts   = "products"
	FolderContent    = "content"
)

const (
	cleanupAttempts   = 3
	cleanupTimeout    = 30 * time.Second
	defaultMaxUpload  = 5 << 20
	randomSuffixChars = 7
)

// ValidFolder сообщает, является ли папка одной из допустимых.
func ValidFolder(folder string) bool {
	switch folder {
	case FolderCategories, FolderProducts, FolderContent:
		return true
	}
	return false
}

// ImageStorage валидирует, загружает и удаляет изображения каталога.
type ImageStorage struct {
	repo        usecase.ImageRepository
	cfg         *cfg.StorageCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
	backoff     jitter.Backoff
	now         func() time.Time
}

func NewImageStorage(repo usecase.ImageRepository, cfg *cfg.StorageCfg, logger logger.Logger, shutdownCtx context.Context) *ImageStorage {
	return &ImageStorage{
		repo:        repo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		backoff:     jitter.Backoff{Base: time.Second, Max: 8 * time.Second, Factor: jitter.DefaultFactor},
		now:         time.Now,
	}
}

func (s *ImageStorage) maxUploadSize() int64 {
	if s.cfg.MaxUploadSize > 0 {
		return s.cfg.MaxUploadSize
	}
	return defaultMaxUpload
}

// formatLimit печатает лимит целыми мегабайтами, а некратный мегабайту
// лимит в двоичных единицах (512 KiB, 1.5 MiB).
func formatLimit(limit int64) string {
	if limit >= 1<<20 && limit%(1<<20) == 0 {
		return fmt.Sprintf("%dMB", limit>>20)
	}
	return humanize.IBytes(uint64(limit))
}

// Upload проверяет файл и загружает его в папку бакета.
// Проверки MIME-типа и размера выполняются до любого сетевого вызова.
func (s *ImageStorage) Upload(ctx context.Context, file domain.ImageFile, folder string) (string, error) {
	const op = "ImageStorage.Upload"

	if !strings.HasPrefix(file.ContentType, "image/") {
		return "", e.NewPublic(e.Wrap(op, e.ErrNotAnImage), "File harus berupa gambar")
	}

	if limit := s.maxUploadSize(); file.Size() > limit {
		return "", e.NewPublic(e.Wrap(op, e.ErrFileTooLarge), "Ukuran file maksimal "+formatLimit(limit))
	}

	key := s.objectKey(folder, file)
	url, err := s.repo.Upload(ctx, domain.NewImage(key, file.Data, file.ContentType))
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return url, nil
}

// objectKey формирует ключ вида {folder/}{unixMillis}-{random}.{ext}
func (s *ImageStorage) objectKey(folder string, file domain.ImageFile) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:randomSuffixChars]
	name := fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), suffix, infrastructure.ExtensionFor(file.Name, file.ContentType))

	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// KeyFromURL извлекает ключ объекта из публичного URL.
// Второй результат false, если URL не указывает на бакет каталога.
func (s *ImageStorage) KeyFromURL(url string) (string, bool) {
	marker := s.cfg.BucketName + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}
	key := url[idx+len(marker):]
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	return key, key != ""
}

// Owns сообщает, хранится ли изображение по URL в бакете каталога.
func (s *ImageStorage) Owns(url string) bool {
	_, ok := s.KeyFromURL(url)
	return ok
}

// Delete удаляет объект по публичному URL. Чужие URL игнорируются.
func (s *ImageStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.KeyFromURL(url)
	if !ok {
		return nil
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		return e.Wrap("ImageStorage.Delete", err)
	}
	return nil
}

// CleanupImages запускает фоновое удаление изображений по URL.
// Ошибки только логируются и не возвращаются вызывающему.
func (s *ImageStorage) CleanupImages(urls []string) {
	keys := s.uniqueKeys(urls)
	if len(keys) == 0 {
		return
	}
	s.wg.Add(1)
	go s.cleanup(keys)
}

func (s *ImageStorage) uniqueKeys(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		key, ok := s.KeyFromURL(u)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// cleanup удаляет объекты параллельно, повторяя неудачные попытки
// с экспоненциальной задержкой и jitter.
func (s *ImageStorage) cleanup(keys []string) {
	defer s.wg.Done()
	const op = "ImageStorage.cleanup"

	ctx, cancel := context.WithTimeout(s.shutdownCtx, cleanupTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.deleteWithRetry(ctx, key); err != nil {
				s.logger.Warnf("%s: failed to delete image %s: %v", op, key, err)
			}
		}()
	}
	wg.Wait()
}

func (s *ImageStorage) deleteWithRetry(ctx context.Context, key string) error {
	var err error
	for attempt := 0; attempt < cleanupAttempts; attempt++ {
		if err = s.repo.Delete(ctx, key); err == nil {
			return nil
		}

		if attempt == cleanupAttempts-1 {
			break
		}

		if werr := s.backoff.Wait(ctx, attempt); werr != nil {
			return fmt.Errorf("cleanup interrupted: %w", werr)
		}
	}
	return err
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (s *ImageStorage) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("image cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
