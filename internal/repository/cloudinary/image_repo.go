package cloudinary

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/jimlawless/whereami"
)

// ImageRepo хранит изображения в Cloudinary. Бакет каталога используется
// как корневая папка, поэтому публичные URL содержат "{bucket}/{key}".
type ImageRepo struct {
	cld *cloudinary.Cloudinary
	cfg *cfg.StorageCfg
}

func NewImageRepo(cld *cloudinary.Cloudinary, cfg *cfg.StorageCfg) *ImageRepo {
	return &ImageRepo{cld: cld, cfg: cfg}
}

// NewClient создает клиент Cloudinary из CLOUDINARY_URL.
func NewClient(cfg *cfg.StorageCfg) (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cld.Config.URL.Secure = true
	return cld, nil
}

func (i *ImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	resp, err := i.cld.Upload.Upload(ctx, bytes.NewReader(image.Bytes), uploader.UploadParams{
		PublicID:       PublicID(i.cfg.BucketName, image.Key),
		Overwrite:      api.Bool(false),
		UniqueFilename: api.Bool(false),
		ResourceType:   "image",
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}
	if resp.Error.Message != "" {
		return "", e.Wrap(whereami.WhereAmI(), fmt.Errorf("cloudinary upload: %s", resp.Error.Message))
	}

	return resp.SecureURL, nil
}

func (i *ImageRepo) Delete(ctx context.Context, key string) error {
	resp, err := i.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     PublicID(i.cfg.BucketName, key),
		ResourceType: "image",
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if resp.Error.Message != "" {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("cloudinary destroy: %s", resp.Error.Message))
	}

	return nil
}

// PublicID переводит ключ объекта в public id Cloudinary: папка бакета плюс ключ без расширения.
func PublicID(bucket, key string) string {
	return bucket + "/" + strings.TrimSuffix(key, path.Ext(key))
}
