package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/infrastructure/storage"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type UploadHandler struct {
	images usecase.ImagesInfra
	logger logger.Logger
}

func NewUploadHandler(images usecase.ImagesInfra, logger logger.Logger) *UploadHandler {
	return &UploadHandler{images: images, logger: logger}
}

// upload
//
//	@Summary		Загрузка изображения
//	@Description	Проверяет тип и размер (до 5MB) и возвращает публичный URL
//	@Tags			admin-uploads
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			folder	path		string	true	"categories | products | content"
//	@Param			file	formData	file	true	"Изображение"
//	@Success		201		{object}	UploadResponse
//	@Failure		400		{object}	ErrorResponse	"File harus berupa gambar"
//	@Failure		413		{object}	ErrorResponse	"Ukuran file maksimal 5MB"
//	@Router			/admin/uploads/{folder} [post]
func (u *UploadHandler) upload(w http.ResponseWriter, r *http.Request) {
	folder := chi.URLParam(r, "folder")
	if !storage.ValidFolder(folder) {
		WriteError(w, e.Wrap("folder "+folder, e.ErrUnknownFolder))
		return
	}

	if err := ensureMultipartForm(w, r); err != nil {
		u.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		WriteError(w, e.ErrNoImages)
		return
	}

	file, err := readFile(files[0])
	if err != nil {
		u.logger.Errorf(err, "read upload")
		WriteError(w, err)
		return
	}

	url, err := u.images.Upload(r.Context(), file, folder)
	if err != nil {
		u.logger.Warnf("upload %s to %s: %v", file.Name, folder, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, UploadResponse{URL: url})
}
