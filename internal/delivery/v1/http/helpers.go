package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

const (
	maxTotalRequestSize = 50 << 20
	maxMemory           = 32 << 20
	maxJSONBodySize     = 1 << 20
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

type publicError interface {
	PublicMessage() string
}

// ToHTTPResponse сопоставляет ошибку со статусом и сообщением для клиента.
// Если в цепочке есть сообщение для пользователя, возвращается оно.
func ToHTTPResponse(err error) (int, string) {
	code, msg := statusFor(err)

	var pub publicError
	if code != http.StatusInternalServerError && errors.As(err, &pub) {
		msg = pub.PublicMessage()
	}
	return code, msg
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest, e.ErrValidation.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrExpectedJSON):
		return http.StatusBadRequest, e.ErrExpectedJSON.Error()
	case errors.Is(err, e.ErrInvalidIcon):
		return http.StatusBadRequest, e.ErrInvalidIcon.Error()
	case errors.Is(err, e.ErrInvalidProductType):
		return http.StatusBadRequest, e.ErrInvalidProductType.Error()
	case errors.Is(err, e.ErrInvalidContentKey):
		return http.StatusBadRequest, e.ErrInvalidContentKey.Error()
	case errors.Is(err, e.ErrUnknownFolder):
		return http.StatusBadRequest, e.ErrUnknownFolder.Error()
	case errors.Is(err, e.ErrNoImages):
		return http.StatusBadRequest, e.ErrNoImages.Error()
	case errors.Is(err, e.ErrNotAnImage):
		return http.StatusBadRequest, e.ErrNotAnImage.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrTokenRevoked), errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrUploadInProgress):
		return http.StatusConflict, e.ErrUploadInProgress.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Ошибки иконки сохраняются,
// остальные ошибки разбора сводятся к ErrExpectedJSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, e.ErrInvalidIcon) {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return e.Wrap(err.Error(), e.ErrExpectedJSON)
	}
	return nil
}

func ensureMultipartForm(w http.ResponseWriter, r *http.Request) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return e.NewPublic(e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge), "Ukuran permintaan maksimal 50MB")
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

func readImages(files []*multipart.FileHeader) ([]domain.ImageFile, error) {
	if len(files) == 0 {
		return nil, e.ErrNoImages
	}

	images := make([]domain.ImageFile, 0, len(files))
	for _, fh := range files {
		img, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// readFile читает файл формы. MIME-тип определяется по содержимому,
// а не по заголовку клиента.
func readFile(fh *multipart.FileHeader) (domain.ImageFile, error) {
	src, err := fh.Open()
	if err != nil {
		return domain.ImageFile{}, e.Wrap(whereami.WhereAmI(), err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return domain.ImageFile{}, e.Wrap(whereami.WhereAmI(), err)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return domain.ImageFile{Name: fh.Filename, ContentType: mimeType, Data: data}, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
