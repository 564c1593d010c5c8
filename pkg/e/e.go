package e

import "fmt"

var (
	// Внутренние ошибки
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrUnknownBackend       = fmt.Errorf("unknown catalog backend")
	ErrTransactionNotFound  = fmt.Errorf("transaction not found in context")

	// 400 Bad Request
	ErrStatusBadRequest   = fmt.Errorf("bad request")
	ErrValidation         = fmt.Errorf("validation failed")
	ErrExpectedMultipart  = fmt.Errorf("expected multipart/form-data")
	ErrExpectedJSON       = fmt.Errorf("invalid json body")
	ErrInvalidIcon        = fmt.Errorf("invalid icon")
	ErrInvalidProductType = fmt.Errorf("invalid product type")
	ErrInvalidContentKey  = fmt.Errorf("unknown rich-text field")
	ErrNoImages           = fmt.Errorf("no images provided")
	ErrNotAnImage         = fmt.Errorf("not an image")
	ErrFileTooLarge       = fmt.Errorf("file too large")
	ErrUnknownFolder      = fmt.Errorf("unknown upload folder")

	// 401 Unauthorized
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrTokenRevoked       = fmt.Errorf("token revoked")

	// 404 Not Found
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrAdminNotFound    = fmt.Errorf("admin not found")

	// 409 Conflict
	ErrUploadInProgress = fmt.Errorf("upload already in progress")
)

// Public — ошибка с сообщением, которое можно показать пользователю.
type Public struct {
	Msg string
	Err error
}

// NewPublic прикрепляет к ошибке сообщение для пользователя.
func NewPublic(err error, msg string) error {
	return &Public{Msg: msg, Err: err}
}

func (p *Public) Error() string {
	return fmt.Sprintf("%s: %v", p.Msg, p.Err)
}

func (p *Public) Unwrap() error {
	return p.Err
}

func (p *Public) PublicMessage() string {
	return p.Msg
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
