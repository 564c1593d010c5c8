package domain

import "time"

// Admin — учетная запись администратора каталога
type Admin struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
