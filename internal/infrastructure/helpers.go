package infrastructure

import (
	"path"
	"strings"
)

// ExtensionFor возвращает расширение файла изображения: из имени файла,
// а если его нет, по MIME-типу.
func ExtensionFor(name, mime string) string {
	if ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), "."); ext != "" {
		return ext
	}
	return GetExtensionFromMIME(mime)
}

// GetExtensionFromMIME возвращает расширение файла по MIME-типу изображения.
// Для неизвестных типов возвращается "bin".
func GetExtensionFromMIME(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/svg+xml":
		return "svg"
	case "image/avif":
		return "avif"
	default:
		return "bin"
	}
}
