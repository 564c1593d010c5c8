package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicID(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"products/1700000000000-abc1234.png", "catalog-images/products/1700000000000-abc1234"},
		{"1700000000000-abc1234.jpg", "catalog-images/1700000000000-abc1234"},
		{"content/noext", "catalog-images/content/noext"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PublicID("catalog-images", tt.key), tt.key)
	}
}
