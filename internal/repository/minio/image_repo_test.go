package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:9000/catalog-images/products/1700000000000-abc1234.png",
		PublicURL("http://localhost:9000", "catalog-images", "products/1700000000000-abc1234.png"),
	)
}
