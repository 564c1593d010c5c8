package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogConverter_ServiceProductSurvivesCache(t *testing.T) {
	conv := NewCatalogConverter()
	ts := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	p := &domain.Product{
		ID:         "p1",
		CategoryID: "c1",
		Title:      "Transfer Antar Bank",
		Slug:       "transfer-antar-bank",
		Content: domain.ServiceContent{
			Description: "<p>desc</p>",
			KeyFeatures: "<p>fitur</p>",
			Steps:       "<p>langkah</p>",
		},
		IsPublished: true,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	data, err := json.Marshal(conv.ToProductModel(p))
	require.NoError(t, err)

	var m ProductRedisModel
	require.NoError(t, json.Unmarshal(data, &m))
	got, err := conv.ToProduct(m)
	require.NoError(t, err)

	assert.Equal(t, p, got)
}

func TestCatalogConverter_RejectsUnknownIcon(t *testing.T) {
	_, err := NewCatalogConverter().ToCategory(CategoryRedisModel{ID: "c1", Icon: "Rocket"})
	assert.ErrorIs(t, err, e.ErrInvalidIcon)
}
