package domain

import (
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIcon(t *testing.T) {
	for _, icon := range Icons() {
		got, err := ParseIcon(icon.String())
		require.NoError(t, err)
		assert.Equal(t, icon, got)
		assert.NotEmpty(t, got.Handle())
	}

	_, err := ParseIcon("Rocket")
	assert.ErrorIs(t, err, e.ErrInvalidIcon)

	assert.Equal(t, "piggy-bank", IconPiggyBank.Handle())
	assert.Len(t, Icons(), 15)
}

func TestIcon_JSON(t *testing.T) {
	type wrapper struct {
		Icon Icon `json:"icon"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"icon":"Shield"}`), &w))
	assert.Equal(t, IconShield, w.Icon)

	err := json.Unmarshal([]byte(`{"icon":"shield"}`), &w)
	assert.ErrorIs(t, err, e.ErrInvalidIcon)

	_, err = json.Marshal(wrapper{Icon: "Nope"})
	assert.Error(t, err)
}

func TestFlattenRoundTrip(t *testing.T) {
	goods := GoodsContent{
		Overview: "<p>o</p>", IssuerName: DefaultIssuerName, KeyFeatures: "<p>k</p>",
		Benefits: "b", Risks: "r", Requirements: "q", Costs: "c", AdditionalInfo: "a",
	}
	back, err := BuildContent(ProductTypeGoods, Flatten(goods))
	require.NoError(t, err)
	assert.Equal(t, goods, back)

	service := ServiceContent{Description: "<p>d</p>", KeyFeatures: "<p>k</p>", Steps: "<ol></ol>"}
	flat := Flatten(service)
	assert.Equal(t, "<p>d</p>", flat.KenaliProduk)
	assert.Equal(t, "<ol></ol>", flat.Persyaratan)
	assert.Empty(t, flat.Manfaat)

	back, err = BuildContent(ProductTypeService, flat)
	require.NoError(t, err)
	assert.Equal(t, service, back)

	_, err = BuildContent("other", flat)
	assert.ErrorIs(t, err, e.ErrInvalidProductType)
}

func TestContent_WithField(t *testing.T) {
	var c ProductContent = ServiceContent{Description: "x"}

	c, err := c.WithField(FieldRequirements, "<p>steps</p>")
	require.NoError(t, err)
	steps, ok := c.Field(FieldRequirements)
	assert.True(t, ok)
	assert.Equal(t, "<p>steps</p>", steps)

	_, err = c.WithField(FieldCosts, "<p>fee</p>")
	assert.ErrorIs(t, err, e.ErrInvalidContentKey)

	assert.Len(t, RichTextValues(GoodsContent{}), 7)
}

func TestExtractYouTubeID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":          "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10":     "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?si=abc":                  "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":            "dQw4w9WgXcQ",
		"https://vimeo.com/123":                                "",
		"":                                                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, ExtractYouTubeID(in), in)
	}
}

func TestProduct_CloneAndMedia(t *testing.T) {
	p := &Product{
		ThumbnailURL:  "t",
		GalleryImages: []string{"g1", "", "g2"},
		Content:       ServiceContent{},
	}
	cp := p.Clone()
	cp.GalleryImages[0] = "changed"

	assert.Equal(t, "g1", p.GalleryImages[0])
	assert.Equal(t, []string{"t", "g1", "g2"}, p.MediaURLs())
	assert.Equal(t, ProductTypeService, p.Type())
}
