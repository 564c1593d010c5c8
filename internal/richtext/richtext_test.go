package richtext

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	mu      sync.Mutex
	failOn  string
	calls   []string
	cleaned []string
}

func (f *fakeUploader) Upload(_ context.Context, file domain.ImageFile, folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, folder+"/"+file.Name)
	if file.Name == f.failOn {
		return "", errors.New("storage unavailable")
	}
	return fmt.Sprintf("https://cdn.test/catalog-images/%s/%s", folder, file.Name), nil
}

func (f *fakeUploader) CleanupImages(urls []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, urls...)
}

func img(name string) domain.ImageFile {
	return domain.ImageFile{Name: name, ContentType: "image/png", Data: []byte{1, 2, 3}}
}

func TestDocument_ParseAndImages(t *testing.T) {
	doc, err := Parse(`<p>intro</p><p><img src="https://x/a.png" alt="A" title="A"></p><img src="https://x/b.png">`)
	require.NoError(t, err)

	images := doc.Images()
	require.Len(t, images, 2)
	assert.Equal(t, Image{Src: "https://x/a.png", Alt: "A", Title: "A"}, images[0])
	assert.Equal(t, []string{"https://x/a.png", "https://x/b.png"}, doc.ImageSources())
	assert.False(t, doc.IsEmpty())
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  "))
	assert.True(t, IsBlank("<p></p>"))
	assert.False(t, IsBlank("<p>x</p>"))

	doc, err := Parse("<p></p>")
	require.NoError(t, err)
	assert.True(t, doc.IsEmpty())

	assert.Nil(t, ExtractImageSources("<p></p>"))
}

func TestStaging_CommitInsertsInOrder(t *testing.T) {
	doc, err := Parse("<p>intro</p>")
	require.NoError(t, err)

	s := NewStaging()
	added, err := s.Stage(img("a.png"), img("b.png"), domain.ImageFile{Name: "x.txt", ContentType: "text/plain"}, img("c.png"))
	require.NoError(t, err)
	assert.Equal(t, 3, added)
	assert.Equal(t, PhaseStaging, s.Phase())

	require.NoError(t, s.SetCaption(0, "A"))
	require.NoError(t, s.SetCaption(2, "C"))

	up := &fakeUploader{}
	require.NoError(t, s.Commit(context.Background(), doc, up, -1))

	images := doc.Images()
	require.Len(t, images, 3)
	assert.Equal(t, "A", images[0].Alt)
	assert.Equal(t, "A", images[0].Title)
	assert.Equal(t, "Langkah 2", images[1].Alt)
	assert.Equal(t, "Langkah 2", images[1].Title)
	assert.Equal(t, "C", images[2].Alt)
	assert.Equal(t, "https://cdn.test/catalog-images/content/a.png", images[0].Src)
	assert.Equal(t, "https://cdn.test/catalog-images/content/c.png", images[2].Src)

	// intro + (img, p) * 3
	assert.Equal(t, 7, doc.Len())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Empty(t, s.Images())
	assert.Len(t, up.calls, 3)
}

func TestStaging_CommitAtPosition(t *testing.T) {
	doc, err := Parse("<p>first</p><p>last</p>")
	require.NoError(t, err)

	s := NewStaging()
	_, err = s.Stage(img("a.png"))
	require.NoError(t, err)
	require.NoError(t, s.Commit(context.Background(), doc, &fakeUploader{}, 1))

	assert.Equal(t,
		`<p>first</p><img src="https://cdn.test/catalog-images/content/a.png" alt="Langkah 1" title="Langkah 1"/><p></p><p>last</p>`,
		doc.HTML())
}

func TestStaging_CommitFailureKeepsImages(t *testing.T) {
	doc, err := Parse("<p>intro</p>")
	require.NoError(t, err)
	before := doc.HTML()

	s := NewStaging()
	_, err = s.Stage(img("a.png"), img("b.png"))
	require.NoError(t, err)

	up := &fakeUploader{failOn: "b.png"}
	err = s.Commit(context.Background(), doc, up, -1)
	require.Error(t, err)

	assert.Equal(t, before, doc.HTML())
	assert.Equal(t, PhaseStaging, s.Phase())
	assert.Len(t, s.Images(), 2)
}

func TestStaging_RemoveAndCancel(t *testing.T) {
	s := NewStaging()
	_, err := s.Stage(img("a.png"), img("b.png"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(0))
	assert.Equal(t, PhaseStaging, s.Phase())
	assert.Equal(t, "b.png", s.Images()[0].File.Name)

	require.NoError(t, s.Remove(0))
	assert.Equal(t, PhaseIdle, s.Phase())

	_, err = s.Stage(img("c.png"))
	require.NoError(t, err)
	s.Cancel()
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Empty(t, s.Images())

	assert.Error(t, s.Remove(3))
}

func TestStaging_CommitWithoutImages(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)

	err = NewStaging().Commit(context.Background(), doc, &fakeUploader{}, -1)
	assert.ErrorIs(t, err, e.ErrNoImages)
}

func TestStaging_UploadReturnsNodesForLaterInsert(t *testing.T) {
	s := NewStaging()
	_, err := s.Stage(img("a.png"), img("b.png"))
	require.NoError(t, err)
	require.NoError(t, s.SetCaption(1, "B"))

	nodes, err := s.Upload(context.Background(), &fakeUploader{})
	require.NoError(t, err)
	require.Len(t, nodes, 4)
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Equal(t, []string{
		"https://cdn.test/catalog-images/content/a.png",
		"https://cdn.test/catalog-images/content/b.png",
	}, NodeImageSources(nodes...))

	// вставка в документ, изменившийся после начала загрузки
	doc, err := Parse("<p>first</p><p>added meanwhile</p>")
	require.NoError(t, err)
	doc.Insert(1, nodes...)
	images := doc.Images()
	require.Len(t, images, 2)
	assert.Equal(t, "Langkah 1", images[0].Alt)
	assert.Equal(t, "B", images[1].Alt)
	assert.Contains(t, doc.HTML(), "<p>added meanwhile</p>")
}
