package richtext

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

const (
	// ContentFolder — папка хранилища для изображений внутри rich-text.
	ContentFolder = "content"

	uploadConcurrency = 4
)

// Phase — состояние процесса вставки изображений.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStaging
	PhaseUploading
)

func (p Phase) String() string {
	switch p {
	case PhaseStaging:
		return "staging"
	case PhaseUploading:
		return "uploading"
	default:
		return "idle"
	}
}

// Uploader загружает изображение в хранилище и возвращает его публичный URL.
type Uploader interface {
	Upload(ctx context.Context, file domain.ImageFile, folder string) (string, error)
}

// Cleaner опционально реализуется загрузчиком для удаления уже загруженных
// изображений, если пакет в целом не удался.
type Cleaner interface {
	CleanupImages(urls []string)
}

// StagedImage — выбранное, но еще не загруженное изображение.
type StagedImage struct {
	File    domain.ImageFile
	Caption string
}

// Staging управляет пакетной вставкой изображений с подписями в документ:
// Idle -> Staging -> Uploading -> Idle.
type Staging struct {
	mu     sync.Mutex
	phase  Phase
	images []StagedImage
}

func NewStaging() *Staging {
	return &Staging{}
}

// Phase возвращает текущее состояние.
func (s *Staging) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Images возвращает копию списка выбранных изображений.
func (s *Staging) Images() []StagedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StagedImage, len(s.images))
	copy(out, s.images)
	return out
}

// Stage добавляет файлы к набору. Файлы не-изображения пропускаются.
// Возвращает количество добавленных файлов.
func (s *Staging) Stage(files ...domain.ImageFile) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseUploading {
		return 0, e.ErrUploadInProgress
	}

	added := 0
	for _, f := range files {
		if !strings.HasPrefix(f.ContentType, "image/") {
			continue
		}
		s.images = append(s.images, StagedImage{File: f})
		added++
	}

	if len(s.images) > 0 {
		s.phase = PhaseStaging
	}
	return added, nil
}

// SetCaption задает подпись изображения с индексом i.
func (s *Staging) SetCaption(i int, caption string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.images) {
		return fmt.Errorf("staged image %d out of range", i)
	}
	s.images[i].Caption = caption
	return nil
}

// Remove убирает изображение из набора. Если набор опустел, процесс
// возвращается в Idle.
func (s *Staging) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseUploading {
		return e.ErrUploadInProgress
	}
	if i < 0 || i >= len(s.images) {
		return fmt.Errorf("staged image %d out of range", i)
	}

	s.images = append(s.images[:i], s.images[i+1:]...)
	if len(s.images) == 0 {
		s.release()
	}
	return nil
}

// Cancel отбрасывает все выбранные изображения без изменения документа.
func (s *Staging) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseUploading {
		return
	}
	s.release()
}

func (s *Staging) release() {
	for i := range s.images {
		s.images[i].File.Data = nil
	}
	s.images = nil
	s.phase = PhaseIdle
}

// Commit загружает все выбранные изображения и одной операцией вставляет
// их в документ перед позицией at.
//
// При любой ошибке загрузки документ не меняется, набор изображений
// сохраняется и процесс возвращается в Staging.
func (s *Staging) Commit(ctx context.Context, doc *Document, up Uploader, at int) error {
	nodes, err := s.Upload(ctx, up)
	if err != nil {
		return err
	}
	doc.Insert(at, nodes...)
	return nil
}

// Upload загружает все выбранные изображения параллельно в папку content
// и возвращает узлы для вставки в порядке выбора: <img> и пустой абзац
// после каждого. Пустая подпись заменяется на "Langkah N".
// Документ не затрагивается, так что вызывающий может вставить узлы
// в актуальную на момент записи версию.
func (s *Staging) Upload(ctx context.Context, up Uploader) ([]*html.Node, error) {
	const op = "Staging.Upload"

	s.mu.Lock()
	switch s.phase {
	case PhaseUploading:
		s.mu.Unlock()
		return nil, e.Wrap(op, e.ErrUploadInProgress)
	case PhaseIdle:
		s.mu.Unlock()
		return nil, e.Wrap(op, e.ErrNoImages)
	}
	s.phase = PhaseUploading
	staged := make([]StagedImage, len(s.images))
	copy(staged, s.images)
	s.mu.Unlock()

	urls := make([]string, len(staged))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i, img := range staged {
		g.Go(func() error {
			url, err := up.Upload(gctx, img.File, ContentFolder)
			if err != nil {
				return fmt.Errorf("upload %s: %w", img.File.Name, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if c, ok := up.(Cleaner); ok {
			c.CleanupImages(nonEmpty(urls))
		}
		s.mu.Lock()
		s.phase = PhaseStaging
		s.mu.Unlock()
		return nil, e.Wrap(op, err)
	}

	nodes := make([]*html.Node, 0, 2*len(staged))
	for i, img := range staged {
		caption := strings.TrimSpace(img.Caption)
		if caption == "" {
			caption = fmt.Sprintf("Langkah %d", i+1)
		}
		nodes = append(nodes, ImageNode(urls[i], caption), EmptyParagraphNode())
	}

	s.mu.Lock()
	s.release()
	s.mu.Unlock()
	return nodes, nil
}

func nonEmpty(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
