package domain

// Image описывает изображение, которое кладется в объектное хранилище
type Image struct {
	Key         string // ключ объекта внутри бакета
	Bytes       []byte
	Size        int64
	ContentType string // Example: "image/png"
}

func NewImage(key string, data []byte, contentType string) *Image {
	return &Image{
		Key:         key,
		Bytes:       data,
		Size:        int64(len(data)),
		ContentType: contentType,
	}
}

// ImageFile — файл изображения, полученный от пользователя для загрузки
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f ImageFile) Size() int64 {
	return int64(len(f.Data))
}
