// Package richtext работает с HTML-содержимым rich-text полей продукта.
package richtext

import (
	"bytes"
	"strings"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const emptyParagraph = "<p></p>"

// Image — изображение, встроенное в документ.
type Image struct {
	Src   string
	Alt   string
	Title string
}

// Document — HTML-фрагмент rich-text поля.
type Document struct {
	nodes []*html.Node
}

func bodyContext() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
}

// Parse разбирает HTML-фрагмент.
func Parse(s string) (*Document, error) {
	nodes, err := html.ParseFragment(strings.NewReader(s), bodyContext())
	if err != nil {
		return nil, e.Wrap("richtext.Parse", err)
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return &Document{nodes: nodes}, nil
}

// HTML возвращает документ в виде HTML-строки.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	for _, n := range d.nodes {
		_ = html.Render(&buf, n)
	}
	return buf.String()
}

// Len возвращает количество узлов верхнего уровня.
func (d *Document) Len() int {
	return len(d.nodes)
}

// IsEmpty сообщает, что документ пуст с точки зрения редактора.
func (d *Document) IsEmpty() bool {
	return IsBlank(d.HTML())
}

// IsBlank сообщает, что HTML-строка пуста: нет содержимого или
// только пустой абзац, который редактор оставляет после очистки.
func IsBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == emptyParagraph
}

// Images возвращает все изображения документа в порядке следования.
func (d *Document) Images() []Image {
	var out []Image
	for _, n := range d.nodes {
		walk(n, func(n *html.Node) {
			if n.Type == html.ElementNode && n.DataAtom == atom.Img {
				out = append(out, Image{
					Src:   attr(n, "src"),
					Alt:   attr(n, "alt"),
					Title: attr(n, "title"),
				})
			}
		})
	}
	return out
}

// ImageSources возвращает непустые src всех изображений документа.
func (d *Document) ImageSources() []string {
	var out []string
	for _, img := range d.Images() {
		if img.Src != "" {
			out = append(out, img.Src)
		}
	}
	return out
}

// Insert вставляет узлы одной операцией перед позицией at.
// Позиция вне диапазона означает вставку в конец.
func (d *Document) Insert(at int, nodes ...*html.Node) {
	if at < 0 || at > len(d.nodes) {
		at = len(d.nodes)
	}
	merged := make([]*html.Node, 0, len(d.nodes)+len(nodes))
	merged = append(merged, d.nodes[:at]...)
	merged = append(merged, nodes...)
	merged = append(merged, d.nodes[at:]...)
	d.nodes = merged
}

// ImageNode создает узел <img> с подписью в alt и title.
func ImageNode(src, caption string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "img",
		DataAtom: atom.Img,
		Attr: []html.Attribute{
			{Key: "src", Val: src},
			{Key: "alt", Val: caption},
			{Key: "title", Val: caption},
		},
	}
}

// EmptyParagraphNode создает пустой абзац <p></p>.
func EmptyParagraphNode() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
}

// ExtractImageSources возвращает src изображений из HTML-строки.
// Некорректный HTML дает пустой результат.
func ExtractImageSources(s string) []string {
	if IsBlank(s) {
		return nil
	}
	doc, err := Parse(s)
	if err != nil {
		return nil
	}
	return doc.ImageSources()
}

// NodeImageSources возвращает src всех <img> среди узлов и их потомков.
func NodeImageSources(nodes ...*html.Node) []string {
	var out []string
	for _, n := range nodes {
		walk(n, func(n *html.Node) {
			if n.Type == html.ElementNode && n.DataAtom == atom.Img {
				out = append(out, attr(n, "src"))
			}
		})
	}
	return out
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
