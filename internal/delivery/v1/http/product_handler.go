package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/form"
	"github.com/DRSN-tech/catalog-backend/internal/listing"
	"github.com/DRSN-tech/catalog-backend/internal/richtext"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// getPublished
//
//	@Summary		Страница продукта
//	@Description	Только опубликованные продукты. Включает до четырех похожих продуктов того же типа.
//	@Tags			products
//	@Produce		json
//	@Param			slug	path		string	true	"Slug продукта"
//	@Success		200		{object}	ProductDetailResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{slug} [get]
func (p *ProductHandler) getPublished(w http.ResponseWriter, r *http.Request) {
	product, err := p.catalogUsecase.GetPublishedProduct(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		WriteError(w, err)
		return
	}

	related, err := p.catalogUsecase.RelatedProducts(r.Context(), product)
	if err != nil {
		p.logger.Errorf(err, "related products of %s", product.ID)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ProductDetailResponse{
		Product:   toProductResponse(product),
		YoutubeID: product.YouTubeID(),
		Related:   toProductResponses(related),
	})
}

// listPublished
//
//	@Summary	Опубликованные продукты
//	@Tags		products
//	@Produce	json
//	@Param		type	query	string	false	"produk | layanan"
//	@Success	200		{array}		ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listPublished(w http.ResponseWriter, r *http.Request) {
	var (
		products []*domain.Product
		err      error
	)
	if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
		products, err = p.catalogUsecase.ProductsByType(r.Context(), domain.ProductType(t))
	} else {
		products, err = p.catalogUsecase.SearchProducts(r.Context(), "", listing.CategoryAll)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// search
//
//	@Summary		Поиск продуктов
//	@Description	Подстрока в названии или кратком описании без учета регистра
//	@Tags			products
//	@Produce		json
//	@Param			q			query	string	false	"Строка поиска"
//	@Param			category	query	string	false	"ID категории или all"
//	@Success		200			{array}	ProductResponse
//	@Router			/search [get]
func (p *ProductHandler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = listing.CategoryAll
	}

	products, err := p.catalogUsecase.SearchProducts(r.Context(), q.Get("q"), category)
	if err != nil {
		p.logger.Errorf(err, "search products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// list
//
//	@Summary	Список продуктов админки
//	@Tags		admin-products
//	@Security	BearerAuth
//	@Produce	json
//	@Param		q			query		string	false	"Строка поиска"
//	@Param		category	query		string	false	"ID категории или all"
//	@Param		status		query		string	false	"all | published | draft"
//	@Param		page		query		int		false	"Номер страницы"
//	@Param		size		query		int		false	"Размер страницы"
//	@Success	200			{object}	ProductPageResponse
//	@Router		/admin/products [get]
func (p *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	page, err := p.catalogUsecase.AdminProducts(r.Context(), listing.ParseState(r.URL.Query()))
	if err != nil {
		p.logger.Errorf(err, "list admin products")
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toProductPageResponse(page))
}

// get
//
//	@Summary	Продукт по id
//	@Tags		admin-products
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"ID продукта"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id} [get]
func (p *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	product, err := p.catalogUsecase.GetProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// create
//
//	@Summary	Создание продукта
//	@Tags		admin-products
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		form.ProductForm	true	"Продукт"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/admin/products [post]
func (p *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	in := form.NewProductForm()
	if err := decodeJSON(w, r, &in); err != nil {
		p.logger.Warnf("%d create product: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.AddProduct(r.Context(), in)
	if err != nil {
		p.logger.Warnf("create product: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// update
//
//	@Summary	Частичное изменение продукта
//	@Tags		admin-products
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"ID продукта"
//	@Param		body	body		usecase.ProductPatch	true	"Изменяемые поля"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/admin/products/{id} [patch]
func (p *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	var patch usecase.ProductPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		p.logger.Warnf("%d update product: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		p.logger.Warnf("update product: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// delete
//
//	@Summary	Удаление продукта
//	@Tags		admin-products
//	@Security	BearerAuth
//	@Param		id	path	string	true	"ID продукта"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id} [delete]
func (p *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := p.catalogUsecase.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		p.logger.Warnf("delete product: %v", err)
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// togglePublish
//
//	@Summary	Переключение публикации
//	@Tags		admin-products
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"ID продукта"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id}/publish [post]
func (p *ProductHandler) togglePublish(w http.ResponseWriter, r *http.Request) {
	product, err := p.catalogUsecase.TogglePublish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("toggle publish: %v", err)
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// insertContentImages
//
//	@Summary		Вставка изображений в rich-text поле
//	@Description	Загружает изображения параллельно и вставляет их с подписями одной операцией. Пустая подпись заменяется на "Langkah N".
//	@Tags			admin-products
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id			path		string	true	"ID продукта"
//	@Param			field		path		string	true	"Поле, например kenali_produk"
//	@Param			images		formData	file	true	"Изображения"
//	@Param			captions	formData	string	false	"Подписи в порядке изображений"
//	@Param			position	formData	int		false	"Индекс блока, перед которым вставлять; по умолчанию в конец"
//	@Success		200			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/admin/products/{id}/content/{field}/images [post]
func (p *ProductHandler) insertContentImages(w http.ResponseWriter, r *http.Request) {
	if err := ensureMultipartForm(w, r); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files, err := readImages(r.MultipartForm.File["images"])
	if err != nil {
		p.logger.Warnf("%d %s: %v", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err)
		WriteError(w, err)
		return
	}

	captions := r.MultipartForm.Value["captions"]
	staged := make([]richtext.StagedImage, len(files))
	for i, f := range files {
		staged[i] = richtext.StagedImage{File: f}
		if i < len(captions) {
			staged[i].Caption = captions[i]
		}
	}

	position := -1
	if v := strings.TrimSpace(r.FormValue("position")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			WriteError(w, e.Wrap("position "+v, e.ErrStatusBadRequest))
			return
		}
		position = n
	}

	product, err := p.catalogUsecase.InsertContentImages(r.Context(), usecase.InsertImagesReq{
		ProductID: chi.URLParam(r, "id"),
		Field:     domain.ContentField(chi.URLParam(r, "field")),
		Images:    staged,
		Position:  position,
	})
	if err != nil {
		p.logger.Warnf("insert content images: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// dashboard
//
//	@Summary	Сводка админки
//	@Tags		admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	DashboardResponse
//	@Router		/admin/dashboard [get]
func (p *ProductHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := p.catalogUsecase.Dashboard(r.Context())
	if err != nil {
		p.logger.Errorf(err, "dashboard")
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toDashboardResponse(stats))
}
