package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/form"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCategoryHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listPublic
//
//	@Summary		Список категорий
//	@Description	Категории по order_index с числом опубликованных продуктов
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		CategoryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categories [get]
func (c *CategoryHandler) listPublic(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Errorf(err, "list categories")
		WriteError(w, err)
		return
	}

	out := toCategoryResponses(categories)
	for i := range out {
		n, err := c.catalogUsecase.PublishedCount(r.Context(), out[i].ID)
		if err != nil {
			c.logger.Errorf(err, "count products of category %s", out[i].ID)
			WriteError(w, err)
			return
		}
		out[i].ProductCount = &n
	}

	WriteSuccess(w, http.StatusOK, out)
}

// getBySlug
//
//	@Summary	Категория с опубликованными продуктами
//	@Tags		categories
//	@Produce	json
//	@Param		slug	path		string	true	"Slug категории"
//	@Success	200		{object}	CategoryDetailResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{slug} [get]
func (c *CategoryHandler) getBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := c.catalogUsecase.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := c.catalogUsecase.ProductsByCategory(r.Context(), category.ID)
	if err != nil {
		c.logger.Errorf(err, "list products of category %s", category.ID)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CategoryDetailResponse{
		Category: toCategoryResponse(category),
		Products: toProductResponses(products),
	})
}

// list
//
//	@Summary	Список категорий (админка)
//	@Tags		admin-categories
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/admin/categories [get]
func (c *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Errorf(err, "list categories")
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toCategoryResponses(categories))
}

// get
//
//	@Summary	Категория по id
//	@Tags		admin-categories
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"ID категории"
//	@Success	200	{object}	CategoryResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/categories/{id} [get]
func (c *CategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	category, err := c.catalogUsecase.GetCategoryByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// create
//
//	@Summary		Создание категории
//	@Description	Slug выводится из имени. Иконка по умолчанию Wallet.
//	@Tags			admin-categories
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		form.CategoryForm	true	"Категория"
//	@Success		201		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/admin/categories [post]
func (c *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	in := form.NewCategoryForm()
	if err := decodeJSON(w, r, &in); err != nil {
		c.logger.Warnf("%d create category: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	category, err := c.catalogUsecase.AddCategory(r.Context(), in)
	if err != nil {
		c.logger.Warnf("create category: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// update
//
//	@Summary	Частичное изменение категории
//	@Tags		admin-categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"ID категории"
//	@Param		body	body		usecase.CategoryPatch	true	"Изменяемые поля"
//	@Success	200		{object}	CategoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/admin/categories/{id} [patch]
func (c *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var patch usecase.CategoryPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		c.logger.Warnf("%d update category: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	category, err := c.catalogUsecase.UpdateCategory(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		c.logger.Warnf("update category: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// delete
//
//	@Summary		Удаление категории
//	@Description	Удаляет категорию вместе со всеми ее продуктами и их изображениями
//	@Tags			admin-categories
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID категории"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/admin/categories/{id} [delete]
func (c *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.catalogUsecase.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.logger.Warnf("delete category: %v", err)
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
