package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/stadiumorder/internal/api/dto"
	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/api"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/stadiumorder/internal/service"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// @Summary list products
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ProductDTO "success"
// @Failure 500 {object} api.ErrorResponse "Internal server error"
// @Router /products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		result = append(result, convertProductToDTO(&p))
	}
	api.SuccessJSON(w, result)
}

// @Summary get product by id
// @Tags catalog
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} dto.ProductDTO "success"
// @Failure 404 {object} api.ErrorResponse "NotFound"
// @Failure 500 {object} api.ErrorResponse "Internal server error"
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductToDTO(product))
}

// @Summary list delivery sections
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.SectionDTO "success"
// @Failure 500 {object} api.ErrorResponse "Internal server error"
// @Router /sections [get]
func (h *CatalogHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.catalogService.ListSections(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]dto.SectionDTO, 0, len(sections))
	for _, s := range sections {
		result = append(result, convertSectionToDTO(&s))
	}
	api.SuccessJSON(w, result)
}

// @Summary toggle section delivery availability
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "section id"
// @Param update body dto.SectionUpdateDTO true "section update"
// @Success 200 {object} dto.SectionDTO "success"
// @Failure 404 {object} api.ErrorResponse "NotFound"
// @Failure 500 {object} api.ErrorResponse "Internal server error"
// @Router /sections/{id} [patch]
func (h *CatalogHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	var updateDTO dto.SectionUpdateDTO
	if err := decodeJSONBody(r, &updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}
	if updateDTO.IsDeliveryAvailable == nil {
		api.ErrorJSON(w, http.StatusBadRequest, "isDeliveryAvailable is required")
		return
	}

	section, err := h.catalogService.UpdateSectionDelivery(r.Context(), id, *updateDTO.IsDeliveryAvailable)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSectionToDTO(section))
}

func convertProductToDTO(p *model.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    string(p.Category),
		ImageUrl:    p.ImageUrl,
		IsAvailable: p.IsAvailable,
	}
}

func convertSectionToDTO(s *model.Section) dto.SectionDTO {
	return dto.SectionDTO{
		ID:                  s.SectionID,
		Name:                s.Name,
		IsDeliveryAvailable: s.IsDeliveryAvailable,
	}
}

func parseIDParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	return uint(id), err
}
