package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/stadiumorder/internal/api/dto"
	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/api"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/stadiumorder/internal/pkg/util"
	"github.com/RoyceAzure/lab/stadiumorder/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary create order
// @Tags order
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequestDTO true "cart content"
// @Success 201 {object} dto.OrderWithDetailsDTO "created"
// @Failure 400 {object} api.ErrorResponse "BadRequest"
// @Failure 500 {object} api.ErrorResponse "Internal server error"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderRequestDTO
	if err := decodeJSONBody(r, &createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	ctx := r.Context()

	items := make([]service.CreateOrderItemParams, 0, len(createDTO.Items))
	for _, item := range createDTO.Items {
		items = append(items, service.CreateOrderItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderService.CreateOrder(ctx, &service.CreateOrderParams{
		Items:     items,
		Type:      model.OrderType(createDTO.Type),
		SectionID: createDTO.SectionID,
		Row:       createDTO.Row,
		Seat:      createDTO.Seat,
		GuestName: createDTO.GuestName,
		Identity:  util.GetIdentityFromContext(ctx),
	})
	if err != nil {
		// 對齊路由契約: 建單失敗除內部錯誤外一律 400 {message}
		if appErr, ok := err.(*apperr.AppError); ok {
			api.ErrorJSON(w, http.StatusBadRequest, appErr.Msg)
		} else {
			api.ErrorJSON(w, http.StatusInternalServerError, apperr.ErrStrMap[apperr.InternalErrorCode])
		}
		return
	}

	api.CreatedJSON(w, convertOrderToDetailsDTO(order))
}

// @Summary get order with details
// @Tags order
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} dto.OrderWithDetailsDTO "success"
// @Failure 404 {object} api.ErrorResponse "NotFound"
// @Failure 500 {object} api.ErrorResponse "Internal server error"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderToDetailsDTO(order))
}

// @Summary list orders, newest first
// @Tags order
// @Produce json
// @Param status query string false "filter by status"
// @Success 200 {array} dto.OrderWithDetailsDTO "success"
// @Failure 500 {object} api.ErrorResponse "Internal server error"
// @Router /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := model.OrderStatus(r.URL.Query().Get("status"))

	orders, err := h.orderService.ListOrders(r.Context(), status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result := make([]dto.OrderWithDetailsDTO, 0, len(orders))
	for i := range orders {
		result = append(result, convertOrderToDetailsDTO(&orders[i]))
	}
	api.SuccessJSON(w, result)
}

// @Summary update order status
// @Tags order
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param status body dto.OrderStatusUpdateDTO true "new status"
// @Success 200 {object} dto.OrderWithDetailsDTO "success"
// @Failure 400 {object} api.ErrorResponse "BadRequest"
// @Failure 404 {object} api.ErrorResponse "NotFound"
// @Failure 500 {object} api.ErrorResponse "Internal server error"
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	var statusDTO dto.OrderStatusUpdateDTO
	if err := decodeJSONBody(r, &statusDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	order, err := h.orderService.UpdateOrderStatus(r.Context(), id, model.OrderStatus(statusDTO.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderToDetailsDTO(order))
}

func convertOrderToDetailsDTO(o *model.Order) dto.OrderWithDetailsDTO {
	items := make([]dto.OrderItemDTO, 0, len(o.OrderItems))
	for _, item := range o.OrderItems {
		itemDTO := dto.OrderItemDTO{
			ID:          item.OrderItemID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime.StringFixed(2),
		}
		if item.Product != nil {
			itemDTO.Product = convertProductToDTO(item.Product)
		}
		items = append(items, itemDTO)
	}

	var section *dto.SectionDTO
	if o.Section != nil {
		s := convertSectionToDTO(o.Section)
		section = &s
	}

	return dto.OrderWithDetailsDTO{
		ID:          o.OrderID,
		UserID:      o.UserID,
		GuestName:   o.GuestName,
		Status:      string(o.Status),
		Type:        string(o.Type),
		SectionID:   o.SectionID,
		Row:         o.Row,
		Seat:        o.Seat,
		DeliveryFee: o.DeliveryFee.StringFixed(2),
		TotalAmount: o.TotalAmount.StringFixed(2),
		CreatedAt:   o.CreatedAt,
		OrderNumber: o.OrderNumber,
		Items:       items,
		Section:     section,
	}
}

// writeServiceError 依AppError的Code對應http status, 其餘一律500
func writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperr.AppError); ok {
		api.ErrorJSON(w, int(appErr.Code), appErr.Msg)
		return
	}
	api.ErrorJSON(w, http.StatusInternalServerError, apperr.ErrStrMap[apperr.InternalErrorCode])
}

func decodeJSONBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
