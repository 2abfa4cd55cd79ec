package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"emporium/internal/domain"
	"emporium/internal/dto"
	apperrors "emporium/internal/errors"
	"emporium/internal/validation"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
}

type GetOrderUseCase interface {
	GetOrder(ctx context.Context, orderID uint) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, orderID uint, newStatus string, notes *string) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID uint, newPaymentStatus string, paymentReference, notes *string) (*domain.Order, error)
}

type OrderController struct {
	createUC CreateOrderUseCase
	getUC    GetOrderUseCase
	statusUC UpdateStatusUseCase
	gate     *validation.Gate
	logger   *zap.Logger
}

func NewOrderController(
	createUC CreateOrderUseCase,
	getUC GetOrderUseCase,
	statusUC UpdateStatusUseCase,
	gate *validation.Gate,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		createUC: createUC,
		getUC:    getUC,
		statusUC: statusUC,
		gate:     gate,
		logger:   logger,
	}
}

func (c *OrderController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.gate.ValidateCreateOrder(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.createUC.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

func (c *OrderController) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, logger)
	if !ok {
		return
	}

	order, err := c.getUC.GetOrder(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || userID <= 0 {
		c.writeValidationError(w, "invalid userId", apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId must be a positive integer",
		})
		return
	}

	orders, err := c.getUC.ListOrdersByUser(r.Context(), userID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, dto.NewOrderResponse(&orders[i]))
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{"orders": responses})
}

func (c *OrderController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.gate.ValidateStatusUpdate(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.statusUC.UpdateStatus(r.Context(), orderID, req.Status, req.Notes)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) HandleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, logger)
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.gate.ValidatePaymentStatusUpdate(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.statusUC.UpdatePaymentStatus(r.Context(), orderID, req.PaymentStatus, req.PaymentReference, req.Notes)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) parseOrderID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", orderIDStr))
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(orderID), true
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	if _, ok := apperrors.IsDuplicateError(err); ok {
		c.writeErrorResponse(w, http.StatusConflict, "DUPLICATE", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{
		Error:   code,
		Message: message,
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
