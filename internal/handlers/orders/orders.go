package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/domain"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/dto"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/pg"
	orderservice "github.com/pr-poehali-dev/lordhost-game-server/internal/service/orderservice"
	"github.com/pr-poehali-dev/lordhost-game-server/pkg/utils"
	"github.com/pr-poehali-dev/lordhost-game-server/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	CheckConfigured() error
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, *domain.Server, error)
	GetOrdersByEmail(ctx context.Context, email string) ([]domain.OrderSummary, error)
	GetRecentOrders(ctx context.Context) ([]domain.OrderSummary, error)
}

const (
	createdMessage       = "Заказ создан! Сервер устанавливается, данные доступа отправлены на email"
	internalErrorMessage = "Internal server error"
)

type OrderHandler struct {
	orderService Service
	exposeErrors bool
}

// New builds the orders endpoint. With exposeErrors set, unexpected failures
// are returned to the caller verbatim; otherwise they are only logged.
func New(orderService Service, exposeErrors bool) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		exposeErrors: exposeErrors,
	}
}

// Handle serves one invocation of the orders endpoint.
func (h *OrderHandler) Handle(ctx context.Context, req dto.Request) dto.Response {
	method := req.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}
	if method == http.MethodOptions {
		return preflight()
	}

	if err := h.orderService.CheckConfigured(); err != nil {
		zap.L().Error("orders endpoint called without database", zap.String("method", method))
		return errorResponse(http.StatusInternalServerError, "Database not configured")
	}

	switch method {
	case http.MethodPost:
		return h.createOrder(ctx, req.Body)
	case http.MethodGet:
		return h.getOrders(ctx, req.QueryStringParameters["email"])
	default:
		return errorResponse(http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// HandleHTTP godoc
//
//	@Summary		Create or list hosting orders
//	@Description	POST creates a pending order with its server credentials. GET lists orders of a customer (email query) or the 50 most recent ones. OPTIONS answers CORS preflight.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			email	query		string					false	"Customer email"
//	@Param			order	body		dto.CreateOrderRequest	false	"Order to create (POST)"
//	@Success		200		{object}	dto.OrdersResponse[dto.CustomerOrderListItem]
//	@Success		201		{object}	dto.CreateOrderResponse
//	@Failure		400		{object}	dto.ErrorResponse	"Missing required fields"
//	@Failure		405		{object}	dto.ErrorResponse	"Method not allowed"
//	@Failure		500		{object}	dto.ErrorResponse	"Database not configured or unexpected failure"
//	@Router			/api/orders [post]
//	@Router			/api/orders [get]
func (h *OrderHandler) HandleHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var params map[string]string
	if query := r.URL.Query(); len(query) > 0 {
		params = make(map[string]string, len(query))
		for key := range query {
			params[key] = query.Get(key)
		}
	}

	resp := h.Handle(r.Context(), dto.Request{
		HTTPMethod:            r.Method,
		QueryStringParameters: params,
		Body:                  string(body),
	})

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		zap.L().Warn("can't write response", zap.Error(err))
	}
}

func (h *OrderHandler) createOrder(ctx context.Context, body string) dto.Response {
	if body == "" {
		body = "{}"
	}

	var req dto.CreateOrderRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return h.failure(err)
	}
	if err := validate.Required(&req); err != nil {
		if errors.Is(err, validate.ErrMissingFields) {
			return errorResponse(http.StatusBadRequest, "Missing required fields")
		}
		return h.failure(err)
	}

	order, server, err := h.orderService.CreateOrder(ctx, req.ToDomain())
	if err != nil {
		return h.failure(err)
	}

	return jsonResponse(http.StatusCreated, dto.CreateOrderResponse{
		Success: true,
		Order:   dto.NewOrderDTO(order),
		Server:  dto.NewServerDTO(server),
		Message: createdMessage,
	})
}

// getOrders keeps the two projections apart: per-customer rows carry FTP and
// database fields, the recent listing only ip, port and server status.
func (h *OrderHandler) getOrders(ctx context.Context, email string) dto.Response {
	if email != "" {
		orders, err := h.orderService.GetOrdersByEmail(ctx, email)
		if err != nil {
			return h.failure(err)
		}
		items := make([]dto.CustomerOrderListItem, 0, len(orders))
		for i := range orders {
			items = append(items, dto.NewCustomerOrderListItem(&orders[i]))
		}
		return jsonResponse(http.StatusOK, dto.OrdersResponse[dto.CustomerOrderListItem]{Orders: items})
	}

	orders, err := h.orderService.GetRecentOrders(ctx)
	if err != nil {
		return h.failure(err)
	}
	items := make([]dto.OrderListItem, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewOrderListItem(&orders[i]))
	}
	return jsonResponse(http.StatusOK, dto.OrdersResponse[dto.OrderListItem]{Orders: items})
}

func (h *OrderHandler) failure(err error) dto.Response {
	zap.L().Error("orders request failed", zap.Error(err))
	if errors.Is(err, orderservice.ErrDatabaseNotConfigured) || errors.Is(err, pg.ErrNotConfigured) {
		return errorResponse(http.StatusInternalServerError, "Database not configured")
	}
	if !h.exposeErrors {
		return errorResponse(http.StatusInternalServerError, internalErrorMessage)
	}
	return errorResponse(http.StatusInternalServerError, err.Error())
}

func preflight() dto.Response {
	return dto.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type",
		},
		Body: "",
	}
}

func jsonResponse(code int, payload any) dto.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't marshal response", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, err.Error())
	}
	return dto.Response{
		StatusCode: code,
		Headers:    utils.CORSHeaders(),
		Body:       string(body),
	}
}

func errorResponse(code int, message string) dto.Response {
	body, _ := json.Marshal(dto.ErrorResponse{Error: message})
	return dto.Response{
		StatusCode: code,
		Headers:    utils.CORSHeaders(),
		Body:       string(body),
	}
}
