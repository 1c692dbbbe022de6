package dto

import (
	"time"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	CustomerName  string          `json:"customerName"  validate:"required" example:"Ivan"`
	CustomerEmail string          `json:"customerEmail" validate:"required" example:"ivan@example.com"`
	CustomerPhone string          `json:"customerPhone"                     example:"+79990000000"`
	PlanType      string          `json:"planType"      validate:"required" example:"Pro"`
	Slots         int             `json:"slots"         validate:"required" example:"50"`
	Days          int             `json:"days"          validate:"required" example:"30"`
	TotalPrice    decimal.Decimal `json:"totalPrice"    validate:"required" swaggertype:"number" example:"599"`
	ServerName    string          `json:"serverName"    validate:"required" example:"My SAMP server"`
	GameType      string          `json:"gameType"                          example:"SAMP"`
}

func (r *CreateOrderRequest) ToDomain() *domain.Order {
	return &domain.Order{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		PlanType:      r.PlanType,
		Slots:         r.Slots,
		Days:          r.Days,
		TotalPrice:    r.TotalPrice,
		ServerName:    r.ServerName,
		GameType:      r.GameType,
	}
}

// OrderDTO is the order as echoed back by the insert. total_price goes out as
// a float and may lose precision.
type OrderDTO struct {
	ID            int     `json:"id"             example:"42"`
	CustomerName  string  `json:"customer_name"  example:"Ivan"`
	CustomerEmail string  `json:"customer_email" example:"ivan@example.com"`
	PlanType      string  `json:"plan_type"      example:"Pro"`
	Slots         int     `json:"slots"          example:"50"`
	Days          int     `json:"days"           example:"30"`
	TotalPrice    float64 `json:"total_price"    example:"599"`
	ServerName    string  `json:"server_name"    example:"My SAMP server"`
	GameType      string  `json:"game_type"      example:"SAMP"`
	Status        string  `json:"status"         example:"pending"`
	CreatedAt     *string `json:"created_at"     example:"2024-05-01T10:00:00.123456Z"`
	ExpiresAt     *string `json:"expires_at"     example:"2024-05-31T10:00:00.123456Z"`
}

type ServerDTO struct {
	ID          int    `json:"id"           example:"7"`
	IP          string `json:"server_ip"    example:"185.142.42.52"`
	Port        int    `json:"server_port"  example:"7819"`
	FTPHost     string `json:"ftp_host"     example:"185.142.42.52"`
	FTPUser     string `json:"ftp_user"     example:"user_42"`
	DBHost      string `json:"db_host"      example:"db.lordhost.ru"`
	DBName      string `json:"db_name"      example:"server_42"`
	DBUser      string `json:"db_user"      example:"user_42"`
	Status      string `json:"status"       example:"installing"`
	FTPPassword string `json:"ftp_password" example:"pass_42_ftP"`
	DBPassword  string `json:"db_password"  example:"dbpass_42"`
}

type CreateOrderResponse struct {
	Success bool      `json:"success" example:"true"`
	Order   OrderDTO  `json:"order"`
	Server  ServerDTO `json:"server"`
	Message string    `json:"message"`
}

// OrderListItem is a row of the recent-orders listing.
type OrderListItem struct {
	ID            int     `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	PlanType      string  `json:"plan_type"`
	Slots         int     `json:"slots"`
	Days          int     `json:"days"`
	TotalPrice    float64 `json:"total_price"`
	ServerName    string  `json:"server_name"`
	GameType      string  `json:"game_type"`
	Status        string  `json:"status"`
	CreatedAt     *string `json:"created_at"`
	ExpiresAt     *string `json:"expires_at"`
	ServerIP      *string `json:"server_ip"`
	ServerPort    *int    `json:"server_port"`
	ServerStatus  *string `json:"server_status"`
}

// CustomerOrderListItem is a row of the per-customer listing, which also
// carries the FTP and database connection fields.
type CustomerOrderListItem struct {
	OrderListItem

	FTPHost *string `json:"ftp_host"`
	FTPUser *string `json:"ftp_user"`
	DBHost  *string `json:"db_host"`
	DBName  *string `json:"db_name"`
	DBUser  *string `json:"db_user"`
}

type OrdersResponse[T any] struct {
	Orders []T `json:"orders"`
}

func NewOrderDTO(o *domain.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		PlanType:      o.PlanType,
		Slots:         o.Slots,
		Days:          o.Days,
		TotalPrice:    o.TotalPrice.InexactFloat64(),
		ServerName:    o.ServerName,
		GameType:      o.GameType,
		Status:        o.Status,
		CreatedAt:     FormatTime(o.CreatedAt),
		ExpiresAt:     FormatTime(o.ExpiresAt),
	}
}

func NewServerDTO(s *domain.Server) ServerDTO {
	return ServerDTO{
		ID:          s.ID,
		IP:          s.IP,
		Port:        s.Port,
		FTPHost:     s.FTPHost,
		FTPUser:     s.FTPUser,
		DBHost:      s.DBHost,
		DBName:      s.DBName,
		DBUser:      s.DBUser,
		Status:      s.Status,
		FTPPassword: s.FTPPassword,
		DBPassword:  s.DBPassword,
	}
}

func NewOrderListItem(o *domain.OrderSummary) OrderListItem {
	return OrderListItem{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		PlanType:      o.PlanType,
		Slots:         o.Slots,
		Days:          o.Days,
		TotalPrice:    o.TotalPrice.InexactFloat64(),
		ServerName:    o.ServerName,
		GameType:      o.GameType,
		Status:        o.Status,
		CreatedAt:     FormatTime(o.CreatedAt),
		ExpiresAt:     FormatTime(o.ExpiresAt),
		ServerIP:      o.ServerIP,
		ServerPort:    o.ServerPort,
		ServerStatus:  o.ServerStatus,
	}
}

func NewCustomerOrderListItem(o *domain.OrderSummary) CustomerOrderListItem {
	return CustomerOrderListItem{
		OrderListItem: NewOrderListItem(o),
		FTPHost:       o.FTPHost,
		FTPUser:       o.FTPUser,
		DBHost:        o.DBHost,
		DBName:        o.DBName,
		DBUser:        o.DBUser,
	}
}

// FormatTime renders t as ISO-8601, or nil for the zero time.
func FormatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}
