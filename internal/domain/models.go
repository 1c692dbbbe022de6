package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusActive    = "active"
	OrderStatusExpired   = "expired"
	OrderStatusCancelled = "cancelled"
)

const (
	ServerStatusInstalling = "installing"
	ServerStatusActive     = "active"
	ServerStatusFailed     = "failed"
)

const DefaultGameType = "SAMP"

type Order struct {
	ID            int             `db:"id"`
	CustomerName  string          `db:"customer_name"`
	CustomerEmail string          `db:"customer_email"`
	CustomerPhone string          `db:"customer_phone"`
	PlanType      string          `db:"plan_type"`
	Slots         int             `db:"slots"`
	Days          int             `db:"days"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	ServerName    string          `db:"server_name"`
	GameType      string          `db:"game_type"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	ExpiresAt     time.Time       `db:"expires_at"`
}

// Server holds the access details handed out for an order. Passwords are
// stored in plain text.
type Server struct {
	ID          int    `db:"id"`
	OrderID     int    `db:"order_id"`
	IP          string `db:"server_ip"`
	Port        int    `db:"server_port"`
	FTPHost     string `db:"ftp_host"`
	FTPUser     string `db:"ftp_user"`
	FTPPassword string `db:"ftp_password"`
	DBHost      string `db:"db_host"`
	DBName      string `db:"db_name"`
	DBUser      string `db:"db_user"`
	DBPassword  string `db:"db_password"`
	Status      string `db:"status"`
}

// OrderSummary is an order row left-joined with its server. Server columns
// are nil when no server row exists or when the query does not select them.
type OrderSummary struct {
	Order

	ServerIP     *string `db:"server_ip"`
	ServerPort   *int    `db:"server_port"`
	FTPHost      *string `db:"ftp_host"`
	FTPUser      *string `db:"ftp_user"`
	DBHost       *string `db:"db_host"`
	DBName       *string `db:"db_name"`
	DBUser       *string `db:"db_user"`
	ServerStatus *string `db:"server_status"`
}

// ProvisionFunc derives the server credentials for a freshly inserted order.
type ProvisionFunc func(orderID int) Server
