package orderrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/domain"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/pg"
	"go.uber.org/zap"
)

const (
	insertOrderQuery = `
        INSERT INTO orders
            (customer_name, customer_email, customer_phone, plan_type, slots, days,
             total_price, server_name, game_type, status, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, customer_name, customer_email, plan_type, slots, days,
                  total_price, server_name, game_type, status, created_at, expires_at
    `
	insertServerQuery = `
        INSERT INTO servers
            (order_id, server_ip, server_port, ftp_host, ftp_user, ftp_password,
             db_host, db_name, db_user, db_password, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, order_id, server_ip, server_port, ftp_host, ftp_user,
                  db_host, db_name, db_user, status
    `
	ordersByEmailQuery = `
        SELECT o.id, o.customer_name, o.customer_email, o.customer_phone, o.plan_type,
               o.slots, o.days, o.total_price, o.server_name, o.game_type, o.status,
               o.created_at, o.expires_at,
               s.server_ip, s.server_port, s.ftp_host, s.ftp_user,
               s.db_host, s.db_name, s.db_user, s.status AS server_status
        FROM orders o
        LEFT JOIN servers s ON o.id = s.order_id
        WHERE o.customer_email = $1
        ORDER BY o.created_at DESC
    `
	recentOrdersQuery = `
        SELECT o.id, o.customer_name, o.customer_email, o.customer_phone, o.plan_type,
               o.slots, o.days, o.total_price, o.server_name, o.game_type, o.status,
               o.created_at, o.expires_at,
               s.server_ip, s.server_port, s.status AS server_status
        FROM orders o
        LEFT JOIN servers s ON o.id = s.order_id
        ORDER BY o.created_at DESC
        LIMIT $1
    `
)

// Repository opens one connection per call and releases it before returning.
type Repository struct {
	connector pg.Connector
}

func New(connector pg.Connector) *Repository {
	return &Repository{
		connector: connector,
	}
}

func (r *Repository) withConn(ctx context.Context, fn func(conn pg.Conn) error) error {
	conn, err := r.connector.Connect(ctx)
	if err != nil {
		zap.L().Error("can't connect to database", zap.Error(err))
		return err
	}
	defer func() {
		if err := conn.Close(ctx); err != nil {
			zap.L().Warn("can't close database connection", zap.Error(err))
		}
	}()
	return fn(conn)
}

// CreateOrder inserts the order and its server in one transaction. provision
// receives the generated order id; nothing is committed unless both inserts
// succeed.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order, provision domain.ProvisionFunc) (*domain.Order, *domain.Server, error) {
	var created domain.Order
	var server domain.Server

	err := r.withConn(ctx, func(conn pg.Conn) error {
		db := pg.New(conn)
		return pg.NewTXManager(conn).Begin(ctx, func(ctx context.Context) error {
			row := db.QueryRow(ctx, insertOrderQuery,
				order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.PlanType,
				order.Slots, order.Days, order.TotalPrice, order.ServerName, order.GameType,
				order.Status, order.CreatedAt, order.ExpiresAt)
			err := row.Scan(&created.ID, &created.CustomerName, &created.CustomerEmail, &created.PlanType,
				&created.Slots, &created.Days, &created.TotalPrice, &created.ServerName, &created.GameType,
				&created.Status, &created.CreatedAt, &created.ExpiresAt)
			if err != nil {
				zap.L().Error("can't save order", zap.Error(err))
				return err
			}
			created.CustomerPhone = order.CustomerPhone

			creds := provision(created.ID)
			row = db.QueryRow(ctx, insertServerQuery,
				created.ID, creds.IP, creds.Port, creds.FTPHost, creds.FTPUser, creds.FTPPassword,
				creds.DBHost, creds.DBName, creds.DBUser, creds.DBPassword, creds.Status)
			err = row.Scan(&server.ID, &server.OrderID, &server.IP, &server.Port, &server.FTPHost, &server.FTPUser,
				&server.DBHost, &server.DBName, &server.DBUser, &server.Status)
			if err != nil {
				zap.L().Error("can't save server", zap.Int("order_id", created.ID), zap.Error(err))
				return err
			}
			server.FTPPassword = creds.FTPPassword
			server.DBPassword = creds.DBPassword
			return nil
		})
	})
	if err != nil {
		return nil, nil, err
	}
	return &created, &server, nil
}

func (r *Repository) FindOrdersByEmail(ctx context.Context, email string) ([]domain.OrderSummary, error) {
	var orders []domain.OrderSummary
	err := r.withConn(ctx, func(conn pg.Conn) error {
		rows, err := conn.Query(ctx, ordersByEmailQuery, email)
		if err != nil {
			zap.L().Error("can't get orders by email", zap.Error(err))
			return err
		}
		orders, err = collect(rows, func(row pgx.Row, o *domain.OrderSummary) error {
			return row.Scan(orderColumns(o,
				&o.ServerIP, &o.ServerPort, &o.FTPHost, &o.FTPUser,
				&o.DBHost, &o.DBName, &o.DBUser, &o.ServerStatus)...)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repository) FindRecentOrders(ctx context.Context, limit int) ([]domain.OrderSummary, error) {
	var orders []domain.OrderSummary
	err := r.withConn(ctx, func(conn pg.Conn) error {
		rows, err := conn.Query(ctx, recentOrdersQuery, limit)
		if err != nil {
			zap.L().Error("can't get recent orders", zap.Error(err))
			return err
		}
		orders, err = collect(rows, func(row pgx.Row, o *domain.OrderSummary) error {
			return row.Scan(orderColumns(o, &o.ServerIP, &o.ServerPort, &o.ServerStatus)...)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func orderColumns(o *domain.OrderSummary, extra ...any) []any {
	return append([]any{
		&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.PlanType,
		&o.Slots, &o.Days, &o.TotalPrice, &o.ServerName, &o.GameType, &o.Status,
		&o.CreatedAt, &o.ExpiresAt,
	}, extra...)
}

func collect(rows pgx.Rows, scan func(row pgx.Row, o *domain.OrderSummary) error) ([]domain.OrderSummary, error) {
	defer rows.Close()

	orders := make([]domain.OrderSummary, 0)
	for rows.Next() {
		var o domain.OrderSummary
		if err := scan(rows, &o); err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}
