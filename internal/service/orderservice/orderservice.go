package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/config"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/domain"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/dto"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	CreateOrder(ctx context.Context, order *domain.Order, provision domain.ProvisionFunc) (*domain.Order, *domain.Server, error)
	FindOrdersByEmail(ctx context.Context, email string) ([]domain.OrderSummary, error)
	FindRecentOrders(ctx context.Context, limit int) ([]domain.OrderSummary, error)
}

type Provisioner interface {
	Provision(orderID int) domain.Server
}

type Publisher interface {
	PublishOrderCreated(ctx context.Context, event dto.OrderCreatedEvent) error
}

type Service struct {
	repo        Repo
	provisioner Provisioner
	publisher   Publisher
	configured  bool
	now         func() time.Time
}

func New(repo Repo, provisioner Provisioner, publisher Publisher, cfg *config.Config) *Service {
	return &Service{
		repo:        repo,
		provisioner: provisioner,
		publisher:   publisher,
		configured:  cfg.DatabaseConfigured(),
		now:         time.Now,
	}
}

// RecentOrdersLimit caps the listing returned when no customer email is given.
const RecentOrdersLimit = 50

var ErrDatabaseNotConfigured = errors.New("database not configured")

func (s *Service) CheckConfigured() error {
	if !s.configured {
		return ErrDatabaseNotConfigured
	}
	return nil
}

// CreateOrder stores a pending order together with its provisioned server.
// expires_at is always created_at plus the ordered number of whole days.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, *domain.Server, error) {
	createdAt := s.now().UTC().Truncate(time.Microsecond)

	order.Status = domain.OrderStatusPending
	if order.GameType == "" {
		order.GameType = domain.DefaultGameType
	}
	order.CreatedAt = createdAt
	order.ExpiresAt = createdAt.AddDate(0, 0, order.Days)

	created, server, err := s.repo.CreateOrder(ctx, order, s.provisioner.Provision)
	if err != nil {
		zap.L().Error("can't create order", zap.String("customer_email", order.CustomerEmail), zap.Error(err))
		return nil, nil, err
	}
	zap.L().Info("order created",
		zap.Int("order_id", created.ID),
		zap.String("plan_type", created.PlanType),
		zap.String("server_ip", server.IP),
		zap.Int("server_port", server.Port),
	)

	s.publishCreated(ctx, created, server)
	return created, server, nil
}

func (s *Service) publishCreated(ctx context.Context, order *domain.Order, server *domain.Server) {
	event := dto.OrderCreatedEvent{
		EventID:       uuid.NewString(),
		OrderID:       order.ID,
		CustomerEmail: order.CustomerEmail,
		ServerName:    order.ServerName,
		PlanType:      order.PlanType,
		GameType:      order.GameType,
		Status:        order.Status,
		ServerStatus:  server.Status,
		ServerIP:      server.IP,
		ServerPort:    server.Port,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339Nano),
		ExpiresAt:     order.ExpiresAt.Format(time.RFC3339Nano),
	}
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		zap.L().Warn("can't publish order created event",
			zap.Int("order_id", order.ID),
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

func (s *Service) GetOrdersByEmail(ctx context.Context, email string) ([]domain.OrderSummary, error) {
	orders, err := s.repo.FindOrdersByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to get orders by email", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetRecentOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	orders, err := s.repo.FindRecentOrders(ctx, RecentOrdersLimit)
	if err != nil {
		zap.L().Error("failed to get recent orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
