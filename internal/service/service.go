package service

import (
	"github.com/pr-poehali-dev/lordhost-game-server/internal/config"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/handlers/orders"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/repo"
	orderservice "github.com/pr-poehali-dev/lordhost-game-server/internal/service/orderservice"
)

type Services struct {
	OrderService orders.Service
}

func New(repo *repo.Repositories, provisioner orderservice.Provisioner, publisher orderservice.Publisher, cfg *config.Config) *Services {
	return &Services{
		OrderService: orderservice.New(repo.OrderRepo, provisioner, publisher, cfg),
	}
}
