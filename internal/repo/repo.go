package repo

import (
	"github.com/pr-poehali-dev/lordhost-game-server/internal/pg"
	orderrepo "github.com/pr-poehali-dev/lordhost-game-server/internal/repo/order-repo"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/service/orderservice"
)

type Repositories struct {
	OrderRepo orderservice.Repo
}

func New(connector pg.Connector) *Repositories {
	return &Repositories{
		OrderRepo: orderrepo.New(connector),
	}
}
