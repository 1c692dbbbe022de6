// Package provisioning derives the access details of a hosted game server.
//
// Placeholder stands in for a real provisioning backend: every value is a
// pure function of the order id, so rows already handed out to customers can
// be reproduced.
package provisioning

import (
	"fmt"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/domain"
)

const (
	basePort = 7777
	dbHost   = "db.lordhost.ru"
)

type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Provision(orderID int) domain.Server {
	ip := fmt.Sprintf("185.%d.%d.%d", 100+orderID%155, orderID%256, 10+orderID%245)
	user := fmt.Sprintf("user_%d", orderID)

	return domain.Server{
		OrderID:     orderID,
		IP:          ip,
		Port:        basePort + orderID%1000,
		FTPHost:     ip,
		FTPUser:     user,
		FTPPassword: fmt.Sprintf("pass_%d_ftP", orderID),
		DBHost:      dbHost,
		DBName:      fmt.Sprintf("server_%d", orderID),
		DBUser:      user,
		DBPassword:  fmt.Sprintf("dbpass_%d", orderID),
		Status:      domain.ServerStatusInstalling,
	}
}
