package provisioning

import (
	"strings"
	"testing"

	"github.com/pr-poehali-dev/lordhost-game-server/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPlaceholder_Provision(t *testing.T) {
	tests := []struct {
		name     string
		orderID  int
		expected domain.Server
	}{
		{
			name:    "First order",
			orderID: 1,
			expected: domain.Server{
				OrderID:     1,
				IP:          "185.101.1.11",
				Port:        7778,
				FTPHost:     "185.101.1.11",
				FTPUser:     "user_1",
				FTPPassword: "pass_1_ftP",
				DBHost:      "db.lordhost.ru",
				DBName:      "server_1",
				DBUser:      "user_1",
				DBPassword:  "dbpass_1",
				Status:      "installing",
			},
		},
		{
			name:    "Octets wrap around",
			orderID: 1000,
			expected: domain.Server{
				OrderID:     1000,
				IP:          "185.170.232.30",
				Port:        7777,
				FTPHost:     "185.170.232.30",
				FTPUser:     "user_1000",
				FTPPassword: "pass_1000_ftP",
				DBHost:      "db.lordhost.ru",
				DBName:      "server_1000",
				DBUser:      "user_1000",
				DBPassword:  "dbpass_1000",
				Status:      "installing",
			},
		},
		{
			name:    "Port upper bound",
			orderID: 999,
			expected: domain.Server{
				OrderID:     999,
				IP:          "185.169.231.29",
				Port:        8776,
				FTPHost:     "185.169.231.29",
				FTPUser:     "user_999",
				FTPPassword: "pass_999_ftP",
				DBHost:      "db.lordhost.ru",
				DBName:      "server_999",
				DBUser:      "user_999",
				DBPassword:  "dbpass_999",
				Status:      "installing",
			},
		},
	}

	p := NewPlaceholder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Provision(tt.orderID))
		})
	}
}

func TestPlaceholder_ProvisionRanges(t *testing.T) {
	p := NewPlaceholder()
	for id := 1; id <= 5000; id++ {
		s := p.Provision(id)
		assert.GreaterOrEqual(t, s.Port, 7777)
		assert.LessOrEqual(t, s.Port, 8776)
		assert.True(t, strings.HasPrefix(s.IP, "185."), s.IP)
		assert.Equal(t, s.IP, s.FTPHost)
	}
}

func TestPlaceholder_Deterministic(t *testing.T) {
	p := NewPlaceholder()
	assert.Equal(t, p.Provision(42), p.Provision(42))
}
