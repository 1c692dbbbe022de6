package dto

// OrderCreatedEvent is published after an order and its server are committed.
// Credentials are not part of the event.
type OrderCreatedEvent struct {
	EventID       string `json:"event_id"`
	OrderID       int    `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	ServerName    string `json:"server_name"`
	PlanType      string `json:"plan_type"`
	GameType      string `json:"game_type"`
	Status        string `json:"status"`
	ServerStatus  string `json:"server_status"`
	ServerIP      string `json:"server_ip"`
	ServerPort    int    `json:"server_port"`
	CreatedAt     string `json:"created_at"`
	ExpiresAt     string `json:"expires_at"`
}
