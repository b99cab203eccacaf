package rabbitmq

const (
	// ExchangeAlerts is the topic exchange risk alerts are published to.
	ExchangeAlerts = "insight.alerts"
	// RoutingKeyRiskHighPrefix is followed by the platform, e.g. risk.high.telegram.
	RoutingKeyRiskHighPrefix = "risk.high."
)

// RiskAlertMessage - RabbitMQ message on the alerts exchange
type RiskAlertMessage struct {
	BatchID          string   `json:"batch_id"`
	OwnerID          string   `json:"owner_id"`
	Platform         string   `json:"platform"`
	AccountID        string   `json:"account_id,omitempty"`
	ScamRisk         string   `json:"scam_risk"`
	ScamKeywords     []string `json:"scam_keywords"`
	ScamMessageCount int      `json:"scam_message_count"`
	TotalMessages    int      `json:"total_messages"`
	RaisedAt         string   `json:"raised_at"`
}
