package notify

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wkittisak/shoppay/pkg/clients"
	"go.uber.org/zap"
)

// Webhook posts a JSON event for each successful top-up to a configured URL.
// Delivery is best effort: failures are logged and never surfaced to the
// caller who triggered the top-up.
type Webhook struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhook(url string, client clients.HTTPClientI) *Webhook {
	return &Webhook{
		url:    url,
		client: client,
	}
}

type topupEvent struct {
	Event    string          `json:"event"`
	UserID   int             `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	TransRef string          `json:"trans_ref,omitempty"`
	At       time.Time       `json:"at"`
}

func (n *Webhook) TopupApplied(userID int, amount decimal.Decimal, transRef string) {
	if n.url == "" {
		return
	}

	body, err := json.Marshal(topupEvent{
		Event:    "topup.applied",
		UserID:   userID,
		Amount:   amount,
		TransRef: transRef,
		At:       time.Now(),
	})
	if err != nil {
		zap.L().Error("can't marshal top-up event", zap.Error(err))
		return
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, _, err := n.client.Post(n.url, headers, body)
	if err != nil {
		zap.L().Error("top-up webhook delivery failed", zap.Error(err))
		return
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		zap.L().Warn("top-up webhook rejected", zap.Int("status", statusCode))
	}
}
