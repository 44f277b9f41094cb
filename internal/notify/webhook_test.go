package notify

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/wkittisak/shoppay/pkg/clients"
)

func NewMock(t *testing.T) (*Webhook, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	webhook := NewWebhook("http://localhost:9090/hooks/topup", client)
	return webhook, client
}

func TestWebhook_TopupApplied(t *testing.T) {
	webhook, client := NewMock(t)

	client.EXPECT().
		Post("http://localhost:9090/hooks/topup", gomock.Any(), gomock.Any()).
		DoAndReturn(func(url string, headers http.Header, body []byte) (int, []byte, error) {
			assert.Equal(t, "application/json", headers.Get("Content-Type"))

			var event topupEvent
			err := json.Unmarshal(body, &event)
			assert.NoError(t, err)
			assert.Equal(t, "topup.applied", event.Event)
			assert.Equal(t, 1, event.UserID)
			assert.True(t, decimal.NewFromInt(500).Equal(event.Amount))
			assert.Equal(t, "2024042199000123456", event.TransRef)
			assert.False(t, event.At.IsZero())
			return http.StatusOK, nil, nil
		}).
		Times(1)

	webhook.TopupApplied(1, decimal.NewFromInt(500), "2024042199000123456")
}

func TestWebhook_TopupApplied_NoURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	webhook := NewWebhook("", client)

	// no Post expectation: delivery must be skipped entirely
	webhook.TopupApplied(1, decimal.NewFromInt(100), "2024042199000123456")
}

func TestWebhook_TopupApplied_DeliveryFailed(t *testing.T) {
	webhook, client := NewMock(t)

	client.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil, assert.AnError).
		Times(1)

	// failures are logged, never panic or surface
	webhook.TopupApplied(2, decimal.NewFromInt(250), "")
}

func TestWebhook_TopupApplied_Rejected(t *testing.T) {
	webhook, client := NewMock(t)

	client.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(http.StatusBadGateway, nil, nil).
		Times(1)

	webhook.TopupApplied(3, decimal.NewFromInt(75), "2024042199000987654")
}
