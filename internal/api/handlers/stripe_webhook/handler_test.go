package stripe_webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
	confirmBooking "github.com/m04kA/BCM-BookingService/internal/usecase/confirm_booking"
)

const testSecret = "whsec_test_secret"

// fakeConfirmUC записывает принятые сессии и отдаёт настроенную ошибку
type fakeConfirmUC struct {
	sessions []string
	err      error
}

func (f *fakeConfirmUC) Execute(_ context.Context, session *stripeclient.CheckoutSession) (*confirmBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sessions = append(f.sessions, session.ID)
	return &confirmBooking.Response{BookingID: "boat-1__2026-07-15__09:00-13:00__user-abc"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// signHeader строит валидный заголовок подписи для тела события:
// HMAC-SHA256 от "<timestamp>.<payload>" ключом подписи
func signHeader(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func completedEventPayload() []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_123",
				"object": "checkout.session",
				"payment_status": "paid",
				"status": "complete",
				"amount_total": 45000,
				"currency": "cad",
				"metadata": {
					"boatId": "boat-1",
					"boatName": "Northern Star",
					"date": "2026-07-15",
					"slot": "09:00-13:00",
					"userId": "user-abc",
					"ownerId": "owner-xyz",
					"ownerEmail": "owner@example.com"
				}
			}
		}
	}`, stripe.APIVersion))
}

func doRequest(h *Handler, payload []byte, sigHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", sigHeader)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ConfirmsBooking(t *testing.T) {
	confirmUC := &fakeConfirmUC{}
	h := NewHandler(confirmUC, testSecret, nopLogger{})

	payload := completedEventPayload()
	rec := doRequest(h, payload, signHeader(payload, testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	require.Len(t, confirmUC.sessions, 1)
	assert.Equal(t, "cs_test_123", confirmUC.sessions[0])
}

// Передоставка одного события подтверждается оба раза
func TestHandle_DuplicateDelivery(t *testing.T) {
	confirmUC := &fakeConfirmUC{}
	h := NewHandler(confirmUC, testSecret, nopLogger{})

	payload := completedEventPayload()
	first := doRequest(h, payload, signHeader(payload, testSecret))
	second := doRequest(h, payload, signHeader(payload, testSecret))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Len(t, confirmUC.sessions, 2)
}

func TestHandle_InvalidSignature(t *testing.T) {
	confirmUC := &fakeConfirmUC{}
	h := NewHandler(confirmUC, testSecret, nopLogger{})

	payload := completedEventPayload()
	rec := doRequest(h, payload, signHeader(payload, "whsec_wrong_secret"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, confirmUC.sessions)
}

func TestHandle_MissingSignature(t *testing.T) {
	h := NewHandler(&fakeConfirmUC{}, testSecret, nopLogger{})

	rec := doRequest(h, completedEventPayload(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Событие изменили после подписания - подпись не сходится
func TestHandle_TamperedPayload(t *testing.T) {
	h := NewHandler(&fakeConfirmUC{}, testSecret, nopLogger{})

	payload := completedEventPayload()
	sig := signHeader(payload, testSecret)
	tampered := bytes.Replace(payload, []byte("45000"), []byte("1"), 1)

	rec := doRequest(h, tampered, sig)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_IgnoresOtherEventTypes(t *testing.T) {
	confirmUC := &fakeConfirmUC{}
	h := NewHandler(confirmUC, testSecret, nopLogger{})

	payload := []byte(fmt.Sprintf(`{
		"id": "evt_test_2",
		"api_version": %q,
		"type": "payment_intent.created",
		"data": {"object": {"id": "pi_test_123", "object": "payment_intent"}}
	}`, stripe.APIVersion))
	rec := doRequest(h, payload, signHeader(payload, testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, confirmUC.sessions)
}

// Оплаченная сессия без метаданных бронирования подтверждается:
// передоставка её не исправит
func TestHandle_MalformedIntentAcked(t *testing.T) {
	confirmUC := &fakeConfirmUC{err: confirmBooking.ErrMalformedIntent}
	h := NewHandler(confirmUC, testSecret, nopLogger{})

	payload := completedEventPayload()
	rec := doRequest(h, payload, signHeader(payload, testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestHandle_UnpaidSessionAcked(t *testing.T) {
	confirmUC := &fakeConfirmUC{err: confirmBooking.ErrNotPaid}
	h := NewHandler(confirmUC, testSecret, nopLogger{})

	payload := completedEventPayload()
	rec := doRequest(h, payload, signHeader(payload, testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Только ошибка хранилища сигналит платформе о необходимости
// передоставить событие
func TestHandle_StorageFailureTriggersRetry(t *testing.T) {
	confirmUC := &fakeConfirmUC{err: fmt.Errorf("%w: %v", confirmBooking.ErrStorage, errors.New("connection reset"))}
	h := NewHandler(confirmUC, testSecret, nopLogger{})

	payload := completedEventPayload()
	rec := doRequest(h, payload, signHeader(payload, testSecret))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
