package create_checkout_session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *Request {
	return &Request{
		BoatID:     "boat-1",
		BoatName:   "Northern Star",
		Date:       "2026-07-15",
		Slot:       "09:00-13:00",
		Price:      450,
		UserID:     "user-abc",
		OwnerID:    "owner-xyz",
		OwnerEmail: "owner@example.com",
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_MissingFields(t *testing.T) {
	mutations := map[string]func(*Request){
		"boatId":   func(r *Request) { r.BoatID = "" },
		"boatName": func(r *Request) { r.BoatName = "" },
		"userId":   func(r *Request) { r.UserID = "" },
		"date":     func(r *Request) { r.Date = "" },
		"slot":     func(r *Request) { r.Slot = "" },
	}

	for name, mutate := range mutations {
		req := validRequest()
		mutate(req)
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput, "missing %s", name)
	}
}

func TestValidateRequest_BadFormats(t *testing.T) {
	req := validRequest()
	req.Date = "15.07.2026"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Slot = "9am-1pm"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Slot = "13:00-09:00"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestToUnitAmount(t *testing.T) {
	amount, err := toUnitAmount(450)
	require.NoError(t, err)
	assert.Equal(t, int64(45000), amount)

	amount, err = toUnitAmount(99.99)
	require.NoError(t, err)
	assert.Equal(t, int64(9999), amount)

	// Плавающая точка не должна терять центы
	amount, err = toUnitAmount(0.29)
	require.NoError(t, err)
	assert.Equal(t, int64(29), amount)
}

func TestToUnitAmount_Invalid(t *testing.T) {
	for _, price := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := toUnitAmount(price)
		assert.ErrorIs(t, err, ErrInvalidPrice, "price %v", price)
	}
}
