package create_checkout_session

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BoatID == "" {
		return fmt.Errorf("%w: boatId is required", ErrInvalidInput)
	}

	if req.BoatName == "" {
		return fmt.Errorf("%w: boatName is required", ErrInvalidInput)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if req.Slot == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}
	if _, err := types.ParseTimeRange(req.Slot); err != nil {
		return fmt.Errorf("%w: invalid slot format, expected HH:MM-HH:MM", ErrInvalidInput)
	}

	return nil
}

// toUnitAmount конвертирует цену в минорные единицы валюты.
// Сумма обязана быть положительным конечным целым числом центов.
func toUnitAmount(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrInvalidPrice
	}

	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return 0, ErrInvalidPrice
	}

	return amount, nil
}
