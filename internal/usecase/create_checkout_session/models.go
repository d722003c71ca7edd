package create_checkout_session

// Request модель запроса на создание checkout session.
// Поля соответствуют BookingIntent: всё, что нужно для записи бронирования
// после оплаты, уезжает в метаданные сессии и возвращается с ней.
type Request struct {
	BoatID     string
	BoatName   string
	Date       string // "YYYY-MM-DD"
	Slot       string // "HH:MM-HH:MM"
	Price      float64
	UserID     string
	OwnerID    string
	OwnerEmail string
}

// Response модель ответа с созданной сессией
type Response struct {
	SessionID string
	URL       string
}
