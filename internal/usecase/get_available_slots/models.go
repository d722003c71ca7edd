package get_available_slots

// Request параметры запроса доступных слотов
type Request struct {
	BoatID string
	Date   string // YYYY-MM-DD
}

// Response проекция доступности лодки на дату
type Response struct {
	BoatID         string   `json:"boatId"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}
