package request

// CreateBookingRequest is the JSON body of POST /api/bookings. It carries
// no validate tags: the API inserts whatever parses, and the store's
// schema constraints decide the rest.
type CreateBookingRequest struct {
	Customer string `json:"customer"`
	Trip     string `json:"trip"`
	Seats    int    `json:"seats"`
}

// BookingFormRequest is the structured no-JS form submission. It mirrors
// the required-field rules the browser enforces on the client.
type BookingFormRequest struct {
	Customer    string `json:"customer" validate:"required"`
	TripType    string `json:"trip_type" validate:"required,oneof=one-way round-trip"`
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	DepartDate  string `json:"depart_date" validate:"required"`
	ReturnDate  string `json:"return_date" validate:"required_if=TripType round-trip"`
	Seats       int    `json:"seats" validate:"required,min=1"`
}
