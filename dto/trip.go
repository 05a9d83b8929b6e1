package dto

type TripDestinationRequest struct {
	FarmID      uint   `json:"farmId" binding:"required"`
	VisitOrder  int    `json:"visitOrder"`
	Description string `json:"description"`
}

type CreateQuoteRequest struct {
	BookingID        string                   `json:"bookingId" binding:"required"`
	StartDate        string                   `json:"startDate" binding:"required"`
	EndDate          string                   `json:"endDate" binding:"required"`
	DepartureAirport string                   `json:"departureAirport"`
	Price            int64                    `json:"price" binding:"required"`
	Description      string                   `json:"description"`
	Destinations     []TripDestinationRequest `json:"tripDestinations"`
}

type UpdateTripRequest struct {
	ID               uint                     `json:"id" binding:"required"`
	StartDate        string                   `json:"startDate"`
	EndDate          string                   `json:"endDate"`
	DepartureAirport string                   `json:"departureAirport"`
	Price            *int64                   `json:"price"`
	Description      string                   `json:"description"`
	Destinations     []TripDestinationRequest `json:"tripDestinations"`
}

type TripDestinationResponse struct {
	ID          uint          `json:"id"`
	VisitOrder  int           `json:"visitOrder"`
	Description string        `json:"description"`
	Farm        *FarmResponse `json:"farm,omitempty"`
}

type TripResponse struct {
	ID               uint                      `json:"id"`
	StartDate        string                    `json:"startDate"`
	EndDate          string                    `json:"endDate"`
	DepartureAirport string                    `json:"departureAirport"`
	Price            int64                     `json:"price"`
	Description      string                    `json:"description"`
	Status           string                    `json:"status"`
	TripDestinations []TripDestinationResponse `json:"tripDestinations"`
}
