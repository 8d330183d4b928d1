package dto

type RegisterUserRequest struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	District    string `json:"district"`
}

type PropertyRequest struct {
	Title        string  `json:"title"`
	District     string  `json:"district"`
	Address      string  `json:"address"`
	Description  string  `json:"description"`
	Rent         float64 `json:"rent"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	SizeSqft     int     `json:"size_sqft"`
	PropertyType string  `json:"property_type"`
	Available    *bool   `json:"available"`
}

type SubmitApplicationRequest struct {
	Message string `json:"message"`
}

type RequestBookingRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DecideBookingRequest struct {
	Action string `json:"action"`
}

type FileTicketRequest struct {
	Title    string `json:"title"`
	Issue    string `json:"issue"`
	Category string `json:"category"`
}

type AdvanceTicketRequest struct {
	Status string `json:"status"`
}

type ContactLandlordRequest struct {
	Message string `json:"message"`
}
