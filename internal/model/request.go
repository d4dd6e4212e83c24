package model

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CarRequest is the payload of POST /api/cars and PUT /api/cars/{id}.
// Required numeric fields are pointers so that an absent field can be
// told apart from a zero value.
type CarRequest struct {
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	Year             *int     `json:"year"`
	Price            *float64 `json:"price"`
	RegistrationDate *Date    `json:"registrationDate"`
	Mileage          *int     `json:"mileage"`
	FuelType         string   `json:"fuelType"`
}
