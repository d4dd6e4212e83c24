package model

type RegisterResponse struct {
	User PublicUser `json:"user"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type CarMutationResponse struct {
	Message string `json:"message"`
	Car     Car    `json:"car"`
}

type StatsResponse struct {
	TotalCars int `json:"total_cars"`
}
