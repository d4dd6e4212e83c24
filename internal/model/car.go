package model

import (
	"fmt"
	"strings"
	"time"
)

type Car struct {
	ID               int64     `json:"id"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Price            *float64  `json:"price"`
	RegistrationDate *Date     `json:"registrationDate"`
	Mileage          int       `json:"mileage"`
	FuelType         string    `json:"fuelType"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Date is a calendar date without a time component. It marshals as
// "2006-01-02", matching HTML date inputs and the DATE column type.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		return fmt.Errorf("date must not be empty, expected %q", dateLayout)
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", raw, err)
	}

	d.Time = parsed
	return nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}
