// Package validation contains the pure input checks for registration and
// car payloads. Every rule is evaluated independently so a single request
// reports all of its field problems at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"car-fleet-api/internal/model"
	"car-fleet-api/pkg/apierror"
)

const (
	CodeRequired       = "REQUIRED"
	CodeInvalidLength  = "INVALID_LENGTH"
	CodeInvalidYear    = "INVALID_YEAR"
	CodeInvalidPrice   = "INVALID_PRICE"
	CodeInvalidMileage = "INVALID_MILEAGE"
	CodeInvalidFormat  = "INVALID_FORMAT"
	CodeFutureDate     = "FUTURE_DATE"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
	minBrandLen    = 2
	maxBrandLen    = 50
	minModelLen    = 1
	maxModelLen    = 50
	minYear        = 1900
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// Registration checks a registration payload. An empty result means the
// payload is acceptable.
func Registration(req model.RegisterRequest) []apierror.FieldError {
	var errs []apierror.FieldError

	username := strings.TrimSpace(req.Username)
	switch {
	case username == "":
		errs = append(errs, required("username"))
	case runeLen(username) < minUsernameLen || runeLen(username) > maxUsernameLen:
		errs = append(errs, lengthError("username", minUsernameLen, maxUsernameLen))
	}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		errs = append(errs, required("email"))
	case !emailPattern.MatchString(email):
		errs = append(errs, apierror.FieldError{
			Field:   "email",
			Code:    CodeInvalidFormat,
			Message: "email must look like local@domain.tld",
		})
	}

	switch {
	case req.Password == "":
		errs = append(errs, required("password"))
	case runeLen(req.Password) < minPasswordLen:
		errs = append(errs, apierror.FieldError{
			Field:   "password",
			Code:    CodeInvalidLength,
			Message: fmt.Sprintf("password must be at least %d characters", minPasswordLen),
		})
	}

	return errs
}

// Car checks a car payload. The year upper bound and the future-date rule
// are evaluated against now, which the caller injects.
func Car(req model.CarRequest, now time.Time) []apierror.FieldError {
	var errs []apierror.FieldError

	brand := strings.TrimSpace(req.Brand)
	switch {
	case brand == "":
		errs = append(errs, required("brand"))
	case runeLen(brand) < minBrandLen || runeLen(brand) > maxBrandLen:
		errs = append(errs, lengthError("brand", minBrandLen, maxBrandLen))
	}

	carModel := strings.TrimSpace(req.Model)
	switch {
	case carModel == "":
		errs = append(errs, required("model"))
	case runeLen(carModel) < minModelLen || runeLen(carModel) > maxModelLen:
		errs = append(errs, lengthError("model", minModelLen, maxModelLen))
	}

	maxYear := now.Year() + 1
	switch {
	case req.Year == nil:
		errs = append(errs, required("year"))
	case *req.Year < minYear || *req.Year > maxYear:
		errs = append(errs, apierror.FieldError{
			Field:   "year",
			Code:    CodeInvalidYear,
			Message: fmt.Sprintf("year must be between %d and %d", minYear, maxYear),
		})
	}

	if req.Price != nil && *req.Price < 0 {
		errs = append(errs, apierror.FieldError{
			Field:   "price",
			Code:    CodeInvalidPrice,
			Message: "price must not be negative",
		})
	}

	if req.RegistrationDate != nil && req.RegistrationDate.After(now) {
		errs = append(errs, apierror.FieldError{
			Field:   "registrationDate",
			Code:    CodeFutureDate,
			Message: "registration date must not be in the future",
		})
	}

	switch {
	case req.Mileage == nil:
		errs = append(errs, required("mileage"))
	case *req.Mileage < 0:
		errs = append(errs, apierror.FieldError{
			Field:   "mileage",
			Code:    CodeInvalidMileage,
			Message: "mileage must not be negative",
		})
	}

	if strings.TrimSpace(req.FuelType) == "" {
		errs = append(errs, required("fuelType"))
	}

	return errs
}

// Length bounds count characters, not bytes, so multibyte names are
// measured the way a user sees them.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func required(field string) apierror.FieldError {
	return apierror.FieldError{
		Field:   field,
		Code:    CodeRequired,
		Message: field + " is required",
	}
}

func lengthError(field string, min int, max int) apierror.FieldError {
	return apierror.FieldError{
		Field:   field,
		Code:    CodeInvalidLength,
		Message: fmt.Sprintf("%s must be between %d and %d characters", field, min, max),
	}
}
