package order

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping or billing destination of an order. All fields are
// required; a missing field fails construction naming the field so callers
// can render field-level messages.
type Address struct {
	street  string
	city    string
	state   string
	country string
	zipCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated address value object.
func NewAddress(street, city, state, country, zipCode string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("Street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("City")
	}
	if state == "" {
		return Address{}, errs.NewValueIsRequiredError("State")
	}
	if country == "" {
		return Address{}, errs.NewValueIsRequiredError("Country")
	}
	if zipCode == "" {
		return Address{}, errs.NewValueIsRequiredError("ZipCode")
	}

	return Address{
		street:  street,
		city:    city,
		state:   state,
		country: country,
		zipCode: zipCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or region of the address.
func (a Address) State() string {
	return a.state
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// ZipCode returns the postal code of the address.
func (a Address) ZipCode() string {
	return a.zipCode
}
