package github

import (
	apperr "github.com/matzehuels/githot/pkg/errors"
)

// ValidateResourceType validates a search category.
func ValidateResourceType(t ResourceType) error {
	switch t {
	case Repositories, Users:
		return nil
	case "":
		return apperr.New(apperr.ErrCodeInvalidInput, "resource type is required")
	}
	return apperr.New(apperr.ErrCodeInvalidInput, "unsupported resource type %q: use repositories or users", t)
}

// ValidateOrder validates a sort direction. The empty order is allowed and
// leaves the direction to the API.
func ValidateOrder(o Order) error {
	switch o {
	case "", Asc, Desc:
		return nil
	}
	return apperr.New(apperr.ErrCodeInvalidInput, "invalid order %q: use asc or desc", o)
}

// Validate checks the request's type and order.
func (r SearchRequest) Validate() error {
	if err := ValidateResourceType(r.Type); err != nil {
		return err
	}
	return ValidateOrder(r.Order)
}
