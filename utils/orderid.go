package utils

import "github.com/google/uuid"

// NewOrderID returns a storefront order identifier. UUID-backed so
// uniqueness does not depend on timestamp+random luck.
func NewOrderID() string {
	return "WL-" + uuid.NewString()
}
