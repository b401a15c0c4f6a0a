package menu

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidItemID         = errors.New("invalid menu item id")
	ErrInvalidName           = errors.New("invalid menu item name")
	ErrInvalidPrice          = errors.New("invalid menu item price")
	ErrInvalidPrepTime       = errors.New("invalid menu item prep time")

	ErrItemNotFound = errors.New("menu item not found")
	ErrConflict     = errors.New("menu item already exists")
)
