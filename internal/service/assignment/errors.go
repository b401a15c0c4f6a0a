package assignment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidAgentID        = errors.New("invalid agent id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrAgentNotFound     = errors.New("agent not found")
	ErrAgentConflict     = errors.New("agent already exists")
	ErrNoAvailableAgents = errors.New("no available agents")
	ErrAgentUnavailable  = errors.New("agent is at capacity")
	ErrOrderNotReady     = errors.New("order is not ready for pickup")
	ErrNotHomeDelivery   = errors.New("order is not a home delivery")
	ErrAlreadyAssigned   = errors.New("order already has an assigned agent")
)
