package protocol

import (
	"errors"

	"factorish.dev/internal/sim/loop"
	"factorish.dev/internal/sim/world"
)

const (
	// Protocol/transport validation.
	ErrProtoBadRequest = "E_PROTO_BAD_REQUEST"
	ErrRateLimited     = "E_RATE_LIMITED"

	// Command layer.
	ErrBadRequest   = "E_BAD_REQUEST"
	ErrBlocked      = "E_BLOCKED"
	ErrOutOfMap     = "E_OUT_OF_MAP"
	ErrNotFound     = "E_NOT_FOUND"
	ErrNotSupported = "E_NOT_SUPPORTED"
	ErrNoInventory  = "E_NO_INVENTORY"
	ErrInternal     = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest: {},
	ErrRateLimited:     {},
	ErrBadRequest:      {},
	ErrBlocked:         {},
	ErrOutOfMap:        {},
	ErrNotFound:        {},
	ErrNotSupported:    {},
	ErrNoInventory:     {},
	ErrInternal:        {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}

// CodeFor maps a command error to its wire code. A nil error has no code.
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, world.ErrBlockedByStructure), errors.Is(err, world.ErrBlockedByItem):
		return ErrBlocked
	case errors.Is(err, world.ErrOutOfMap):
		return ErrOutOfMap
	case errors.Is(err, world.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, world.ErrNotSupported):
		return ErrNotSupported
	case errors.Is(err, world.ErrNoInventory):
		return ErrNoInventory
	case errors.Is(err, world.ErrUnknownTool), errors.Is(err, world.ErrNoTool), errors.Is(err, loop.ErrUnknownOp):
		return ErrBadRequest
	default:
		return ErrInternal
	}
}
