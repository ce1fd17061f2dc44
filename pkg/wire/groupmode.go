package wire

import "fmt"

// GroupKind classifies the peripheral's group mode.
type GroupKind uint8

const (
	// GroupNone indicates group mode is disabled.
	GroupNone GroupKind = 0

	// GroupSystem indicates a system group is active.
	GroupSystem GroupKind = 1

	// GroupUser indicates a user group is active.
	GroupUser GroupKind = 2
)

// String returns the group kind name.
func (k GroupKind) String() string {
	switch k {
	case GroupNone:
		return "NONE"
	case GroupSystem:
		return "SYSTEM"
	case GroupUser:
		return "USER"
	default:
		return "UNKNOWN"
	}
}

// GroupMode is the decoded form of the peripheral's group-mode tag byte.
// ID is meaningful only when Kind is GroupSystem or GroupUser.
type GroupMode struct {
	Kind GroupKind
	ID   uint8
}

// DecodeGroupMode decodes a group-mode tag byte.
//
// Tag encoding: 0xFF means no group; a set high bit carries a user-group
// id in the low seven bits; anything else is a system-group id.
func DecodeGroupMode(tag byte) GroupMode {
	switch {
	case tag == 0xFF:
		return GroupMode{Kind: GroupNone}
	case tag&0x80 != 0:
		return GroupMode{Kind: GroupUser, ID: tag & 0x7F}
	default:
		return GroupMode{Kind: GroupSystem, ID: tag}
	}
}

// String returns a short human-readable form, e.g. "USER:2" or "NONE".
func (g GroupMode) String() string {
	if g.Kind == GroupNone {
		return "NONE"
	}
	return fmt.Sprintf("%s:%d", g.Kind, g.ID)
}
