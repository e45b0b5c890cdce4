package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMetadata is returned when an enabled chain has no metadata entry.
	ErrMissingMetadata = errors.New("chain metadata missing")
	// ErrUnknownChain is returned when a chain id is not present in the network table.
	ErrUnknownChain = errors.New("unknown chain")
	// ErrInvalidQuantity is returned when a numeric quantity can't be parsed.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// MissingMetadataError identifies the chain whose metadata was missing.
type MissingMetadataError struct {
	ChainID uint64
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("%s for chain %d", ErrMissingMetadata, e.ChainID)
}

func (e *MissingMetadataError) Unwrap() error {
	return ErrMissingMetadata
}
