package entity

import "time"

// EventKind is the type of a client notification.
type EventKind string

const (
	EventChainsChanged  EventKind = "chainsChanged"
	EventChainChanged   EventKind = "chainChanged"
	EventNetworkChanged EventKind = "networkChanged"
)

// Event is a notification payload produced by the observers.
type Event struct {
	Kind     EventKind    `json:"kind"`
	Account  string       `json:"account,omitempty"`
	OriginID string       `json:"originId,omitempty"`
	ChainID  uint64       `json:"chainId,omitempty"`
	Chains   ActiveChains `json:"chains,omitempty"`
	At       time.Time    `json:"at"`
}
