package entity

// OriginChain is the chain currently selected by an origin.
type OriginChain struct {
	ID   uint64 `json:"id"`
	Type string `json:"type,omitempty"`
}

// Origin is a connected client context, such as a dapp session.
type Origin struct {
	ID    string      `json:"id"`
	Name  string      `json:"name,omitempty"`
	Chain OriginChain `json:"chain"`
}
