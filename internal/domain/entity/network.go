package entity

// DefaultNetworkType is the store namespace used for EVM networks.
const DefaultNetworkType = "ethereum"

// Link is the state of a single RPC connection for a chain.
type Link struct {
	On        bool   `json:"on" yaml:"on"`
	Connected bool   `json:"connected" yaml:"connected"`
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
}

// Connection holds the primary and secondary RPC links of a chain.
type Connection struct {
	Primary   Link `json:"primary" yaml:"primary"`
	Secondary Link `json:"secondary" yaml:"secondary"`
}

// Connected reports whether either link is currently connected.
func (c Connection) Connected() bool {
	return c.Primary.Connected || c.Secondary.Connected
}

// Chain is a network configuration entry as kept in the store.
type Chain struct {
	ID         uint64     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	On         bool       `json:"on" yaml:"on"`
	IsTestnet  bool       `json:"isTestnet" yaml:"isTestnet"`
	Explorer   string     `json:"explorer" yaml:"explorer"`
	Connection Connection `json:"connection" yaml:"connection"`
}

// Quote is a USD price for an asset.
type Quote struct {
	Price      float64 `json:"price"`
	Change24hr float64 `json:"change24hr"`
}

// NativeCurrency describes the native asset of a chain.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
	Icon     string `json:"icon,omitempty"`
	USD      *Quote `json:"usd,omitempty"`
}

// ChainMetadata holds presentation data for a chain, keyed by chain id in the store.
type ChainMetadata struct {
	NativeCurrency NativeCurrency `json:"nativeCurrency"`
	PrimaryColor   string         `json:"primaryColor,omitempty"`
	BlockHeight    uint64         `json:"blockHeight,omitempty"`
}
