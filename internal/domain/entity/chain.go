package entity

// Colorway names a theme variant.
type Colorway string

const (
	ColorwayLight Colorway = "light"
	ColorwayDark  Colorway = "dark"
)

// Color is an RGB value resolved from a theme token.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Currency is the native currency block of an active chain descriptor.
type Currency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

// Icon is a currency icon reference.
type Icon struct {
	URL string `json:"url"`
}

// Explorer is a block explorer reference.
type Explorer struct {
	URL string `json:"url"`
}

// WalletExtension carries wallet-specific presentation hints.
type WalletExtension struct {
	Colors []Color `json:"colors"`
}

// External groups non-standard descriptor extensions.
type External struct {
	Wallet WalletExtension `json:"wallet"`
}

// ActiveChain is the descriptor sent to clients for every enabled chain.
// Optional values are modelled as zero- or one-element slices.
type ActiveChain struct {
	ChainID        uint64     `json:"chainId"`
	NetworkID      uint64     `json:"networkId"`
	Name           string     `json:"name"`
	Connected      bool       `json:"connected"`
	NativeCurrency Currency   `json:"nativeCurrency"`
	Icon           []Icon     `json:"icon"`
	Explorers      []Explorer `json:"explorers"`
	External       External   `json:"external"`
}

// Equal compares two descriptors field by field.
func (c ActiveChain) Equal(o ActiveChain) bool {
	if c.ChainID != o.ChainID ||
		c.NetworkID != o.NetworkID ||
		c.Name != o.Name ||
		c.Connected != o.Connected ||
		c.NativeCurrency != o.NativeCurrency {
		return false
	}
	if len(c.Icon) != len(o.Icon) {
		return false
	}
	for i := range c.Icon {
		if c.Icon[i] != o.Icon[i] {
			return false
		}
	}
	if len(c.Explorers) != len(o.Explorers) {
		return false
	}
	for i := range c.Explorers {
		if c.Explorers[i] != o.Explorers[i] {
			return false
		}
	}
	if len(c.External.Wallet.Colors) != len(o.External.Wallet.Colors) {
		return false
	}
	for i := range c.External.Wallet.Colors {
		if c.External.Wallet.Colors[i] != o.External.Wallet.Colors[i] {
			return false
		}
	}
	return true
}

// ActiveChains is an ordered snapshot of enabled chains, ascending by chain id.
type ActiveChains []ActiveChain

// Equal reports whether both snapshots hold equal descriptors in the same order.
func (s ActiveChains) Equal(o ActiveChains) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
