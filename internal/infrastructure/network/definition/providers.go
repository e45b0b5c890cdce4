package networkdefinition

import (
	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
	"walletstate/internal/infrastructure/storeapi"
)

// NetworkDefinition is a built-in chain with its presentation data.
type NetworkDefinition struct {
	ChainID          uint64
	Name             string
	Identifier       string
	NativeName       string
	NativeSymbol     string
	Decimals         int32
	BlockExplorerURL string
	IconURL          string
	PrimaryColor     string
	IsTestnet        bool
	EnabledByDefault bool
}

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Ethereum = NetworkDefinition{
		ChainID:          1,
		Name:             "Mainnet",
		Identifier:       "ethereum",
		NativeName:       "Ether",
		NativeSymbol:     "ETH",
		Decimals:         18,
		BlockExplorerURL: "https://etherscan.io",
		PrimaryColor:     "accent1",
		EnabledByDefault: true,
	}
	Optimism = NetworkDefinition{
		ChainID:          10,
		Name:             "Optimism",
		Identifier:       "optimism",
		NativeName:       "Ether",
		NativeSymbol:     "ETH",
		Decimals:         18,
		BlockExplorerURL: "https://optimistic.etherscan.io",
		PrimaryColor:     "accent4",
		EnabledByDefault: true,
	}
	BSC = NetworkDefinition{
		ChainID:          56,
		Name:             "BNB Smart Chain",
		Identifier:       "bsc",
		NativeName:       "BNB",
		NativeSymbol:     "BNB",
		Decimals:         18,
		BlockExplorerURL: "https://bscscan.com",
		PrimaryColor:     "accent6",
	}
	Gnosis = NetworkDefinition{
		ChainID:          100,
		Name:             "Gnosis",
		Identifier:       "gnosis",
		NativeName:       "xDAI",
		NativeSymbol:     "xDAI",
		Decimals:         18,
		BlockExplorerURL: "https://gnosisscan.io",
		PrimaryColor:     "accent5",
	}
	Polygon = NetworkDefinition{
		ChainID:          137,
		Name:             "Polygon",
		Identifier:       "polygon",
		NativeName:       "Matic",
		NativeSymbol:     "MATIC",
		Decimals:         18,
		BlockExplorerURL: "https://polygonscan.com",
		PrimaryColor:     "accent6",
		EnabledByDefault: true,
	}
	Base = NetworkDefinition{
		ChainID:          8453,
		Name:             "Base",
		Identifier:       "base",
		NativeName:       "Ether",
		NativeSymbol:     "ETH",
		Decimals:         18,
		BlockExplorerURL: "https://basescan.org",
		PrimaryColor:     "accent2",
		EnabledByDefault: true,
	}
	Arbitrum = NetworkDefinition{
		ChainID:          42161,
		Name:             "Arbitrum",
		Identifier:       "arbitrum",
		NativeName:       "Ether",
		NativeSymbol:     "ETH",
		Decimals:         18,
		BlockExplorerURL: "https://arbiscan.io",
		PrimaryColor:     "accent7",
		EnabledByDefault: true,
	}
	Avalanche = NetworkDefinition{
		ChainID:          43114,
		Name:             "Avalanche C-Chain",
		Identifier:       "avalanche",
		NativeName:       "Avalanche",
		NativeSymbol:     "AVAX",
		Decimals:         18,
		BlockExplorerURL: "https://snowtrace.io",
		PrimaryColor:     "accent3",
	}
	Linea = NetworkDefinition{
		ChainID:          59144,
		Name:             "Linea",
		Identifier:       "linea",
		NativeName:       "Ether",
		NativeSymbol:     "ETH",
		Decimals:         18,
		BlockExplorerURL: "https://lineascan.build",
		PrimaryColor:     "accent8",
	}
	Scroll = NetworkDefinition{
		ChainID:          534352,
		Name:             "Scroll",
		Identifier:       "scroll",
		NativeName:       "Ether",
		NativeSymbol:     "ETH",
		Decimals:         18,
		BlockExplorerURL: "https://scrollscan.com",
		PrimaryColor:     "accent2",
	}
	Sepolia = NetworkDefinition{
		ChainID:          11155111,
		Name:             "Sepolia",
		Identifier:       "sepolia",
		NativeName:       "Sepolia Ether",
		NativeSymbol:     "sepETH",
		Decimals:         18,
		BlockExplorerURL: "https://sepolia.etherscan.io",
		PrimaryColor:     "accent2",
		IsTestnet:        true,
	}
)

// allKnownDefinitions lists the built-in networks in the order they are seeded.
var allKnownDefinitions = []NetworkDefinition{
	Ethereum,
	Optimism,
	BSC,
	Gnosis,
	Polygon,
	Base,
	Arbitrum,
	Avalanche,
	Linea,
	Scroll,
	Sepolia,
}

// All returns a copy of the built-in definitions.
func All() []NetworkDefinition {
	defs := make([]NetworkDefinition, len(allKnownDefinitions))
	copy(defs, allKnownDefinitions)
	return defs
}

// ByChainID returns the built-in definition of chainID.
func ByChainID(chainID uint64) (NetworkDefinition, bool) {
	for _, def := range allKnownDefinitions {
		if def.ChainID == chainID {
			return def, true
		}
	}
	return NetworkDefinition{}, false
}

// Chain converts the definition into its store entry. Built-in chains start disconnected.
func (d NetworkDefinition) Chain() entity.Chain {
	return entity.Chain{
		ID:        d.ChainID,
		Name:      d.Name,
		On:        d.EnabledByDefault,
		IsTestnet: d.IsTestnet,
		Explorer:  d.BlockExplorerURL,
		Connection: entity.Connection{
			Primary:   entity.Link{On: true, Status: "disconnected"},
			Secondary: entity.Link{Status: "off"},
		},
	}
}

// Meta converts the definition into its metadata store entry.
func (d NetworkDefinition) Meta() entity.ChainMetadata {
	return entity.ChainMetadata{
		NativeCurrency: entity.NativeCurrency{
			Name:     d.NativeName,
			Symbol:   d.NativeSymbol,
			Decimals: d.Decimals,
			Icon:     d.IconURL,
		},
		PrimaryColor: d.PrimaryColor,
	}
}

// Seed writes every built-in chain and its metadata under networkType.
func Seed(store port.StoreWriter, networkType string, logger port.Logger) {
	for _, def := range allKnownDefinitions {
		store.Set(storeapi.NetworkPath(networkType, def.ChainID), def.Chain())
		store.Set(storeapi.NetworkMetaPath(networkType, def.ChainID), def.Meta())
	}
	logger.Info("Built-in networks seeded", "network_type", networkType, "count", len(allKnownDefinitions))
}
