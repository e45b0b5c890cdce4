package service

import (
	"sort"

	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
)

// BuildActiveChains derives the ordered list of enabled chain descriptors.
// It fails with *entity.MissingMetadataError if an enabled chain has no metadata; no partial list is returned.
func BuildActiveChains(
	chains map[uint64]entity.Chain,
	meta map[uint64]entity.ChainMetadata,
	colorway entity.Colorway,
	resolve port.ColorResolver,
) (entity.ActiveChains, error) {
	enabled := make([]entity.Chain, 0, len(chains))
	for _, chain := range chains {
		if chain.On {
			enabled = append(enabled, chain)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool { return enabled[i].ID < enabled[j].ID })

	active := make(entity.ActiveChains, 0, len(enabled))
	for _, chain := range enabled {
		m, ok := meta[chain.ID]
		if !ok {
			return nil, &entity.MissingMetadataError{ChainID: chain.ID}
		}

		icons := []entity.Icon{}
		if m.NativeCurrency.Icon != "" {
			icons = append(icons, entity.Icon{URL: m.NativeCurrency.Icon})
		}
		colors := []entity.Color{}
		if m.PrimaryColor != "" && resolve != nil {
			colors = append(colors, resolve(m.PrimaryColor, colorway))
		}

		active = append(active, entity.ActiveChain{
			ChainID:   chain.ID,
			NetworkID: chain.ID,
			Name:      chain.Name,
			Connected: chain.Connection.Connected(),
			NativeCurrency: entity.Currency{
				Name:     m.NativeCurrency.Name,
				Symbol:   m.NativeCurrency.Symbol,
				Decimals: m.NativeCurrency.Decimals,
			},
			Icon:      icons,
			Explorers: []entity.Explorer{{URL: chain.Explorer}},
			External:  entity.External{Wallet: entity.WalletExtension{Colors: colors}},
		})
	}
	return active, nil
}

// ActiveChainsFrom builds the snapshot from the current state.
func ActiveChainsFrom(reader port.StateReader, resolve port.ColorResolver) (entity.ActiveChains, error) {
	return BuildActiveChains(reader.Chains(), reader.ChainsMeta(), reader.Colorway(), resolve)
}
