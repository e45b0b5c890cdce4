package storeapi

import "strconv"

const (
	NetworksRoot     = "main.networks"
	NetworksMetaRoot = "main.networksMeta"
	ColorwayPath     = "main.colorway"
	OriginsRoot      = "main.origins"
	SelectedPath     = "selected.current"
	RatesRoot        = "main.rates" // single leaf: map[string]entity.Rate
	BalancesRoot     = "main.balances"
)

// NetworkPath is the path of one chain's configuration.
func NetworkPath(networkType string, chainID uint64) string {
	return NetworksRoot + "." + networkType + "." + strconv.FormatUint(chainID, 10)
}

// NetworkMetaPath is the path of one chain's metadata.
func NetworkMetaPath(networkType string, chainID uint64) string {
	return NetworksMetaRoot + "." + networkType + "." + strconv.FormatUint(chainID, 10)
}

// OriginPath is the path of one origin.
func OriginPath(originID string) string {
	return OriginsRoot + "." + originID
}

// BalancesPath is the path of an account's raw balances.
func BalancesPath(address string) string {
	return BalancesRoot + "." + address
}
