package service

import (
	"fmt"
	"math/big"

	"walletstate/internal/domain/entity"
)

type fakeState struct {
	chains   map[uint64]entity.Chain
	meta     map[uint64]entity.ChainMetadata
	colorway entity.Colorway
	origins  []entity.Origin
	account  string
	rates    map[string]entity.Rate
	balances map[string][]entity.RawBalance
}

func newFakeState() *fakeState {
	return &fakeState{
		chains:   map[uint64]entity.Chain{},
		meta:     map[uint64]entity.ChainMetadata{},
		colorway: entity.ColorwayDark,
		rates:    map[string]entity.Rate{},
		balances: map[string][]entity.RawBalance{},
	}
}

func (f *fakeState) Chains() map[uint64]entity.Chain             { return f.chains }
func (f *fakeState) ChainsMeta() map[uint64]entity.ChainMetadata { return f.meta }
func (f *fakeState) Colorway() entity.Colorway                   { return f.colorway }
func (f *fakeState) Origins() []entity.Origin                    { return f.origins }
func (f *fakeState) SelectedAccount() string                     { return f.account }
func (f *fakeState) Rates() map[string]entity.Rate               { return f.rates }
func (f *fakeState) Balances(address string) []entity.RawBalance { return f.balances[address] }

func (f *fakeState) addChain(id uint64, name string, on bool) {
	f.chains[id] = entity.Chain{
		ID:       id,
		Name:     name,
		On:       on,
		Explorer: fmt.Sprintf("https://explorer-%d.example", id),
		Connection: entity.Connection{
			Primary: entity.Link{On: true, Connected: true, Status: "connected"},
		},
	}
	f.meta[id] = entity.ChainMetadata{
		NativeCurrency: entity.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
		PrimaryColor:   "accent1",
	}
}

func (f *fakeState) setOrigin(id string, chainID uint64) {
	for i := range f.origins {
		if f.origins[i].ID == id {
			f.origins[i].Chain.ID = chainID
			return
		}
	}
	f.origins = append(f.origins, entity.Origin{ID: id, Name: id, Chain: entity.OriginChain{ID: chainID, Type: entity.DefaultNetworkType}})
}

func fixedColor(token string, colorway entity.Colorway) entity.Color {
	if colorway == entity.ColorwayLight {
		return entity.Color{R: 1, G: 2, B: 3}
	}
	return entity.Color{R: 10, G: 20, B: 30}
}

type chainsCall struct {
	account string
	chains  entity.ActiveChains
}

type recordingHandler struct {
	chains []chainsCall
	calls  []string
}

func (h *recordingHandler) ChainsChanged(account string, chains entity.ActiveChains) {
	h.chains = append(h.chains, chainsCall{account: account, chains: chains})
}

func (h *recordingHandler) ChainChanged(chainID uint64, originID string) {
	h.calls = append(h.calls, fmt.Sprintf("chainChanged:%s:%d", originID, chainID))
}

func (h *recordingHandler) NetworkChanged(networkID uint64, originID string) {
	h.calls = append(h.calls, fmt.Sprintf("networkChanged:%s:%d", originID, networkID))
}

type countingRecorder struct {
	ticks    map[string]int
	failures map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{ticks: map[string]int{}, failures: map[string]int{}}
}

func (r *countingRecorder) ObserveTick(observer string)        { r.ticks[observer]++ }
func (r *countingRecorder) ObserveTickFailure(observer string) { r.failures[observer]++ }

func wei(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad amount " + s)
	}
	return v
}
