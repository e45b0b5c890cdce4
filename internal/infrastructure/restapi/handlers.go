package restapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"walletstate/internal/app/port"
	"walletstate/internal/domain/entity"
	"walletstate/internal/infrastructure/storeapi"
)

const defaultEventsLimit = 50

// ChainsSnapshot exposes the current active chain list.
type ChainsSnapshot interface {
	Snapshot() entity.ActiveChains
}

// EventHistory exposes recently emitted events.
type EventHistory interface {
	Recent(limit int) []entity.Event
}

// FeeDescriber renders fee ranges of transaction requests.
type FeeDescriber interface {
	Describe(req entity.TxFeeRequest) (entity.FeeDisplay, error)
}

// BalanceSummarizer aggregates account balances.
type BalanceSummarizer interface {
	Summary(address, filter string) entity.BalanceSummary
}

// Dependencies groups what the handlers need.
type Dependencies struct {
	Chains       ChainsSnapshot
	Events       EventHistory
	Fees         FeeDescriber
	Balances     BalanceSummarizer
	Reader       port.StateReader
	Store        port.StoreWriter
	Populated    port.PopulatedMarker
	NetworkType  string
	PopulatedTTL time.Duration
	Logger       port.Logger
}

// Handler serves the wallet state API.
type Handler struct {
	deps Dependencies
}

// NewHandler creates a new Handler.
func NewHandler(deps Dependencies) *Handler {
	if deps.NetworkType == "" {
		deps.NetworkType = entity.DefaultNetworkType
	}
	return &Handler{deps: deps}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.deps.Logger.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnknownChain):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) chainParam(c *gin.Context) (entity.Chain, bool) {
	id, err := strconv.ParseUint(c.Param("chainId"), 10, 64)
	if err != nil {
		h.fail(c, http.StatusBadRequest, errors.New("chainId must be a positive integer"))
		return entity.Chain{}, false
	}
	chain, ok := h.deps.Reader.Chains()[id]
	if !ok {
		h.fail(c, http.StatusNotFound, entity.ErrUnknownChain)
		return entity.Chain{}, false
	}
	return chain, true
}

func (h *Handler) updateChain(chain entity.Chain, mutate func(*entity.Chain)) entity.Chain {
	var updated entity.Chain
	h.deps.Store.Update(storeapi.NetworkPath(h.deps.NetworkType, chain.ID), func(current any, found bool) any {
		c, ok := current.(entity.Chain)
		if !ok {
			c = chain
		}
		mutate(&c)
		updated = c
		return c
	})
	return updated
}

// GetChains returns the current active chain snapshot.
func (h *Handler) GetChains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chains": h.deps.Chains.Snapshot()})
}

// GetEvents returns the most recent events.
func (h *Handler) GetEvents(c *gin.Context) {
	limit := defaultEventsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.fail(c, http.StatusBadRequest, errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"events": h.deps.Events.Recent(limit)})
}

// EstimateFee describes the fee range of a transaction request.
func (h *Handler) EstimateFee(c *gin.Context) {
	var req entity.TxFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	display, err := h.deps.Fees.Describe(req)
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, display)
}

// GetBalances returns the balance summary of an account.
func (h *Handler) GetBalances(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		h.fail(c, http.StatusBadRequest, errors.New("invalid address"))
		return
	}
	c.JSON(http.StatusOK, h.deps.Balances.Summary(address, c.Query("filter")))
}

type enabledRequest struct {
	On *bool `json:"on" binding:"required"`
}

// SetNetworkEnabled turns a chain on or off.
func (h *Handler) SetNetworkEnabled(c *gin.Context) {
	chain, ok := h.chainParam(c)
	if !ok {
		return
	}
	var req enabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	updated := h.updateChain(chain, func(ch *entity.Chain) { ch.On = *req.On })
	c.JSON(http.StatusOK, updated)
}

type connectionRequest struct {
	Primary   *bool `json:"primary"`
	Secondary *bool `json:"secondary"`
}

// SetNetworkConnection records the connection state reported for a chain's RPC links.
func (h *Handler) SetNetworkConnection(c *gin.Context) {
	chain, ok := h.chainParam(c)
	if !ok {
		return
	}
	var req connectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	updated := h.updateChain(chain, func(ch *entity.Chain) {
		if req.Primary != nil {
			ch.Connection.Primary.Connected = *req.Primary
			ch.Connection.Primary.Status = linkStatus(*req.Primary)
		}
		if req.Secondary != nil {
			ch.Connection.Secondary.Connected = *req.Secondary
			ch.Connection.Secondary.Status = linkStatus(*req.Secondary)
		}
	})
	c.JSON(http.StatusOK, updated)
}

func linkStatus(connected bool) string {
	if connected {
		return "connected"
	}
	return "disconnected"
}

type populatedRequest struct {
	TTLSeconds *int64 `json:"ttlSeconds"`
}

// MarkPopulated marks a chain's cached data as fresh.
func (h *Handler) MarkPopulated(c *gin.Context) {
	chain, ok := h.chainParam(c)
	if !ok {
		return
	}
	var req populatedRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.fail(c, http.StatusBadRequest, err)
			return
		}
	}
	ttl := h.deps.PopulatedTTL
	if req.TTLSeconds != nil {
		ttl = time.Duration(*req.TTLSeconds) * time.Second
	}
	h.deps.Populated.MarkPopulated(chain.ID, ttl)
	c.Status(http.StatusNoContent)
}

type originChainRequest struct {
	ChainID uint64 `json:"chainId" binding:"required"`
	Name    string `json:"name"`
}

// SetOriginChain switches an origin to another chain, creating the origin if needed.
func (h *Handler) SetOriginChain(c *gin.Context) {
	originID := c.Param("originId")
	if originID == "" || strings.Contains(originID, ".") {
		h.fail(c, http.StatusBadRequest, errors.New("origin id must be non-empty and must not contain dots"))
		return
	}
	var req originChainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	var updated entity.Origin
	h.deps.Store.Update(storeapi.OriginPath(originID), func(current any, found bool) any {
		origin, ok := current.(entity.Origin)
		if !ok {
			origin = entity.Origin{ID: originID, Chain: entity.OriginChain{Type: h.deps.NetworkType}}
		}
		if req.Name != "" {
			origin.Name = req.Name
		}
		origin.Chain.ID = req.ChainID
		updated = origin
		return origin
	})
	c.JSON(http.StatusOK, updated)
}

type selectedRequest struct {
	Account string `json:"account" binding:"required"`
}

// SetSelected changes the selected account.
func (h *Handler) SetSelected(c *gin.Context) {
	var req selectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	if !common.IsHexAddress(req.Account) {
		h.fail(c, http.StatusBadRequest, errors.New("invalid account address"))
		return
	}
	h.deps.Store.Set(storeapi.SelectedPath, req.Account)
	c.Status(http.StatusNoContent)
}
