package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/transport/http/dto"
	"github.com/dmarenin/amm-pool-service/internal/transport/http/validate"
)

func (s *Server) handleCreatePool(w http.ResponseWriter, r *http.Request) {
	req, err := validate.CreatePoolRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.CreatePool(ctx, *req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, dto.CreatePoolResponse{
		PoolKey: res.PoolKey.Hex(),
		AssetA:  res.Pool.AssetA.Hex(),
		AssetB:  res.Pool.AssetB.Hex(),
		FeeBps:  res.Pool.FeeBps,
	})
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	req, err := validate.DepositRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.Deposit(ctx, *req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.DepositResponse{
		AmountA:      formatUint(res.AmountA),
		AmountB:      formatUint(res.AmountB),
		MintedClaims: formatUint(res.MintedClaims),
		ReserveA:     formatUint(res.Pool.ReserveA),
		ReserveB:     formatUint(res.Pool.ReserveB),
		Supply:       formatUint(res.Pool.LiquiditySupply),
	})
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	req, err := validate.WithdrawRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.Withdraw(ctx, *req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.WithdrawResponse{
		AmountA:     formatUint(res.AmountA),
		AmountB:     formatUint(res.AmountB),
		ClaimsBurnt: formatUint(res.ClaimsBurnt),
		ReserveA:    formatUint(res.Pool.ReserveA),
		ReserveB:    formatUint(res.Pool.ReserveB),
		Supply:      formatUint(res.Pool.LiquiditySupply),
	})
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	req, err := validate.SwapRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.Swap(ctx, *req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.SwapResponse{
		InputAmount:  formatUint(res.InputAmount),
		OutputAmount: formatUint(res.OutputAmount),
		FeeAmount:    formatUint(res.FeeAmount),
	})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, err := validate.QuoteRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	res, err := s.svc.Quote(ctx, *req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.SwapResponse{
		InputAmount:  formatUint(res.InputAmount),
		OutputAmount: formatUint(res.OutputAmount),
		FeeAmount:    formatUint(res.FeeAmount),
	})
}

func (s *Server) handleFaucet(w http.ResponseWriter, r *http.Request) {
	asset, account, amount, err := validate.FaucetRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.faucet.Credit(r.Context(), asset, account, amount); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps the service error taxonomy onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidConfiguration),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrEmptyPool),
		errors.Is(err, apperrors.ErrInsufficientLiquidity),
		errors.Is(err, apperrors.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrSlippageExceeded):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrPoolExists),
		errors.Is(err, apperrors.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrPoolNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.log.Error("internal error", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response write failed", zap.Error(err))
	}
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
