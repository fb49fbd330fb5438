package action

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gagliardetto/solana-go"
)

// LamportsPerSOL is the scale between user-facing amounts and the smallest
// ledger unit.
const LamportsPerSOL = 1_000_000_000

// TransferParams is a fully validated build request.
type TransferParams struct {
	Payer    solana.PublicKey
	Receiver solana.PublicKey
	Lamports uint64
}

// ValidateTransfer checks the three caller-supplied inputs and converts the
// amount to lamports. Single validation routine for the build endpoint;
// every failure here maps to a 400.
func ValidateTransfer(receiver, amount, account string) (TransferParams, error) {
	var params TransferParams

	if receiver == "" {
		return params, fmt.Errorf("receiver parameter required")
	}
	to, err := solana.PublicKeyFromBase58(receiver)
	if err != nil {
		return params, fmt.Errorf("invalid receiver address: %w", err)
	}

	if amount == "" {
		return params, fmt.Errorf("amount parameter required")
	}
	sol, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return params, fmt.Errorf("invalid amount %q", amount)
	}
	// Zero, negative and non-finite amounts cannot produce a usable
	// instruction; sub-lamport precision is truncated.
	if math.IsNaN(sol) || math.IsInf(sol, 0) || sol <= 0 {
		return params, fmt.Errorf("amount must be a positive number")
	}

	if account == "" {
		return params, fmt.Errorf("account field required")
	}
	payer, err := solana.PublicKeyFromBase58(account)
	if err != nil {
		return params, fmt.Errorf("invalid account address: %w", err)
	}

	params.Payer = payer
	params.Receiver = to
	params.Lamports = uint64(sol * LamportsPerSOL)
	return params, nil
}
