package action

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// BuildTransfer - assemble the unsigned transfer transaction for a validated
// request. Nothing is retained after the envelope is returned.
func (s *Service) BuildTransfer(ctx context.Context, params TransferParams) (*PostResponse, error) {
	// Get recent block hash
	recent, err := s.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	// Create transfer instruction
	instruction := system.NewTransferInstruction(
		params.Lamports,
		params.Payer,
		params.Receiver,
	).Build()

	// Build transaction WITHOUT signatures, payer pays the fee
	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		recent.Value.Blockhash,
		solana.TransactionPayer(params.Payer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Serialize the full transaction structure with its empty signature slots
	txBytes, err := tx.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transaction: %w", err)
	}

	s.logger.Info("built transfer transaction",
		zap.String("payer", params.Payer.String()),
		zap.String("receiver", params.Receiver.String()),
		zap.Uint64("lamports", params.Lamports),
		zap.String("blockhash", recent.Value.Blockhash.String()),
		zap.String("receiver_explorer", s.AddressExplorerURL(params.Receiver.String())),
	)

	return &PostResponse{
		Type:        "transaction",
		Transaction: base64.StdEncoding.EncodeToString(txBytes),
	}, nil
}
