package action_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blink/action"
)

func TestValidateTransferConvertsToLamports(t *testing.T) {
	t.Parallel()
	payer := solana.NewWallet().PublicKey()
	receiver := solana.NewWallet().PublicKey()

	params, err := action.ValidateTransfer(receiver.String(), "1.5", payer.String())
	require.NoError(t, err)
	assert.Equal(t, payer, params.Payer)
	assert.Equal(t, receiver, params.Receiver)
	assert.Equal(t, uint64(1_500_000_000), params.Lamports)
}

func TestValidateTransferWholeAmount(t *testing.T) {
	t.Parallel()
	payer := solana.NewWallet().PublicKey()
	receiver := solana.NewWallet().PublicKey()

	params, err := action.ValidateTransfer(receiver.String(), "2", payer.String())
	require.NoError(t, err)
	assert.Equal(t, uint64(2*action.LamportsPerSOL), params.Lamports)
}

func TestValidateTransferRejectsBadInputs(t *testing.T) {
	t.Parallel()
	payer := solana.NewWallet().PublicKey().String()
	receiver := solana.NewWallet().PublicKey().String()

	tests := []struct {
		name     string
		receiver string
		amount   string
		account  string
	}{
		{"missing receiver", "", "1", payer},
		{"malformed receiver", "not-a-key", "1", payer},
		{"short receiver", "zzz", "1", payer},
		{"missing amount", receiver, "", payer},
		{"non numeric amount", receiver, "abc", payer},
		{"zero amount", receiver, "0", payer},
		{"negative amount", receiver, "-1", payer},
		{"infinite amount", receiver, "Inf", payer},
		{"nan amount", receiver, "NaN", payer},
		{"missing account", receiver, "1", ""},
		{"malformed account", receiver, "1", "zzz"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := action.ValidateTransfer(tt.receiver, tt.amount, tt.account)
			assert.Error(t, err)
		})
	}
}
