package action

import (
	"context"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"blink/config"
)

// RPCClient is the slice of the Solana RPC surface the service needs. The
// real *rpc.Client satisfies it; tests substitute a stub.
type RPCClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	GetHealth(ctx context.Context) (string, error)
}

// Service builds transfer actions against one cluster. The RPC handle is
// created once at startup and shared read-only across requests.
type Service struct {
	client  RPCClient
	cluster string
	iconURL string
	logger  *zap.Logger
}

// NewService - initialize the service around an RPC handle
func NewService(client RPCClient, cfg config.Config, logger *zap.Logger) *Service {
	cluster := cfg.Cluster
	if cluster == "" {
		cluster = "mainnet"
	}
	return &Service{
		client:  client,
		cluster: cluster,
		iconURL: cfg.IconURL,
		logger:  logger,
	}
}

// HealthCheck pings the RPC node.
func (s *Service) HealthCheck(ctx context.Context) error {
	_, err := s.client.GetHealth(ctx)
	return err
}

// AddressExplorerURL - explorer link for an account on this cluster
func (s *Service) AddressExplorerURL(address string) string {
	baseURL := "https://explorer.solana.com/address/"
	switch s.cluster {
	case "devnet":
		return baseURL + address + "?cluster=devnet"
	case "testnet":
		return baseURL + address + "?cluster=testnet"
	default:
		return baseURL + address
	}
}

// Metadata returns the action descriptor. The icon URL is derived from the
// caller's own base URL unless an absolute override is configured.
func (s *Service) Metadata(baseURL string) Metadata {
	icon := s.iconURL
	if icon == "" {
		icon = baseURL + IconPath
	}
	return Metadata{
		Type:        "action",
		Icon:        icon,
		Title:       "Transfer SOL",
		Label:       "Transfer",
		Description: "Transfer SOL to another Solana wallet",
		Links: Links{
			Actions: []LinkedAction{
				{
					Type:  "transaction",
					Label: "Transfer SOL",
					Href:  TransferPath + "?receiver={receiver}&amount={amount}",
					Parameters: []Parameter{
						{Type: "text", Label: "Receiver wallet address", Name: "receiver", Required: true},
						{Type: "number", Label: "Amount of SOL to transfer", Name: "amount", Required: true},
					},
				},
			},
		},
	}
}
