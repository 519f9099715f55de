package payload

import (
	"errors"
	"time"

	"graphtrace/internal/core"

	"github.com/jellydator/validation"
)

type NodeEntry struct {
	WalletAddress string `json:"walletAddress"`
	NodeType      string `json:"nodeType"`
	Chain         string `json:"chain"`
	OwnerName     string `json:"ownerName"`
}

type EdgeEntry struct {
	FromWalletAddress string     `json:"fromWalletAddress"`
	ToWalletAddress   string     `json:"toWalletAddress"`
	TransactionHash   string     `json:"transactionHash"`
	Amount            string     `json:"amount"`
	Timestamp         *time.Time `json:"timestamp"`
}

type CreateGraphRequest struct {
	RootWalletAddress string      `json:"rootWalletAddress"`
	Nodes             []NodeEntry `json:"nodes"`
	Edges             []EdgeEntry `json:"edges"`
}

func (c CreateGraphRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RootWalletAddress, validation.Required),
	)
}

func (c CreateGraphRequest) ToMessage() core.CreateGraphMessage {
	return core.CreateGraphMessage{
		RootWalletAddress: c.RootWalletAddress,
		Nodes:             toNodeInputs(c.Nodes),
		Edges:             toEdgeInputs(c.Edges),
	}
}

// BatchRequest appends nodes and edges to an existing graph.
type BatchRequest struct {
	Nodes []NodeEntry `json:"nodes"`
	Edges []EdgeEntry `json:"edges"`
}

func (b BatchRequest) Validate() error {
	if len(b.Nodes) == 0 && len(b.Edges) == 0 {
		return errors.New("nodes or edges are required")
	}
	return nil
}

func (b BatchRequest) ToNodeInputs() []core.NodeInput {
	return toNodeInputs(b.Nodes)
}

func (b BatchRequest) ToEdgeInputs() []core.EdgeInput {
	return toEdgeInputs(b.Edges)
}

func toNodeInputs(entries []NodeEntry) []core.NodeInput {
	nodes := make([]core.NodeInput, 0, len(entries))
	for _, entry := range entries {
		nodes = append(nodes, core.NodeInput{
			WalletAddress: entry.WalletAddress,
			NodeType:      entry.NodeType,
			Chain:         entry.Chain,
			OwnerName:     entry.OwnerName,
		})
	}
	return nodes
}

func toEdgeInputs(entries []EdgeEntry) []core.EdgeInput {
	edges := make([]core.EdgeInput, 0, len(entries))
	for _, entry := range entries {
		edges = append(edges, core.EdgeInput{
			FromWalletAddress: entry.FromWalletAddress,
			ToWalletAddress:   entry.ToWalletAddress,
			TransactionHash:   entry.TransactionHash,
			Amount:            entry.Amount,
			Timestamp:         entry.Timestamp,
		})
	}
	return edges
}
