package core

import (
	"context"
	"errors"
	"fmt"

	"graphtrace/internal/repository"
	"graphtrace/pkg/addr"

	"github.com/shopspring/decimal"
)

// CreateGraph creates a new graph rooted at the given wallet and populates it
// with the supplied nodes and edges. The root wallet is auto-created as a
// stub when absent; nodes and edges with invalid addresses are skipped, not
// fatal. Callers must inspect the returned counts rather than assume they
// match the input lengths.
func (t *Tracer) CreateGraph(ctx context.Context, msg CreateGraphMessage) (GraphSummary, error) {
	if !addr.IsValid(msg.RootWalletAddress) {
		return GraphSummary{}, ErrInvalidAddress
	}
	root := addr.Canonical(msg.RootWalletAddress)

	err := t.wallets.EnsureWallets(ctx, []repository.Wallet{{Address: root, Chain: defaultChain}})
	if err != nil {
		return GraphSummary{}, fmt.Errorf("ensure root wallet: %w", err)
	}

	graph := &repository.WalletGraph{RootWalletAddress: root}
	if err := t.graphs.CreateGraph(ctx, graph); err != nil {
		return GraphSummary{}, fmt.Errorf("create graph: %w", err)
	}

	batch, err := t.populateGraph(ctx, graph.ID, msg.Nodes, msg.Edges)
	if err != nil {
		return GraphSummary{}, err
	}

	t.logs.Infow("graph created",
		"graphId", graph.ID,
		"rootWalletAddress", root,
		"nodesAdded", batch.NodesAdded,
		"edgesAdded", batch.EdgesAdded,
		"skipped", len(batch.Errors))

	return GraphSummary{
		ID:                graph.ID,
		RootWalletAddress: graph.RootWalletAddress,
		CreatedAt:         graph.CreatedAt,
		NodeCount:         batch.NodesAdded,
		EdgeCount:         batch.EdgesAdded,
	}, nil
}

// ReplaceGraph is the bulk-refresh path: when a graph rooted at the address
// already exists its nodes and edges are wiped and re-populated, reusing the
// graph row; otherwise it behaves exactly like CreateGraph.
func (t *Tracer) ReplaceGraph(ctx context.Context, msg CreateGraphMessage) (GraphSummary, error) {
	if !addr.IsValid(msg.RootWalletAddress) {
		return GraphSummary{}, ErrInvalidAddress
	}
	root := addr.Canonical(msg.RootWalletAddress)

	graph, err := t.graphs.GetGraphByRoot(ctx, root)
	if err != nil {
		if errors.Is(err, repository.ErrGraphNotFound) {
			return t.CreateGraph(ctx, msg)
		}
		return GraphSummary{}, fmt.Errorf("get graph by root: %w", err)
	}

	if err := t.graphs.DeleteGraphData(ctx, graph.ID); err != nil {
		return GraphSummary{}, fmt.Errorf("clear graph data: %w", err)
	}

	batch, err := t.populateGraph(ctx, graph.ID, msg.Nodes, msg.Edges)
	if err != nil {
		return GraphSummary{}, err
	}

	t.logs.Infow("graph replaced",
		"graphId", graph.ID,
		"rootWalletAddress", root,
		"nodesAdded", batch.NodesAdded,
		"edgesAdded", batch.EdgesAdded,
		"skipped", len(batch.Errors))

	return GraphSummary{
		ID:                graph.ID,
		RootWalletAddress: graph.RootWalletAddress,
		CreatedAt:         graph.CreatedAt,
		NodeCount:         batch.NodesAdded,
		EdgeCount:         batch.EdgesAdded,
	}, nil
}

// AddToGraph appends nodes and edges to an existing graph. Nodes already in
// the graph are skipped, keeping the operation idempotent on the
// (graph, wallet) pair; edges are appended unconditionally. Invalid entries
// are reported per item in the result, never aborting the batch.
func (t *Tracer) AddToGraph(ctx context.Context, graphID uint, nodes []NodeInput, edges []EdgeInput) (BatchResult, error) {
	_, err := t.graphs.GetGraph(ctx, graphID)
	if err != nil {
		if errors.Is(err, repository.ErrGraphNotFound) {
			return BatchResult{}, ErrGraphNotFound
		}
		return BatchResult{}, fmt.Errorf("get graph: %w", err)
	}

	batch, err := t.populateGraph(ctx, graphID, nodes, edges)
	if err != nil {
		return BatchResult{}, err
	}

	t.logs.Infow("graph updated",
		"graphId", graphID,
		"nodesAdded", batch.NodesAdded,
		"edgesAdded", batch.EdgesAdded,
		"errors", len(batch.Errors))

	return batch, nil
}

// populateGraph writes a node/edge batch with best-effort semantics. Wallet
// stubs for valid node addresses are ensured first, centralizing
// auto-vivification here; the storage layer's conflict handling suppresses
// node duplicates so the actually-inserted count can be reported.
func (t *Tracer) populateGraph(ctx context.Context, graphID uint, nodes []NodeInput, edges []EdgeInput) (BatchResult, error) {
	result := BatchResult{Errors: []string{}}

	stubs := make([]repository.Wallet, 0, len(nodes))
	nodeRows := make([]repository.GraphNode, 0, len(nodes))
	for _, node := range nodes {
		if !addr.IsValid(node.WalletAddress) {
			result.Errors = append(result.Errors, fmt.Sprintf("invalid wallet address: %s", node.WalletAddress))
			continue
		}
		address := addr.Canonical(node.WalletAddress)

		stub := repository.Wallet{Address: address, Chain: defaultChain}
		if node.Chain != "" {
			stub.Chain = node.Chain
		}
		if node.OwnerName != "" {
			owner := node.OwnerName
			stub.OwnerName = &owner
		}
		stubs = append(stubs, stub)

		nodeType := node.NodeType
		if nodeType == "" {
			nodeType = defaultNodeType
		}
		nodeRows = append(nodeRows, repository.GraphNode{
			GraphID:       graphID,
			WalletAddress: address,
			NodeType:      nodeType,
		})
	}

	if err := t.wallets.EnsureWallets(ctx, stubs); err != nil {
		return BatchResult{}, fmt.Errorf("ensure node wallets: %w", err)
	}

	inserted, err := t.graphs.InsertNodes(ctx, nodeRows)
	if err != nil {
		return BatchResult{}, fmt.Errorf("insert nodes: %w", err)
	}
	result.NodesAdded = int(inserted)

	edgeRows := make([]repository.GraphEdge, 0, len(edges))
	for _, edge := range edges {
		if !addr.IsValid(edge.FromWalletAddress) || !addr.IsValid(edge.ToWalletAddress) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("invalid edge addresses: %s -> %s", edge.FromWalletAddress, edge.ToWalletAddress))
			continue
		}

		var amount decimal.NullDecimal
		if edge.Amount != "" {
			parsed, err := decimal.NewFromString(edge.Amount)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("invalid edge amount: %s", edge.Amount))
				continue
			}
			amount = decimal.NullDecimal{Decimal: parsed, Valid: true}
		}

		row := repository.GraphEdge{
			GraphID:           graphID,
			FromWalletAddress: addr.Canonical(edge.FromWalletAddress),
			ToWalletAddress:   addr.Canonical(edge.ToWalletAddress),
			Amount:            amount,
			Timestamp:         edge.Timestamp,
		}
		if edge.TransactionHash != "" {
			hash := edge.TransactionHash
			row.TransactionHash = &hash
		}
		edgeRows = append(edgeRows, row)
	}

	if err := t.graphs.InsertEdges(ctx, edgeRows); err != nil {
		return BatchResult{}, fmt.Errorf("insert edges: %w", err)
	}
	result.EdgesAdded = len(edgeRows)

	return result, nil
}
