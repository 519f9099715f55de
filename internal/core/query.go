package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"graphtrace/internal/repository"
	"graphtrace/pkg/addr"
	"graphtrace/pkg/risk"
)

// enrichment carries the batch-loaded wallet and tag rows for a set of
// addresses. Enrichment data is re-fetched on every query; there is no
// in-process cache.
type enrichment struct {
	wallets map[string]repository.Wallet
	tags    map[string][]repository.WalletTag
}

func (t *Tracer) loadEnrichment(ctx context.Context, addresses []string, withWallets, withTags bool) (enrichment, error) {
	enr := enrichment{
		wallets: map[string]repository.Wallet{},
		tags:    map[string][]repository.WalletTag{},
	}

	distinct := make([]string, 0, len(addresses))
	seen := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		distinct = append(distinct, address)
	}
	if len(distinct) == 0 {
		return enr, nil
	}

	if withWallets {
		wallets, err := t.wallets.GetWalletsByAddresses(ctx, distinct)
		if err != nil {
			return enrichment{}, fmt.Errorf("load wallets: %w", err)
		}
		for _, wallet := range wallets {
			enr.wallets[wallet.Address] = wallet
		}
	}

	if withTags {
		tags, err := t.tags.GetTagsByAddresses(ctx, distinct)
		if err != nil {
			return enrichment{}, fmt.Errorf("load tags: %w", err)
		}
		enr.tags = groupTagsByWallet(tags)
	}

	return enr, nil
}

func buildNodeView(node repository.GraphNode, enr enrichment, withWallets, withTags bool) NodeView {
	view := NodeView{
		ID:            node.ID,
		WalletAddress: node.WalletAddress,
		NodeType:      node.NodeType,
	}

	if withWallets {
		if wallet, ok := enr.wallets[node.WalletAddress]; ok {
			view.Wallet = walletInfoOf(wallet)
		}
	}

	if withTags {
		tags := enr.tags[node.WalletAddress]
		view.Tags = tagViewsOf(tags)
		score := risk.Score(tagTypesOf(tags))
		level := string(risk.LevelFor(score))
		view.RiskScore = &score
		view.SafetyLevel = &level
	}

	return view
}

// GetGraph assembles the full view of one graph: all nodes, all edges,
// optional wallet detail and tag enrichment, plus aggregate statistics.
func (t *Tracer) GetGraph(ctx context.Context, graphID uint, opts GraphOptions) (GraphView, error) {
	graph, err := t.graphs.GetGraph(ctx, graphID)
	if err != nil {
		if errors.Is(err, repository.ErrGraphNotFound) {
			return GraphView{}, ErrGraphNotFound
		}
		return GraphView{}, fmt.Errorf("get graph: %w", err)
	}

	nodes, err := t.graphs.GetNodes(ctx, graphID, "", 0, 0)
	if err != nil {
		return GraphView{}, fmt.Errorf("get graph nodes: %w", err)
	}

	edges, err := t.graphs.GetEdges(ctx, graphID)
	if err != nil {
		return GraphView{}, fmt.Errorf("get graph edges: %w", err)
	}

	rootWallet, err := t.rootWalletInfo(ctx, graph.RootWalletAddress)
	if err != nil {
		return GraphView{}, err
	}

	addresses := make([]string, 0, len(nodes))
	for _, node := range nodes {
		addresses = append(addresses, node.WalletAddress)
	}

	enr, err := t.loadEnrichment(ctx, addresses, opts.IncludeWalletDetails, opts.IncludeTags)
	if err != nil {
		return GraphView{}, err
	}

	nodeViews := make([]NodeView, 0, len(nodes))
	for _, node := range nodes {
		nodeViews = append(nodeViews, buildNodeView(node, enr, opts.IncludeWalletDetails, opts.IncludeTags))
	}

	stats := t.buildStatistics(nodes, edges, enr, opts.IncludeTags, nodeViews)

	id := graph.ID
	return GraphView{
		ID:                &id,
		RootWalletAddress: graph.RootWalletAddress,
		CreatedAt:         graph.CreatedAt,
		RootWallet:        rootWallet,
		Nodes:             nodeViews,
		Edges:             edgeViewsOf(edges),
		Statistics:        &stats,
	}, nil
}

func (t *Tracer) buildStatistics(nodes []repository.GraphNode, edges []repository.GraphEdge, enr enrichment, withTags bool, nodeViews []NodeView) GraphStatistics {
	stats := GraphStatistics{
		TotalNodes: len(nodes),
		TotalEdges: len(edges),
		NodeTypes:  map[string]int{},
	}
	for _, node := range nodes {
		stats.NodeTypes[node.NodeType]++
	}

	if !withTags {
		return stats
	}

	stats.TagDistribution = map[string]int{}
	for _, node := range nodes {
		for _, tag := range enr.tags[node.WalletAddress] {
			stats.TagDistribution[tag.TagType]++
		}
	}

	if len(nodeViews) > 0 {
		var total float64
		highRisk := 0
		for _, view := range nodeViews {
			if view.RiskScore == nil {
				continue
			}
			total += *view.RiskScore
			if *view.RiskScore > risk.HighRiskThreshold {
				highRisk++
			}
		}
		average := total / float64(len(nodeViews))
		stats.AverageRiskScore = &average
		stats.HighRiskNodes = &highRisk
	}

	return stats
}

// rootWalletInfo resolves the root wallet for display, tolerating a missing
// row the way a left join would.
func (t *Tracer) rootWalletInfo(ctx context.Context, address string) (*WalletInfo, error) {
	wallets, err := t.wallets.GetWalletsByAddresses(ctx, []string{address})
	if err != nil {
		return nil, fmt.Errorf("get root wallet: %w", err)
	}
	if len(wallets) == 0 {
		return nil, nil
	}
	return walletInfoOf(wallets[0]), nil
}

// ListGraphs returns graphs newest first with root wallet info and node/edge
// counts, optionally filtered by root wallet address.
func (t *Tracer) ListGraphs(ctx context.Context, opts ListGraphsOptions) ([]GraphSummary, error) {
	if err := validateWindow(opts.Limit, opts.Offset, maxGraphListLimit); err != nil {
		return nil, err
	}

	root := ""
	if opts.RootWalletAddress != "" {
		root = addr.Canonical(opts.RootWalletAddress)
	}

	graphs, err := t.graphs.ListGraphs(ctx, root, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}

	roots := make([]string, 0, len(graphs))
	for _, graph := range graphs {
		roots = append(roots, graph.RootWalletAddress)
	}
	enr, err := t.loadEnrichment(ctx, roots, true, false)
	if err != nil {
		return nil, err
	}

	summaries := make([]GraphSummary, 0, len(graphs))
	for _, graph := range graphs {
		nodeCount, err := t.graphs.CountNodes(ctx, graph.ID, "")
		if err != nil {
			return nil, fmt.Errorf("count graph nodes: %w", err)
		}
		edgeCount, err := t.graphs.CountEdges(ctx, graph.ID)
		if err != nil {
			return nil, fmt.Errorf("count graph edges: %w", err)
		}

		summary := GraphSummary{
			ID:                graph.ID,
			RootWalletAddress: graph.RootWalletAddress,
			CreatedAt:         graph.CreatedAt,
			NodeCount:         int(nodeCount),
			EdgeCount:         int(edgeCount),
		}
		if wallet, ok := enr.wallets[graph.RootWalletAddress]; ok {
			summary.RootWallet = walletInfoOf(wallet)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// GetGraphByRootWallet returns the graph rooted at a wallet with paginated,
// enriched nodes and the full edge set. A wallet that exists but has no
// graph yet yields a well-formed empty view, not an error; a wallet with no
// row at all fails with ErrWalletNotFound. That asymmetry is deliberate.
func (t *Tracer) GetGraphByRootWallet(ctx context.Context, address string, opts RootGraphOptions) (GraphView, error) {
	if !addr.IsValid(address) {
		return GraphView{}, ErrInvalidAddress
	}
	if err := validatePage(opts.Page, opts.Limit, maxNodePageLimit); err != nil {
		return GraphView{}, err
	}
	canonical := addr.Canonical(address)

	wallet, err := t.wallets.GetWallet(ctx, canonical)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return GraphView{}, ErrWalletNotFound
		}
		return GraphView{}, fmt.Errorf("get wallet: %w", err)
	}

	graph, err := t.graphs.GetGraphByRoot(ctx, canonical)
	if err != nil {
		if errors.Is(err, repository.ErrGraphNotFound) {
			return GraphView{
				ID:                nil,
				RootWalletAddress: canonical,
				CreatedAt:         time.Now(),
				RootWallet:        walletInfoOf(wallet),
				Nodes:             []NodeView{},
				Edges:             []EdgeView{},
			}, nil
		}
		return GraphView{}, fmt.Errorf("get graph by root: %w", err)
	}

	offset := (opts.Page - 1) * opts.Limit
	nodes, err := t.graphs.GetNodes(ctx, graph.ID, opts.NodeType, opts.Limit, offset)
	if err != nil {
		return GraphView{}, fmt.Errorf("get graph nodes: %w", err)
	}

	total, err := t.graphs.CountNodes(ctx, graph.ID, opts.NodeType)
	if err != nil {
		return GraphView{}, fmt.Errorf("count graph nodes: %w", err)
	}

	// edges are not paginated; only the current node page is enriched to
	// bound per-request cost
	edges, err := t.graphs.GetEdges(ctx, graph.ID)
	if err != nil {
		return GraphView{}, fmt.Errorf("get graph edges: %w", err)
	}

	addresses := make([]string, 0, len(nodes))
	for _, node := range nodes {
		addresses = append(addresses, node.WalletAddress)
	}
	enr, err := t.loadEnrichment(ctx, addresses, true, true)
	if err != nil {
		return GraphView{}, err
	}

	nodeViews := make([]NodeView, 0, len(nodes))
	for _, node := range nodes {
		nodeViews = append(nodeViews, buildNodeView(node, enr, true, true))
	}

	id := graph.ID
	pagination := pageInfo(opts.Page, opts.Limit, total)
	return GraphView{
		ID:                &id,
		RootWalletAddress: graph.RootWalletAddress,
		CreatedAt:         graph.CreatedAt,
		RootWallet:        walletInfoOf(wallet),
		Nodes:             nodeViews,
		Edges:             edgeViewsOf(edges),
		Pagination:        &pagination,
	}, nil
}

// GetNodeDetail returns one node with its wallet, tags, computed risk and
// every edge touching it.
func (t *Tracer) GetNodeDetail(ctx context.Context, nodeID uint) (NodeDetail, error) {
	node, err := t.graphs.GetNode(ctx, nodeID)
	if err != nil {
		if errors.Is(err, repository.ErrNodeNotFound) {
			return NodeDetail{}, ErrNodeNotFound
		}
		return NodeDetail{}, fmt.Errorf("get node: %w", err)
	}

	enr, err := t.loadEnrichment(ctx, []string{node.WalletAddress}, true, true)
	if err != nil {
		return NodeDetail{}, err
	}

	edges, err := t.graphs.EdgesByEndpoint(ctx, node.GraphID, node.WalletAddress, repository.DirectionBoth, 0, 0)
	if err != nil {
		return NodeDetail{}, fmt.Errorf("get connected edges: %w", err)
	}

	tags := enr.tags[node.WalletAddress]
	score := risk.Score(tagTypesOf(tags))

	detail := NodeDetail{
		ID:             node.ID,
		GraphID:        node.GraphID,
		WalletAddress:  node.WalletAddress,
		NodeType:       node.NodeType,
		Tags:           tagViewsOf(tags),
		RiskScore:      score,
		SafetyLevel:    string(risk.LevelFor(score)),
		ConnectedEdges: edgeViewsOf(edges),
	}
	if wallet, ok := enr.wallets[node.WalletAddress]; ok {
		detail.Wallet = walletInfoOf(wallet)
	}

	return detail, nil
}

// GetNodeConnections pages through the edges touching a node, resolving the
// far side of each edge to its node, wallet and tag data. Each connection is
// annotated with its direction relative to the queried node. Edges whose far
// endpoint has no node row in the graph are still returned, with a nil
// connected node; the data model permits such edges.
func (t *Tracer) GetNodeConnections(ctx context.Context, nodeID uint, opts ConnectionOptions) (ConnectionList, error) {
	switch opts.Direction {
	case repository.DirectionIncoming, repository.DirectionOutgoing, repository.DirectionBoth:
	default:
		return ConnectionList{}, ErrInvalidDirection
	}
	if err := validatePage(opts.Page, opts.Limit, maxConnectionLimit); err != nil {
		return ConnectionList{}, err
	}

	node, err := t.graphs.GetNode(ctx, nodeID)
	if err != nil {
		if errors.Is(err, repository.ErrNodeNotFound) {
			return ConnectionList{}, ErrNodeNotFound
		}
		return ConnectionList{}, fmt.Errorf("get node: %w", err)
	}

	total, err := t.graphs.CountEdgesByEndpoint(ctx, node.GraphID, node.WalletAddress, opts.Direction)
	if err != nil {
		return ConnectionList{}, fmt.Errorf("count connections: %w", err)
	}

	offset := (opts.Page - 1) * opts.Limit
	edges, err := t.graphs.EdgesByEndpoint(ctx, node.GraphID, node.WalletAddress, opts.Direction, opts.Limit, offset)
	if err != nil {
		return ConnectionList{}, fmt.Errorf("get connections: %w", err)
	}

	graphNodes, err := t.graphs.GetNodes(ctx, node.GraphID, "", 0, 0)
	if err != nil {
		return ConnectionList{}, fmt.Errorf("get graph nodes: %w", err)
	}
	nodeByAddress := make(map[string]repository.GraphNode, len(graphNodes))
	for _, n := range graphNodes {
		nodeByAddress[n.WalletAddress] = n
	}

	farAddresses := make([]string, 0, len(edges))
	for _, edge := range edges {
		farAddresses = append(farAddresses, farSide(edge, node.WalletAddress))
	}
	enr, err := t.loadEnrichment(ctx, farAddresses, true, true)
	if err != nil {
		return ConnectionList{}, err
	}

	connections := make([]Connection, 0, len(edges))
	for _, edge := range edges {
		direction := repository.DirectionIncoming
		if edge.FromWalletAddress == node.WalletAddress {
			direction = repository.DirectionOutgoing
		}

		conn := Connection{
			Edge:      edgeViewOf(edge),
			Direction: direction,
		}
		if far, ok := nodeByAddress[farSide(edge, node.WalletAddress)]; ok {
			view := buildNodeView(far, enr, true, true)
			conn.Node = &view
		}
		connections = append(connections, conn)
	}

	return ConnectionList{
		Connections: connections,
		Pagination:  pageInfo(opts.Page, opts.Limit, total),
	}, nil
}

func farSide(edge repository.GraphEdge, address string) string {
	if edge.FromWalletAddress == address {
		return edge.ToWalletAddress
	}
	return edge.FromWalletAddress
}
