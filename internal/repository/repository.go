package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"graphtrace/internal/db"
)

var ErrWalletNotFound error = errors.New("wallet not found")
var ErrGraphNotFound error = errors.New("graph not found")
var ErrNodeNotFound error = errors.New("node not found")
var ErrScamDetailNotFound error = errors.New("scam detail not found")

// Edge direction filters relative to a wallet address.
const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
	DirectionBoth     = "both"
)

// GraphRepository is the tabular view of wallets, tags, scam details and the
// graph tables. It owns every translation from store-level ErrNotFound to the
// domain's not-found errors.
type GraphRepository struct {
	db Database
}

func NewGraphRepository(db Database) *GraphRepository {
	return &GraphRepository{
		db: db,
	}
}

func (r *GraphRepository) MigrateTables() error {
	err := r.db.MigrateTables(
		&Wallet{},
		&WalletTag{},
		&ScamDetail{},
		&WalletGraph{},
		&GraphNode{},
		&GraphEdge{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// EnsureWallets creates stub rows for any of the given wallets that do not
// exist yet. Existing rows are left untouched, so the call is idempotent and
// safe under concurrent writers.
func (r *GraphRepository) EnsureWallets(ctx context.Context, wallets []Wallet) error {
	if len(wallets) == 0 {
		return nil
	}

	_, err := r.db.CreateIgnoreConflicts(ctx, &wallets, "address")
	if err != nil {
		return fmt.Errorf("ensure wallets: %w", err)
	}

	return nil
}

func (r *GraphRepository) GetWallet(ctx context.Context, address string) (Wallet, error) {
	var wallet Wallet

	err := r.db.GetOneBy(ctx, "address", address, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by address: %w", err)
	}

	return wallet, nil
}

func (r *GraphRepository) GetWalletsByAddresses(ctx context.Context, addresses []string) ([]Wallet, error) {
	wallets := []Wallet{}
	if len(addresses) == 0 {
		return wallets, nil
	}

	err := r.db.GetAllBy(ctx, "address", addresses, &wallets)
	if err != nil {
		return nil, fmt.Errorf("get wallets by addresses: %w", err)
	}

	return wallets, nil
}

func (r *GraphRepository) IncrementSearchCount(ctx context.Context, address string) error {
	err := r.db.IncrementColumn(ctx, &Wallet{}, map[string]any{"address": address}, "search_count")
	if err != nil {
		return fmt.Errorf("increment search count: %w", err)
	}
	return nil
}

func (r *GraphRepository) SearchWallets(ctx context.Context, term, chain string, limit, offset int) ([]Wallet, error) {
	where := map[string]any{}
	if chain != "" {
		where["chain"] = chain
	}

	wallets := []Wallet{}
	err := r.db.SearchLike(ctx, &wallets, []string{"address", "owner_name"}, term, where, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search wallets: %w", err)
	}

	return wallets, nil
}

func (r *GraphRepository) CreateTag(ctx context.Context, tag WalletTag) (WalletTag, error) {
	if err := r.db.Create(ctx, &tag); err != nil {
		return WalletTag{}, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (r *GraphRepository) GetTagsByAddresses(ctx context.Context, addresses []string) ([]WalletTag, error) {
	tags := []WalletTag{}
	if len(addresses) == 0 {
		return tags, nil
	}

	err := r.db.GetAllBy(ctx, "wallet_address", addresses, &tags)
	if err != nil {
		return nil, fmt.Errorf("get tags by addresses: %w", err)
	}

	return tags, nil
}

func (r *GraphRepository) ListTags(ctx context.Context, filter TagFilter, limit, offset int) ([]WalletTag, error) {
	where := map[string]any{}
	if filter.TagType != "" {
		where["tag_type"] = filter.TagType
	}
	if filter.AddedBy != "" {
		where["added_by"] = filter.AddedBy
	}
	if filter.WalletAddress != "" {
		where["wallet_address"] = filter.WalletAddress
	}

	tags := []WalletTag{}
	err := r.db.Find(ctx, &tags, where, "created_at DESC", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

func (r *GraphRepository) AllTags(ctx context.Context) ([]WalletTag, error) {
	tags := []WalletTag{}
	if err := r.db.Find(ctx, &tags, nil, "", 0, 0); err != nil {
		return nil, fmt.Errorf("load all tags: %w", err)
	}
	return tags, nil
}

func (r *GraphRepository) UpsertScamDetail(ctx context.Context, detail ScamDetail) error {
	err := r.db.Upsert(ctx, &detail,
		[]string{"wallet_address"},
		[]string{"twitter_handle", "reason", "scam_link"})
	if err != nil {
		return fmt.Errorf("upsert scam detail: %w", err)
	}
	return nil
}

func (r *GraphRepository) GetScamDetail(ctx context.Context, address string) (ScamDetail, error) {
	var detail ScamDetail

	err := r.db.GetOneBy(ctx, "wallet_address", address, &detail)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ScamDetail{}, ErrScamDetailNotFound
		}
		return ScamDetail{}, fmt.Errorf("get scam detail: %w", err)
	}

	return detail, nil
}

func (r *GraphRepository) CreateGraph(ctx context.Context, graph *WalletGraph) error {
	if err := r.db.Create(ctx, graph); err != nil {
		return fmt.Errorf("create graph: %w", err)
	}
	return nil
}

func (r *GraphRepository) GetGraph(ctx context.Context, id uint) (WalletGraph, error) {
	var graph WalletGraph

	err := r.db.GetOneBy(ctx, "id", id, &graph)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return WalletGraph{}, ErrGraphNotFound
		}
		return WalletGraph{}, fmt.Errorf("get graph by id: %w", err)
	}

	return graph, nil
}

func (r *GraphRepository) GetGraphByRoot(ctx context.Context, address string) (WalletGraph, error) {
	var graph WalletGraph

	err := r.db.GetOneBy(ctx, "root_wallet_address", address, &graph)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return WalletGraph{}, ErrGraphNotFound
		}
		return WalletGraph{}, fmt.Errorf("get graph by root wallet: %w", err)
	}

	return graph, nil
}

// ListGraphs returns graphs newest first, optionally filtered by root wallet.
func (r *GraphRepository) ListGraphs(ctx context.Context, rootAddress string, limit, offset int) ([]WalletGraph, error) {
	where := map[string]any{}
	if rootAddress != "" {
		where["root_wallet_address"] = rootAddress
	}

	graphs := []WalletGraph{}
	err := r.db.Find(ctx, &graphs, where, "created_at DESC", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}

	return graphs, nil
}

// InsertNodes appends node rows, skipping any (graph, wallet) pair that
// already exists. Returns how many rows were actually inserted.
func (r *GraphRepository) InsertNodes(ctx context.Context, nodes []GraphNode) (int64, error) {
	if len(nodes) == 0 {
		return 0, nil
	}

	inserted, err := r.db.CreateIgnoreConflicts(ctx, &nodes, "graph_id", "wallet_address")
	if err != nil {
		return 0, fmt.Errorf("insert nodes: %w", err)
	}

	return inserted, nil
}

func (r *GraphRepository) GetNodes(ctx context.Context, graphID uint, nodeType string, limit, offset int) ([]GraphNode, error) {
	where := map[string]any{"graph_id": graphID}
	if nodeType != "" {
		where["node_type"] = nodeType
	}

	nodes := []GraphNode{}
	err := r.db.Find(ctx, &nodes, where, "id", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get nodes: %w", err)
	}

	return nodes, nil
}

func (r *GraphRepository) CountNodes(ctx context.Context, graphID uint, nodeType string) (int64, error) {
	where := map[string]any{"graph_id": graphID}
	if nodeType != "" {
		where["node_type"] = nodeType
	}

	count, err := r.db.CountWhere(ctx, &GraphNode{}, where)
	if err != nil {
		return 0, fmt.Errorf("count nodes: %w", err)
	}

	return count, nil
}

func (r *GraphRepository) GetNode(ctx context.Context, nodeID uint) (GraphNode, error) {
	var node GraphNode

	err := r.db.GetOneBy(ctx, "id", nodeID, &node)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return GraphNode{}, ErrNodeNotFound
		}
		return GraphNode{}, fmt.Errorf("get node by id: %w", err)
	}

	return node, nil
}

// InsertEdges appends edge rows unconditionally; multiple edges between the
// same ordered pair are distinct transactions.
func (r *GraphRepository) InsertEdges(ctx context.Context, edges []GraphEdge) error {
	if len(edges) == 0 {
		return nil
	}

	if err := r.db.Create(ctx, &edges); err != nil {
		return fmt.Errorf("insert edges: %w", err)
	}

	return nil
}

func (r *GraphRepository) GetEdges(ctx context.Context, graphID uint) ([]GraphEdge, error) {
	edges := []GraphEdge{}
	err := r.db.Find(ctx, &edges, map[string]any{"graph_id": graphID}, "id", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("get edges: %w", err)
	}

	return edges, nil
}

func (r *GraphRepository) CountEdges(ctx context.Context, graphID uint) (int64, error) {
	count, err := r.db.CountWhere(ctx, &GraphEdge{}, map[string]any{"graph_id": graphID})
	if err != nil {
		return 0, fmt.Errorf("count edges: %w", err)
	}
	return count, nil
}

// EdgesByEndpoint returns the paginated edge set touching address within a
// graph. For "both" the incoming and outgoing sets are merged in id order
// before pagination, since the generic store cannot express the disjunction.
func (r *GraphRepository) EdgesByEndpoint(ctx context.Context, graphID uint, address, direction string, limit, offset int) ([]GraphEdge, error) {
	switch direction {
	case DirectionIncoming:
		edges := []GraphEdge{}
		where := map[string]any{"graph_id": graphID, "to_wallet_address": address}
		if err := r.db.Find(ctx, &edges, where, "id", limit, offset); err != nil {
			return nil, fmt.Errorf("get incoming edges: %w", err)
		}
		return edges, nil
	case DirectionOutgoing:
		edges := []GraphEdge{}
		where := map[string]any{"graph_id": graphID, "from_wallet_address": address}
		if err := r.db.Find(ctx, &edges, where, "id", limit, offset); err != nil {
			return nil, fmt.Errorf("get outgoing edges: %w", err)
		}
		return edges, nil
	case DirectionBoth:
		merged, err := r.edgesTouching(ctx, graphID, address)
		if err != nil {
			return nil, err
		}
		if offset >= len(merged) {
			return []GraphEdge{}, nil
		}
		end := offset + limit
		if limit <= 0 || end > len(merged) {
			end = len(merged)
		}
		return merged[offset:end], nil
	default:
		return nil, fmt.Errorf("unknown edge direction %q", direction)
	}
}

func (r *GraphRepository) CountEdgesByEndpoint(ctx context.Context, graphID uint, address, direction string) (int64, error) {
	switch direction {
	case DirectionIncoming:
		count, err := r.db.CountWhere(ctx, &GraphEdge{}, map[string]any{"graph_id": graphID, "to_wallet_address": address})
		if err != nil {
			return 0, fmt.Errorf("count incoming edges: %w", err)
		}
		return count, nil
	case DirectionOutgoing:
		count, err := r.db.CountWhere(ctx, &GraphEdge{}, map[string]any{"graph_id": graphID, "from_wallet_address": address})
		if err != nil {
			return 0, fmt.Errorf("count outgoing edges: %w", err)
		}
		return count, nil
	case DirectionBoth:
		merged, err := r.edgesTouching(ctx, graphID, address)
		if err != nil {
			return 0, err
		}
		return int64(len(merged)), nil
	default:
		return 0, fmt.Errorf("unknown edge direction %q", direction)
	}
}

// edgesTouching merges incoming and outgoing edges for an address, dropping
// self-loop duplicates, ordered by edge id.
func (r *GraphRepository) edgesTouching(ctx context.Context, graphID uint, address string) ([]GraphEdge, error) {
	incoming := []GraphEdge{}
	if err := r.db.Find(ctx, &incoming, map[string]any{"graph_id": graphID, "to_wallet_address": address}, "id", 0, 0); err != nil {
		return nil, fmt.Errorf("get incoming edges: %w", err)
	}

	outgoing := []GraphEdge{}
	if err := r.db.Find(ctx, &outgoing, map[string]any{"graph_id": graphID, "from_wallet_address": address}, "id", 0, 0); err != nil {
		return nil, fmt.Errorf("get outgoing edges: %w", err)
	}

	seen := make(map[uint]struct{}, len(incoming)+len(outgoing))
	merged := make([]GraphEdge, 0, len(incoming)+len(outgoing))
	for _, edge := range append(outgoing, incoming...) {
		if _, ok := seen[edge.ID]; ok {
			continue
		}
		seen[edge.ID] = struct{}{}
		merged = append(merged, edge)
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].ID < merged[j].ID })
	return merged, nil
}

// DeleteGraphData removes all edges then all nodes of a graph, respecting the
// edge→node dependency. The graph row itself is kept.
func (r *GraphRepository) DeleteGraphData(ctx context.Context, graphID uint) error {
	if err := r.db.DeleteWhere(ctx, &GraphEdge{}, map[string]any{"graph_id": graphID}); err != nil {
		return fmt.Errorf("delete graph edges: %w", err)
	}
	if err := r.db.DeleteWhere(ctx, &GraphNode{}, map[string]any{"graph_id": graphID}); err != nil {
		return fmt.Errorf("delete graph nodes: %w", err)
	}
	return nil
}

func (r *GraphRepository) CountWallets(ctx context.Context) (int64, error) {
	return r.countAll(ctx, &Wallet{})
}

func (r *GraphRepository) CountGraphs(ctx context.Context) (int64, error) {
	return r.countAll(ctx, &WalletGraph{})
}

func (r *GraphRepository) CountAllNodes(ctx context.Context) (int64, error) {
	return r.countAll(ctx, &GraphNode{})
}

func (r *GraphRepository) CountAllEdges(ctx context.Context) (int64, error) {
	return r.countAll(ctx, &GraphEdge{})
}

func (r *GraphRepository) CountScamDetails(ctx context.Context) (int64, error) {
	return r.countAll(ctx, &ScamDetail{})
}

func (r *GraphRepository) countAll(ctx context.Context, model any) (int64, error) {
	count, err := r.db.CountWhere(ctx, model, nil)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

func (r *GraphRepository) ChainDistribution(ctx context.Context) (map[string]int64, error) {
	counts, err := r.db.CountGroupBy(ctx, &Wallet{}, "chain")
	if err != nil {
		return nil, fmt.Errorf("chain distribution: %w", err)
	}
	return counts, nil
}

func (r *GraphRepository) TagDistribution(ctx context.Context) (map[string]int64, error) {
	counts, err := r.db.CountGroupBy(ctx, &WalletTag{}, "tag_type")
	if err != nil {
		return nil, fmt.Errorf("tag distribution: %w", err)
	}
	return counts, nil
}
