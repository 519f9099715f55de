package core

import (
	"context"

	"graphtrace/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletStore . WalletStore
type WalletStore interface {
	EnsureWallets(ctx context.Context, wallets []repository.Wallet) error
	GetWallet(ctx context.Context, address string) (repository.Wallet, error)
	GetWalletsByAddresses(ctx context.Context, addresses []string) ([]repository.Wallet, error)
	IncrementSearchCount(ctx context.Context, address string) error
	SearchWallets(ctx context.Context, term, chain string, limit, offset int) ([]repository.Wallet, error)
}

//counterfeiter:generate -o fake -fake-name TagStore . TagStore
type TagStore interface {
	CreateTag(ctx context.Context, tag repository.WalletTag) (repository.WalletTag, error)
	GetTagsByAddresses(ctx context.Context, addresses []string) ([]repository.WalletTag, error)
	ListTags(ctx context.Context, filter repository.TagFilter, limit, offset int) ([]repository.WalletTag, error)
	UpsertScamDetail(ctx context.Context, detail repository.ScamDetail) error
	GetScamDetail(ctx context.Context, address string) (repository.ScamDetail, error)
}

//counterfeiter:generate -o fake -fake-name GraphStore . GraphStore
type GraphStore interface {
	CreateGraph(ctx context.Context, graph *repository.WalletGraph) error
	GetGraph(ctx context.Context, id uint) (repository.WalletGraph, error)
	GetGraphByRoot(ctx context.Context, address string) (repository.WalletGraph, error)
	ListGraphs(ctx context.Context, rootAddress string, limit, offset int) ([]repository.WalletGraph, error)
	InsertNodes(ctx context.Context, nodes []repository.GraphNode) (int64, error)
	GetNodes(ctx context.Context, graphID uint, nodeType string, limit, offset int) ([]repository.GraphNode, error)
	CountNodes(ctx context.Context, graphID uint, nodeType string) (int64, error)
	GetNode(ctx context.Context, nodeID uint) (repository.GraphNode, error)
	InsertEdges(ctx context.Context, edges []repository.GraphEdge) error
	GetEdges(ctx context.Context, graphID uint) ([]repository.GraphEdge, error)
	CountEdges(ctx context.Context, graphID uint) (int64, error)
	EdgesByEndpoint(ctx context.Context, graphID uint, address, direction string, limit, offset int) ([]repository.GraphEdge, error)
	CountEdgesByEndpoint(ctx context.Context, graphID uint, address, direction string) (int64, error)
	DeleteGraphData(ctx context.Context, graphID uint) error
}

//counterfeiter:generate -o fake -fake-name StatsStore . StatsStore
type StatsStore interface {
	CountWallets(ctx context.Context) (int64, error)
	CountGraphs(ctx context.Context) (int64, error)
	CountAllNodes(ctx context.Context) (int64, error)
	CountAllEdges(ctx context.Context) (int64, error)
	CountScamDetails(ctx context.Context) (int64, error)
	ChainDistribution(ctx context.Context) (map[string]int64, error)
	TagDistribution(ctx context.Context) (map[string]int64, error)
	AllTags(ctx context.Context) ([]repository.WalletTag, error)
}
