package handler

import (
	"context"
	"net/http"

	"graphtrace/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name GraphService . GraphService
type GraphService interface {
	CreateGraph(ctx context.Context, msg core.CreateGraphMessage) (core.GraphSummary, error)
	ReplaceGraph(ctx context.Context, msg core.CreateGraphMessage) (core.GraphSummary, error)
	AddToGraph(ctx context.Context, graphID uint, nodes []core.NodeInput, edges []core.EdgeInput) (core.BatchResult, error)
	GetGraph(ctx context.Context, graphID uint, opts core.GraphOptions) (core.GraphView, error)
	ListGraphs(ctx context.Context, opts core.ListGraphsOptions) ([]core.GraphSummary, error)
	GetGraphByRootWallet(ctx context.Context, address string, opts core.RootGraphOptions) (core.GraphView, error)
	GetNodeDetail(ctx context.Context, nodeID uint) (core.NodeDetail, error)
	GetNodeConnections(ctx context.Context, nodeID uint, opts core.ConnectionOptions) (core.ConnectionList, error)
	ApplyTag(ctx context.Context, msg core.TagMessage) (core.TagRecord, error)
	GetWalletProfile(ctx context.Context, address string) (core.WalletProfile, error)
	SearchWallets(ctx context.Context, opts core.SearchOptions) ([]core.WalletSearchResult, error)
	ListTags(ctx context.Context, opts core.ListTagsOptions) (core.TagList, error)
	GetStats(ctx context.Context) (core.StatsOverview, error)
}
