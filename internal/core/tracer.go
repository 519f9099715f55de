package core

import (
	"errors"

	"graphtrace/internal/repository"

	"go.uber.org/zap"
)

var ErrInvalidAddress error = errors.New("invalid wallet address")
var ErrWalletNotFound error = errors.New("wallet not found")
var ErrGraphNotFound error = errors.New("graph not found")
var ErrNodeNotFound error = errors.New("node not found")
var ErrInvalidPagination error = errors.New("invalid pagination parameters")
var ErrInvalidDirection error = errors.New("invalid direction parameter")
var ErrInvalidTagType error = errors.New("invalid tag type")

const (
	defaultChain    = "ethereum"
	defaultNodeType = "wallet"
)

// Per-operation pagination bounds.
const (
	maxGraphListLimit  = 50
	maxNodePageLimit   = 100
	maxConnectionLimit = 50
	maxTagListLimit    = 100
	maxSearchLimit     = 50
)

// Tracer assembles and queries wallet transaction graphs on top of the
// tabular store. It holds no state beyond its collaborators; every operation
// is request-scoped.
type Tracer struct {
	logs    *zap.SugaredLogger
	wallets WalletStore
	tags    TagStore
	graphs  GraphStore
	stats   StatsStore
}

func NewTracer(logger *zap.SugaredLogger, wallets WalletStore, tags TagStore, graphs GraphStore, stats StatsStore) *Tracer {
	return &Tracer{
		logs:    logger,
		wallets: wallets,
		tags:    tags,
		graphs:  graphs,
		stats:   stats,
	}
}

func validatePage(page, limit, maxLimit int) error {
	if page < 1 || limit < 1 || limit > maxLimit {
		return ErrInvalidPagination
	}
	return nil
}

func validateWindow(limit, offset, maxLimit int) error {
	if limit < 1 || limit > maxLimit || offset < 0 {
		return ErrInvalidPagination
	}
	return nil
}

func pageInfo(page, limit int, total int64) PageInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PageInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func walletInfoOf(wallet repository.Wallet) *WalletInfo {
	return &WalletInfo{
		Chain:       wallet.Chain,
		OwnerName:   wallet.OwnerName,
		SearchCount: wallet.SearchCount,
		CreatedAt:   wallet.CreatedAt,
		UpdatedAt:   wallet.UpdatedAt,
	}
}

func tagViewsOf(tags []repository.WalletTag) []TagView {
	views := make([]TagView, 0, len(tags))
	for _, tag := range tags {
		views = append(views, TagView{
			Type:      tag.TagType,
			AddedBy:   tag.AddedBy,
			CreatedAt: tag.CreatedAt,
		})
	}
	return views
}

func tagTypesOf(tags []repository.WalletTag) []string {
	types := make([]string, 0, len(tags))
	for _, tag := range tags {
		types = append(types, tag.TagType)
	}
	return types
}

func edgeViewOf(edge repository.GraphEdge) EdgeView {
	return EdgeView{
		ID:                edge.ID,
		FromWalletAddress: edge.FromWalletAddress,
		ToWalletAddress:   edge.ToWalletAddress,
		TransactionHash:   edge.TransactionHash,
		Amount:            edge.Amount,
		Timestamp:         edge.Timestamp,
	}
}

func edgeViewsOf(edges []repository.GraphEdge) []EdgeView {
	views := make([]EdgeView, 0, len(edges))
	for _, edge := range edges {
		views = append(views, edgeViewOf(edge))
	}
	return views
}

func groupTagsByWallet(tags []repository.WalletTag) map[string][]repository.WalletTag {
	grouped := make(map[string][]repository.WalletTag)
	for _, tag := range tags {
		grouped[tag.WalletAddress] = append(grouped[tag.WalletAddress], tag)
	}
	return grouped
}

func isKnownTagType(tagType string) bool {
	for _, t := range repository.TagTypes {
		if t == tagType {
			return true
		}
	}
	return false
}
