package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// NodeInput describes a node to insert into a graph. Chain and OwnerName are
// only used when the referenced wallet does not exist yet.
type NodeInput struct {
	WalletAddress string `json:"walletAddress"`
	NodeType      string `json:"nodeType"`
	Chain         string `json:"chain"`
	OwnerName     string `json:"ownerName"`
}

// EdgeInput describes a directed transfer to insert into a graph. Amount is a
// decimal string; binary floating point is never used for amounts.
type EdgeInput struct {
	FromWalletAddress string     `json:"fromWalletAddress"`
	ToWalletAddress   string     `json:"toWalletAddress"`
	TransactionHash   string     `json:"transactionHash"`
	Amount            string     `json:"amount"`
	Timestamp         *time.Time `json:"timestamp"`
}

type CreateGraphMessage struct {
	RootWalletAddress string
	Nodes             []NodeInput
	Edges             []EdgeInput
}

// GraphSummary is the write-path result and the listing row. NodeCount and
// EdgeCount report rows actually present, which after a batch write may be
// fewer than the supplied inputs since invalid entries are skipped.
type GraphSummary struct {
	ID                uint        `json:"id"`
	RootWalletAddress string      `json:"rootWalletAddress"`
	CreatedAt         time.Time   `json:"createdAt"`
	NodeCount         int         `json:"nodeCount"`
	EdgeCount         int         `json:"edgeCount"`
	RootWallet        *WalletInfo `json:"rootWallet"`
}

// BatchResult reports a best-effort batch write: per-item failures are
// recorded in Errors and do not abort the batch.
type BatchResult struct {
	NodesAdded int      `json:"nodesAdded"`
	EdgesAdded int      `json:"edgesAdded"`
	Errors     []string `json:"errors"`
}

type WalletInfo struct {
	Chain       string    `json:"chain"`
	OwnerName   *string   `json:"ownerName"`
	SearchCount int       `json:"searchCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TagView struct {
	Type      string    `json:"type"`
	AddedBy   *string   `json:"addedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// NodeView is a node in an assembled graph view. Wallet, Tags, RiskScore and
// SafetyLevel are fixed optional fields: nil unless the corresponding
// enrichment was requested.
type NodeView struct {
	ID            uint       `json:"id"`
	WalletAddress string     `json:"walletAddress"`
	NodeType      string     `json:"nodeType"`
	Wallet        *WalletInfo `json:"wallet"`
	Tags          []TagView  `json:"tags"`
	RiskScore     *float64   `json:"riskScore"`
	SafetyLevel   *string    `json:"safetyLevel"`
}

type EdgeView struct {
	ID                uint                `json:"id"`
	FromWalletAddress string              `json:"fromWalletAddress"`
	ToWalletAddress   string              `json:"toWalletAddress"`
	TransactionHash   *string             `json:"transactionHash"`
	Amount            decimal.NullDecimal `json:"amount"`
	Timestamp         *time.Time          `json:"timestamp"`
}

// GraphStatistics aggregates an assembled view. The tag-derived fields are
// nil unless tags were included.
type GraphStatistics struct {
	TotalNodes       int            `json:"totalNodes"`
	TotalEdges       int            `json:"totalEdges"`
	NodeTypes        map[string]int `json:"nodeTypes"`
	TagDistribution  map[string]int `json:"tagDistribution,omitempty"`
	AverageRiskScore *float64       `json:"averageRiskScore,omitempty"`
	HighRiskNodes    *int           `json:"highRiskNodes,omitempty"`
}

type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// GraphView is the read-path graph assembly. ID is nil for the well-formed
// empty view returned when a wallet exists but has no graph yet.
type GraphView struct {
	ID                *uint            `json:"id"`
	RootWalletAddress string           `json:"rootWalletAddress"`
	CreatedAt         time.Time        `json:"createdAt"`
	RootWallet        *WalletInfo      `json:"rootWallet"`
	Nodes             []NodeView       `json:"nodes"`
	Edges             []EdgeView       `json:"edges"`
	Statistics        *GraphStatistics `json:"statistics,omitempty"`
	Pagination        *PageInfo        `json:"pagination,omitempty"`
}

type GraphOptions struct {
	IncludeWalletDetails bool
	IncludeTags          bool
}

type ListGraphsOptions struct {
	RootWalletAddress string
	Limit             int
	Offset            int
}

type RootGraphOptions struct {
	Page     int
	Limit    int
	NodeType string
}

type ConnectionOptions struct {
	Direction string
	Page      int
	Limit     int
}

// Connection annotates an edge with the far-side node and the direction of
// the edge relative to the queried node. Node is nil when the far endpoint
// has no node row in the graph, which the data model permits.
type Connection struct {
	Edge      EdgeView  `json:"edge"`
	Node      *NodeView `json:"connectedNode"`
	Direction string    `json:"direction"`
}

type ConnectionList struct {
	Connections []Connection `json:"connections"`
	Pagination  PageInfo     `json:"pagination"`
}

type NodeDetail struct {
	ID             uint        `json:"id"`
	GraphID        uint        `json:"graphId"`
	WalletAddress  string      `json:"walletAddress"`
	NodeType       string      `json:"nodeType"`
	Wallet         *WalletInfo `json:"wallet"`
	Tags           []TagView   `json:"tags"`
	RiskScore      float64     `json:"riskScore"`
	SafetyLevel    string      `json:"safetyLevel"`
	ConnectedEdges []EdgeView  `json:"connectedEdges"`
}

type ScamInfo struct {
	Reason        string  `json:"reason"`
	ScamLink      *string `json:"scamLink"`
	TwitterHandle *string `json:"twitterHandle"`
}

// TagMessage applies a tag to a wallet. ScamDetail is only consulted when the
// tag type is scam, in which case the wallet's scam detail row is upserted.
type TagMessage struct {
	WalletAddress string
	TagType       string
	AddedBy       *string
	ScamDetail    *ScamInfo
}

type TagRecord struct {
	ID            uint      `json:"id"`
	WalletAddress string    `json:"walletAddress"`
	TagType       string    `json:"tagType"`
	AddedBy       *string   `json:"addedBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ListTagsOptions struct {
	TagType       string
	AddedBy       string
	WalletAddress string
	Limit         int
	Offset        int
}

type TagList struct {
	Tags       []TagRecord      `json:"tags"`
	Statistics map[string]int64 `json:"statistics"`
}

type WalletProfile struct {
	Address     string    `json:"address"`
	Chain       string    `json:"chain"`
	OwnerName   *string   `json:"ownerName"`
	SearchCount int       `json:"searchCount"`
	RiskScore   float64   `json:"riskScore"`
	SafetyLevel string    `json:"safetyLevel"`
	Tags        []TagView `json:"tags"`
	ScamDetail  *ScamInfo `json:"scamDetails"`
	GraphCount  int       `json:"graphCount"`
	HasGraph    bool      `json:"hasGraphData"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WalletSearchResult is a search hit with its tag-derived risk, lighter than
// a full profile. Search hits never bump the wallet's search count.
type WalletSearchResult struct {
	Address     string    `json:"address"`
	Chain       string    `json:"chain"`
	OwnerName   *string   `json:"ownerName"`
	SearchCount int       `json:"searchCount"`
	RiskScore   float64   `json:"riskScore"`
	SafetyLevel string    `json:"safetyLevel"`
	Tags        []TagView `json:"tags"`
}

type SearchOptions struct {
	Term    string
	Chain   string
	TagType string
	Limit   int
	Offset  int
}

type RiskDistribution struct {
	Safe      int64 `json:"safe"`
	Caution   int64 `json:"caution"`
	Dangerous int64 `json:"dangerous"`
	Untagged  int64 `json:"untagged"`
}

type StatsOverview struct {
	TotalWallets      int64            `json:"totalWallets"`
	TotalGraphs       int64            `json:"totalGraphs"`
	TotalNodes        int64            `json:"totalNodes"`
	TotalEdges        int64            `json:"totalEdges"`
	TotalScamDetails  int64            `json:"totalScamDetails"`
	ChainDistribution map[string]int64 `json:"chainDistribution"`
	TagDistribution   map[string]int64 `json:"tagDistribution"`
	RiskDistribution  RiskDistribution `json:"riskDistribution"`
}
