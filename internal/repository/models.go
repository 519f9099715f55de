package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tag types a wallet can carry. Tags are the sole input to risk scoring.
const (
	TagScam      = "scam"
	TagOTC       = "otc"
	TagBlacklist = "blacklist"
	TagKOL       = "kol"
	TagHacker    = "hacker"
	TagF0User    = "f0_user"
)

// TagTypes lists every valid tag type.
var TagTypes = []string{TagScam, TagOTC, TagBlacklist, TagKOL, TagHacker, TagF0User}

// Wallet is an address tracked independently of any graph. Addresses are
// stored lower-cased; size 64 covers Ethereum, Tron and Solana formats.
type Wallet struct {
	Address     string  `gorm:"primaryKey;size:64"`
	OwnerName   *string `gorm:"type:text"`
	Chain       string  `gorm:"size:32;not null;default:ethereum"`
	SearchCount int     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WalletTag attaches a qualitative category to a wallet. AddedBy is nil for
// system-imported tags.
type WalletTag struct {
	ID            uint    `gorm:"primaryKey"`
	WalletAddress string  `gorm:"size:64;not null;index"`
	TagType       string  `gorm:"size:16;not null;index"`
	AddedBy       *string `gorm:"type:text"`
	CreatedAt     time.Time
}

// ScamDetail holds supporting evidence for a scam tag, at most one per wallet.
type ScamDetail struct {
	WalletAddress string  `gorm:"primaryKey;size:64"`
	TwitterHandle *string `gorm:"type:text"`
	Reason        string  `gorm:"type:text;not null"`
	ScamLink      *string `gorm:"type:text"`
	CreatedAt     time.Time
}

// WalletGraph is a transaction-flow graph rooted at one wallet.
type WalletGraph struct {
	ID                uint   `gorm:"primaryKey"`
	RootWalletAddress string `gorm:"size:64;not null;index"`
	CreatedAt         time.Time
}

// GraphNode records a wallet's membership in one graph. The composite unique
// index enforces the (graph, wallet) invariant at the storage layer, so
// concurrent duplicate inserts collapse to a single row.
type GraphNode struct {
	ID            uint   `gorm:"primaryKey"`
	GraphID       uint   `gorm:"not null;uniqueIndex:idx_graph_nodes_graph_wallet"`
	WalletAddress string `gorm:"size:64;not null;uniqueIndex:idx_graph_nodes_graph_wallet"`
	NodeType      string `gorm:"size:32;not null;default:wallet"`
}

// GraphEdge is a directed transfer between two wallet addresses within one
// graph. Endpoints are not required to have node rows in the same graph.
// Amount is carried as an exact decimal, never binary floating point.
type GraphEdge struct {
	ID                uint                `gorm:"primaryKey"`
	GraphID           uint                `gorm:"not null;index"`
	TransactionHash   *string             `gorm:"size:128"`
	FromWalletAddress string              `gorm:"size:64;not null;index"`
	ToWalletAddress   string              `gorm:"size:64;not null;index"`
	Amount            decimal.NullDecimal `gorm:"type:numeric(30,18)"`
	Timestamp         *time.Time
}

// TagFilter narrows tag listings. Zero-valued fields are ignored.
type TagFilter struct {
	TagType       string
	AddedBy       string
	WalletAddress string
}
