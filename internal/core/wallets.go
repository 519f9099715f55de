package core

import (
	"context"
	"errors"
	"fmt"

	"graphtrace/internal/repository"
	"graphtrace/pkg/addr"
	"graphtrace/pkg/risk"
)

// ApplyTag records a tag on a wallet, creating the wallet stub when it does
// not exist yet. For scam tags the supplied scam detail is upserted alongside
// the tag row.
func (t *Tracer) ApplyTag(ctx context.Context, msg TagMessage) (TagRecord, error) {
	if !addr.IsValid(msg.WalletAddress) {
		return TagRecord{}, ErrInvalidAddress
	}
	if !isKnownTagType(msg.TagType) {
		return TagRecord{}, ErrInvalidTagType
	}
	address := addr.Canonical(msg.WalletAddress)

	err := t.wallets.EnsureWallets(ctx, []repository.Wallet{{Address: address, Chain: defaultChain}})
	if err != nil {
		return TagRecord{}, fmt.Errorf("ensure wallet: %w", err)
	}

	tag, err := t.tags.CreateTag(ctx, repository.WalletTag{
		WalletAddress: address,
		TagType:       msg.TagType,
		AddedBy:       msg.AddedBy,
	})
	if err != nil {
		return TagRecord{}, fmt.Errorf("create tag: %w", err)
	}

	if msg.TagType == repository.TagScam && msg.ScamDetail != nil {
		detail := repository.ScamDetail{
			WalletAddress: address,
			Reason:        msg.ScamDetail.Reason,
			ScamLink:      msg.ScamDetail.ScamLink,
			TwitterHandle: msg.ScamDetail.TwitterHandle,
		}
		if err := t.tags.UpsertScamDetail(ctx, detail); err != nil {
			return TagRecord{}, fmt.Errorf("upsert scam detail: %w", err)
		}
	}

	t.logs.Infow("tag applied",
		"walletAddress", address,
		"tagType", msg.TagType)

	return TagRecord{
		ID:            tag.ID,
		WalletAddress: tag.WalletAddress,
		TagType:       tag.TagType,
		AddedBy:       tag.AddedBy,
		CreatedAt:     tag.CreatedAt,
	}, nil
}

// GetWalletProfile returns a wallet with its tags, computed risk, scam detail
// and graph presence. Every lookup bumps the wallet's search count; the
// returned profile reflects the bumped value.
func (t *Tracer) GetWalletProfile(ctx context.Context, address string) (WalletProfile, error) {
	if !addr.IsValid(address) {
		return WalletProfile{}, ErrInvalidAddress
	}
	canonical := addr.Canonical(address)

	wallet, err := t.wallets.GetWallet(ctx, canonical)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return WalletProfile{}, ErrWalletNotFound
		}
		return WalletProfile{}, fmt.Errorf("get wallet: %w", err)
	}

	if err := t.wallets.IncrementSearchCount(ctx, canonical); err != nil {
		return WalletProfile{}, fmt.Errorf("increment search count: %w", err)
	}

	tags, err := t.tags.GetTagsByAddresses(ctx, []string{canonical})
	if err != nil {
		return WalletProfile{}, fmt.Errorf("get wallet tags: %w", err)
	}
	score := risk.Score(tagTypesOf(tags))

	profile := WalletProfile{
		Address:     wallet.Address,
		Chain:       wallet.Chain,
		OwnerName:   wallet.OwnerName,
		SearchCount: wallet.SearchCount + 1,
		RiskScore:   score,
		SafetyLevel: string(risk.LevelFor(score)),
		Tags:        tagViewsOf(tags),
		CreatedAt:   wallet.CreatedAt,
		UpdatedAt:   wallet.UpdatedAt,
	}

	detail, err := t.tags.GetScamDetail(ctx, canonical)
	if err != nil {
		if !errors.Is(err, repository.ErrScamDetailNotFound) {
			return WalletProfile{}, fmt.Errorf("get scam detail: %w", err)
		}
	} else {
		profile.ScamDetail = &ScamInfo{
			Reason:        detail.Reason,
			ScamLink:      detail.ScamLink,
			TwitterHandle: detail.TwitterHandle,
		}
	}

	graphs, err := t.graphs.ListGraphs(ctx, canonical, 0, 0)
	if err != nil {
		return WalletProfile{}, fmt.Errorf("list wallet graphs: %w", err)
	}
	profile.GraphCount = len(graphs)
	profile.HasGraph = len(graphs) > 0

	return profile, nil
}

// SearchWallets matches wallets by address or owner name substring, enriched
// with tag-derived risk. An optional tag type filter keeps only wallets
// carrying that tag.
func (t *Tracer) SearchWallets(ctx context.Context, opts SearchOptions) ([]WalletSearchResult, error) {
	if err := validateWindow(opts.Limit, opts.Offset, maxSearchLimit); err != nil {
		return nil, err
	}
	if opts.TagType != "" && !isKnownTagType(opts.TagType) {
		return nil, ErrInvalidTagType
	}

	wallets, err := t.wallets.SearchWallets(ctx, opts.Term, opts.Chain, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("search wallets: %w", err)
	}

	addresses := make([]string, 0, len(wallets))
	for _, wallet := range wallets {
		addresses = append(addresses, wallet.Address)
	}
	enr, err := t.loadEnrichment(ctx, addresses, false, true)
	if err != nil {
		return nil, err
	}

	results := make([]WalletSearchResult, 0, len(wallets))
	for _, wallet := range wallets {
		tags := enr.tags[wallet.Address]
		if opts.TagType != "" && !hasTagType(tags, opts.TagType) {
			continue
		}
		score := risk.Score(tagTypesOf(tags))
		results = append(results, WalletSearchResult{
			Address:     wallet.Address,
			Chain:       wallet.Chain,
			OwnerName:   wallet.OwnerName,
			SearchCount: wallet.SearchCount,
			RiskScore:   score,
			SafetyLevel: string(risk.LevelFor(score)),
			Tags:        tagViewsOf(tags),
		})
	}

	return results, nil
}

func hasTagType(tags []repository.WalletTag, tagType string) bool {
	for _, tag := range tags {
		if tag.TagType == tagType {
			return true
		}
	}
	return false
}

// ListTags returns tag rows newest first, filtered by type, author or wallet,
// alongside the global per-type tag counts.
func (t *Tracer) ListTags(ctx context.Context, opts ListTagsOptions) (TagList, error) {
	if err := validateWindow(opts.Limit, opts.Offset, maxTagListLimit); err != nil {
		return TagList{}, err
	}
	if opts.TagType != "" && !isKnownTagType(opts.TagType) {
		return TagList{}, ErrInvalidTagType
	}

	filter := repository.TagFilter{
		TagType: opts.TagType,
		AddedBy: opts.AddedBy,
	}
	if opts.WalletAddress != "" {
		filter.WalletAddress = addr.Canonical(opts.WalletAddress)
	}

	rows, err := t.tags.ListTags(ctx, filter, opts.Limit, opts.Offset)
	if err != nil {
		return TagList{}, fmt.Errorf("list tags: %w", err)
	}

	distribution, err := t.stats.TagDistribution(ctx)
	if err != nil {
		return TagList{}, fmt.Errorf("tag distribution: %w", err)
	}

	records := make([]TagRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, TagRecord{
			ID:            row.ID,
			WalletAddress: row.WalletAddress,
			TagType:       row.TagType,
			AddedBy:       row.AddedBy,
			CreatedAt:     row.CreatedAt,
		})
	}

	return TagList{Tags: records, Statistics: distribution}, nil
}

// GetStats aggregates system-wide counts plus the risk distribution of tagged
// wallets. Wallets with no tags are counted as untagged rather than safe.
func (t *Tracer) GetStats(ctx context.Context) (StatsOverview, error) {
	overview := StatsOverview{}

	var err error
	if overview.TotalWallets, err = t.stats.CountWallets(ctx); err != nil {
		return StatsOverview{}, fmt.Errorf("count wallets: %w", err)
	}
	if overview.TotalGraphs, err = t.stats.CountGraphs(ctx); err != nil {
		return StatsOverview{}, fmt.Errorf("count graphs: %w", err)
	}
	if overview.TotalNodes, err = t.stats.CountAllNodes(ctx); err != nil {
		return StatsOverview{}, fmt.Errorf("count nodes: %w", err)
	}
	if overview.TotalEdges, err = t.stats.CountAllEdges(ctx); err != nil {
		return StatsOverview{}, fmt.Errorf("count edges: %w", err)
	}
	if overview.TotalScamDetails, err = t.stats.CountScamDetails(ctx); err != nil {
		return StatsOverview{}, fmt.Errorf("count scam details: %w", err)
	}
	if overview.ChainDistribution, err = t.stats.ChainDistribution(ctx); err != nil {
		return StatsOverview{}, fmt.Errorf("chain distribution: %w", err)
	}
	if overview.TagDistribution, err = t.stats.TagDistribution(ctx); err != nil {
		return StatsOverview{}, fmt.Errorf("tag distribution: %w", err)
	}

	allTags, err := t.stats.AllTags(ctx)
	if err != nil {
		return StatsOverview{}, fmt.Errorf("load tags: %w", err)
	}

	grouped := groupTagsByWallet(allTags)
	for _, tags := range grouped {
		score := risk.Score(tagTypesOf(tags))
		switch risk.LevelFor(score) {
		case risk.LevelSafe:
			overview.RiskDistribution.Safe++
		case risk.LevelCaution:
			overview.RiskDistribution.Caution++
		case risk.LevelDangerous:
			overview.RiskDistribution.Dangerous++
		}
	}
	overview.RiskDistribution.Untagged = overview.TotalWallets - int64(len(grouped))

	return overview, nil
}
