package core_test

import (
	"context"
	"errors"

	"graphtrace/internal/core"
	"graphtrace/internal/core/fake"
	"graphtrace/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracer wallet operations", func() {
	var (
		tracer      *core.Tracer
		fakeWallets *fake.WalletStore
		fakeTags    *fake.TagStore
		fakeGraphs  *fake.GraphStore
		fakeStats   *fake.StatsStore
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeWallets = new(fake.WalletStore)
		fakeTags = new(fake.TagStore)
		fakeGraphs = new(fake.GraphStore)
		fakeStats = new(fake.StatsStore)
		tracer = core.NewTracer(zap.NewNop().Sugar(), fakeWallets, fakeTags, fakeGraphs, fakeStats)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("ApplyTag", func() {
		var (
			msg    core.TagMessage
			record core.TagRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.TagMessage{
				WalletAddress: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
				TagType:       "scam",
				ScamDetail:    &core.ScamInfo{Reason: "rug pull"},
			}
			fakeTags.CreateTagReturns(repository.WalletTag{ID: 9, WalletAddress: walletA, TagType: "scam"}, nil)
		})

		JustBeforeEach(func() {
			record, err = tracer.ApplyTag(ctx, msg)
		})

		When("a scam tag carries scam detail", func() {
			It("should create the tag against the canonical address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(9)))

				_, tag := fakeTags.CreateTagArgsForCall(0)
				Expect(tag.WalletAddress).To(Equal(walletA))
				Expect(tag.TagType).To(Equal("scam"))
			})

			It("should ensure the wallet stub first", func() {
				Expect(fakeWallets.EnsureWalletsCallCount()).To(Equal(1))
				_, stubs := fakeWallets.EnsureWalletsArgsForCall(0)
				Expect(stubs[0].Address).To(Equal(walletA))
			})

			It("should upsert the scam detail", func() {
				Expect(fakeTags.UpsertScamDetailCallCount()).To(Equal(1))
				_, detail := fakeTags.UpsertScamDetailArgsForCall(0)
				Expect(detail.WalletAddress).To(Equal(walletA))
				Expect(detail.Reason).To(Equal("rug pull"))
			})
		})

		When("a non-scam tag carries scam detail", func() {
			BeforeEach(func() {
				msg.TagType = "otc"
				fakeTags.CreateTagReturns(repository.WalletTag{ID: 10, WalletAddress: walletA, TagType: "otc"}, nil)
			})

			It("should ignore the scam detail", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeTags.UpsertScamDetailCallCount()).To(Equal(0))
			})
		})

		When("the tag type is unknown", func() {
			BeforeEach(func() {
				msg.TagType = "suspicious"
			})

			It("should return ErrInvalidTagType", func() {
				Expect(err).To(MatchError(core.ErrInvalidTagType))
				Expect(fakeTags.CreateTagCallCount()).To(Equal(0))
			})
		})

		When("the wallet address is invalid", func() {
			BeforeEach(func() {
				msg.WalletAddress = "nope"
			})

			It("should return ErrInvalidAddress", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
			})
		})
	})

	Describe("GetWalletProfile", func() {
		var (
			profile core.WalletProfile
			err     error
		)

		BeforeEach(func() {
			fakeWallets.GetWalletReturns(repository.Wallet{Address: walletA, Chain: "ethereum", SearchCount: 3}, nil)
			fakeTags.GetTagsByAddressesReturns([]repository.WalletTag{
				{WalletAddress: walletA, TagType: "scam"},
			}, nil)
			fakeTags.GetScamDetailReturns(repository.ScamDetail{WalletAddress: walletA, Reason: "rug pull"}, nil)
			fakeGraphs.ListGraphsReturns([]repository.WalletGraph{{ID: 1, RootWalletAddress: walletA}}, nil)
		})

		JustBeforeEach(func() {
			profile, err = tracer.GetWalletProfile(ctx, walletA)
		})

		It("should return the enriched profile with a bumped search count", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.SearchCount).To(Equal(4))
			Expect(profile.RiskScore).To(Equal(80.0))
			Expect(profile.SafetyLevel).To(Equal("dangerous"))
			Expect(profile.ScamDetail).NotTo(BeNil())
			Expect(profile.ScamDetail.Reason).To(Equal("rug pull"))
			Expect(profile.GraphCount).To(Equal(1))
			Expect(profile.HasGraph).To(BeTrue())

			Expect(fakeWallets.IncrementSearchCountCallCount()).To(Equal(1))
		})

		When("the wallet has no scam detail", func() {
			BeforeEach(func() {
				fakeTags.GetScamDetailReturns(repository.ScamDetail{}, repository.ErrScamDetailNotFound)
			})

			It("should leave the scam detail nil", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(profile.ScamDetail).To(BeNil())
			})
		})

		When("the wallet does not exist", func() {
			BeforeEach(func() {
				fakeWallets.GetWalletReturns(repository.Wallet{}, repository.ErrWalletNotFound)
			})

			It("should return ErrWalletNotFound", func() {
				Expect(err).To(MatchError(core.ErrWalletNotFound))
				Expect(fakeWallets.IncrementSearchCountCallCount()).To(Equal(0))
			})
		})
	})

	Describe("SearchWallets", func() {
		var (
			results []core.WalletSearchResult
			opts    core.SearchOptions
			err     error
		)

		BeforeEach(func() {
			opts = core.SearchOptions{Term: "binance", Limit: 10}
			fakeWallets.SearchWalletsReturns([]repository.Wallet{
				{Address: walletA, Chain: "ethereum"},
				{Address: walletB, Chain: "ethereum"},
			}, nil)
			fakeTags.GetTagsByAddressesReturns([]repository.WalletTag{
				{WalletAddress: walletA, TagType: "scam"},
			}, nil)
		})

		JustBeforeEach(func() {
			results, err = tracer.SearchWallets(ctx, opts)
		})

		It("should enrich every hit with its risk", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].RiskScore).To(Equal(80.0))
			Expect(results[0].SafetyLevel).To(Equal("dangerous"))
			Expect(results[1].RiskScore).To(Equal(0.0))
		})

		When("a tag type filter is set", func() {
			BeforeEach(func() {
				opts.TagType = "scam"
			})

			It("should only keep wallets carrying the tag", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(results[0].Address).To(Equal(walletA))
			})
		})

		When("the tag type filter is unknown", func() {
			BeforeEach(func() {
				opts.TagType = "suspicious"
			})

			It("should return ErrInvalidTagType", func() {
				Expect(err).To(MatchError(core.ErrInvalidTagType))
			})
		})

		When("the limit is out of range", func() {
			BeforeEach(func() {
				opts.Limit = 0
			})

			It("should return ErrInvalidPagination", func() {
				Expect(err).To(MatchError(core.ErrInvalidPagination))
				Expect(fakeWallets.SearchWalletsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ListTags", func() {
		var (
			list core.TagList
			opts core.ListTagsOptions
			err  error
		)

		BeforeEach(func() {
			opts = core.ListTagsOptions{
				TagType:       "scam",
				WalletAddress: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
				Limit:         10,
			}
			fakeTags.ListTagsReturns([]repository.WalletTag{
				{ID: 1, WalletAddress: walletA, TagType: "scam"},
			}, nil)
			fakeStats.TagDistributionReturns(map[string]int64{"scam": 4, "otc": 2}, nil)
		})

		JustBeforeEach(func() {
			list, err = tracer.ListTags(ctx, opts)
		})

		It("should pass the canonical wallet filter to the store", func() {
			Expect(err).NotTo(HaveOccurred())

			_, filter, limit, offset := fakeTags.ListTagsArgsForCall(0)
			Expect(filter.WalletAddress).To(Equal(walletA))
			Expect(filter.TagType).To(Equal("scam"))
			Expect(limit).To(Equal(10))
			Expect(offset).To(Equal(0))
		})

		It("should return tag rows with the global distribution", func() {
			Expect(list.Tags).To(HaveLen(1))
			Expect(list.Statistics).To(Equal(map[string]int64{"scam": 4, "otc": 2}))
		})

		When("the tag type filter is unknown", func() {
			BeforeEach(func() {
				opts.TagType = "suspicious"
			})

			It("should return ErrInvalidTagType", func() {
				Expect(err).To(MatchError(core.ErrInvalidTagType))
			})
		})
	})

	Describe("GetStats", func() {
		var (
			overview core.StatsOverview
			err      error
		)

		BeforeEach(func() {
			fakeStats.CountWalletsReturns(5, nil)
			fakeStats.CountGraphsReturns(2, nil)
			fakeStats.CountAllNodesReturns(10, nil)
			fakeStats.CountAllEdgesReturns(12, nil)
			fakeStats.CountScamDetailsReturns(1, nil)
			fakeStats.ChainDistributionReturns(map[string]int64{"ethereum": 5}, nil)
			fakeStats.TagDistributionReturns(map[string]int64{"scam": 1, "kol": 1, "otc": 1}, nil)
			fakeStats.AllTagsReturns([]repository.WalletTag{
				{WalletAddress: walletA, TagType: "scam"},
				{WalletAddress: walletB, TagType: "kol"},
				{WalletAddress: walletB, TagType: "otc"},
			}, nil)
		})

		JustBeforeEach(func() {
			overview, err = tracer.GetStats(ctx)
		})

		It("should aggregate totals and distributions", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(overview.TotalWallets).To(Equal(int64(5)))
			Expect(overview.TotalGraphs).To(Equal(int64(2)))
			Expect(overview.TotalNodes).To(Equal(int64(10)))
			Expect(overview.TotalEdges).To(Equal(int64(12)))
			Expect(overview.TotalScamDetails).To(Equal(int64(1)))
			Expect(overview.ChainDistribution).To(Equal(map[string]int64{"ethereum": 5}))
		})

		It("should bucket tagged wallets by their mean risk", func() {
			// walletA scores 80, walletB scores (10+30)/2 = 20
			Expect(overview.RiskDistribution.Dangerous).To(Equal(int64(1)))
			Expect(overview.RiskDistribution.Safe).To(Equal(int64(1)))
			Expect(overview.RiskDistribution.Caution).To(Equal(int64(0)))
			Expect(overview.RiskDistribution.Untagged).To(Equal(int64(3)))
		})

		When("a count fails", func() {
			BeforeEach(func() {
				fakeStats.CountGraphsReturns(0, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("count graphs: fake error"))
			})
		})
	})
})
