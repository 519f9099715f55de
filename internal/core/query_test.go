package core_test

import (
	"context"
	"errors"
	"time"

	"graphtrace/internal/core"
	"graphtrace/internal/core/fake"
	"graphtrace/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracer graph queries", func() {
	var (
		tracer      *core.Tracer
		fakeWallets *fake.WalletStore
		fakeTags    *fake.TagStore
		fakeGraphs  *fake.GraphStore
		fakeStats   *fake.StatsStore
		ctx         context.Context
		fakeErr     error
		now         time.Time
	)

	BeforeEach(func() {
		fakeWallets = new(fake.WalletStore)
		fakeTags = new(fake.TagStore)
		fakeGraphs = new(fake.GraphStore)
		fakeStats = new(fake.StatsStore)
		tracer = core.NewTracer(zap.NewNop().Sugar(), fakeWallets, fakeTags, fakeGraphs, fakeStats)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		now = time.Now()
	})

	Describe("GetGraph", func() {
		var (
			view core.GraphView
			opts core.GraphOptions
			err  error
		)

		BeforeEach(func() {
			opts = core.GraphOptions{}
			fakeGraphs.GetGraphReturns(repository.WalletGraph{ID: 1, RootWalletAddress: walletA, CreatedAt: now}, nil)
			fakeGraphs.GetNodesReturns([]repository.GraphNode{
				{ID: 10, GraphID: 1, WalletAddress: walletA, NodeType: "wallet"},
				{ID: 11, GraphID: 1, WalletAddress: walletB, NodeType: "wallet"},
			}, nil)
			fakeGraphs.GetEdgesReturns([]repository.GraphEdge{
				{ID: 20, GraphID: 1, FromWalletAddress: walletA, ToWalletAddress: walletB},
			}, nil)
			fakeWallets.GetWalletsByAddressesReturns([]repository.Wallet{
				{Address: walletA, Chain: "ethereum"},
			}, nil)
		})

		JustBeforeEach(func() {
			view, err = tracer.GetGraph(ctx, 1, opts)
		})

		When("no enrichment is requested", func() {
			It("should return nodes, edges and base statistics", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(*view.ID).To(Equal(uint(1)))
				Expect(view.Nodes).To(HaveLen(2))
				Expect(view.Edges).To(HaveLen(1))
				Expect(view.RootWallet).NotTo(BeNil())

				Expect(view.Statistics.TotalNodes).To(Equal(2))
				Expect(view.Statistics.TotalEdges).To(Equal(1))
				Expect(view.Statistics.NodeTypes).To(Equal(map[string]int{"wallet": 2}))
				Expect(view.Statistics.AverageRiskScore).To(BeNil())
				Expect(view.Statistics.HighRiskNodes).To(BeNil())
			})

			It("should not fetch tags", func() {
				Expect(fakeTags.GetTagsByAddressesCallCount()).To(Equal(0))
				Expect(view.Nodes[0].RiskScore).To(BeNil())
				Expect(view.Nodes[0].Tags).To(BeNil())
			})
		})

		When("tags are included", func() {
			BeforeEach(func() {
				opts.IncludeTags = true
				fakeTags.GetTagsByAddressesReturns([]repository.WalletTag{
					{ID: 1, WalletAddress: walletA, TagType: "scam", CreatedAt: now},
				}, nil)
			})

			It("should compute per-node risk from tags", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(*view.Nodes[0].RiskScore).To(Equal(80.0))
				Expect(*view.Nodes[0].SafetyLevel).To(Equal("dangerous"))
				Expect(*view.Nodes[1].RiskScore).To(Equal(0.0))
				Expect(*view.Nodes[1].SafetyLevel).To(Equal("safe"))
			})

			It("should aggregate tag statistics", func() {
				Expect(view.Statistics.TagDistribution).To(Equal(map[string]int{"scam": 1}))
				Expect(*view.Statistics.AverageRiskScore).To(Equal(40.0))
				Expect(*view.Statistics.HighRiskNodes).To(Equal(1))
			})
		})

		When("wallet details are included", func() {
			BeforeEach(func() {
				opts.IncludeWalletDetails = true
			})

			It("should attach wallet info to matching nodes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Nodes[0].Wallet).NotTo(BeNil())
				Expect(view.Nodes[0].Wallet.Chain).To(Equal("ethereum"))
				Expect(view.Nodes[1].Wallet).To(BeNil())
			})
		})

		When("the graph does not exist", func() {
			BeforeEach(func() {
				fakeGraphs.GetGraphReturns(repository.WalletGraph{}, repository.ErrGraphNotFound)
			})

			It("should return ErrGraphNotFound", func() {
				Expect(err).To(MatchError(core.ErrGraphNotFound))
			})
		})
	})

	Describe("ListGraphs", func() {
		var (
			summaries []core.GraphSummary
			opts      core.ListGraphsOptions
			err       error
		)

		BeforeEach(func() {
			opts = core.ListGraphsOptions{Limit: 10}
			fakeGraphs.ListGraphsReturns([]repository.WalletGraph{
				{ID: 1, RootWalletAddress: walletA, CreatedAt: now},
			}, nil)
			fakeGraphs.CountNodesReturns(3, nil)
			fakeGraphs.CountEdgesReturns(2, nil)
			fakeWallets.GetWalletsByAddressesReturns([]repository.Wallet{{Address: walletA, Chain: "ethereum"}}, nil)
		})

		JustBeforeEach(func() {
			summaries, err = tracer.ListGraphs(ctx, opts)
		})

		It("should attach counts and root wallet info", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(summaries).To(HaveLen(1))
			Expect(summaries[0].NodeCount).To(Equal(3))
			Expect(summaries[0].EdgeCount).To(Equal(2))
			Expect(summaries[0].RootWallet).NotTo(BeNil())
		})

		When("the limit exceeds the maximum", func() {
			BeforeEach(func() {
				opts.Limit = 51
			})

			It("should return ErrInvalidPagination", func() {
				Expect(err).To(MatchError(core.ErrInvalidPagination))
				Expect(fakeGraphs.ListGraphsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetGraphByRootWallet", func() {
		var (
			view core.GraphView
			opts core.RootGraphOptions
			err  error
		)

		BeforeEach(func() {
			opts = core.RootGraphOptions{Page: 1, Limit: 50}
			fakeWallets.GetWalletReturns(repository.Wallet{Address: walletA, Chain: "ethereum"}, nil)
		})

		JustBeforeEach(func() {
			view, err = tracer.GetGraphByRootWallet(ctx, walletA, opts)
		})

		When("the wallet exists but has no graph", func() {
			BeforeEach(func() {
				fakeGraphs.GetGraphByRootReturns(repository.WalletGraph{}, repository.ErrGraphNotFound)
			})

			It("should return a well-formed empty view, not an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.ID).To(BeNil())
				Expect(view.RootWalletAddress).To(Equal(walletA))
				Expect(view.RootWallet).NotTo(BeNil())
				Expect(view.Nodes).To(BeEmpty())
				Expect(view.Edges).To(BeEmpty())
			})
		})

		When("the wallet does not exist", func() {
			BeforeEach(func() {
				fakeWallets.GetWalletReturns(repository.Wallet{}, repository.ErrWalletNotFound)
			})

			It("should return ErrWalletNotFound", func() {
				Expect(err).To(MatchError(core.ErrWalletNotFound))
				Expect(fakeGraphs.GetGraphByRootCallCount()).To(Equal(0))
			})
		})

		When("a graph exists", func() {
			BeforeEach(func() {
				opts = core.RootGraphOptions{Page: 2, Limit: 10}
				fakeGraphs.GetGraphByRootReturns(repository.WalletGraph{ID: 3, RootWalletAddress: walletA, CreatedAt: now}, nil)
				fakeGraphs.GetNodesReturns([]repository.GraphNode{
					{ID: 30, GraphID: 3, WalletAddress: walletB, NodeType: "wallet"},
				}, nil)
				fakeGraphs.CountNodesReturns(25, nil)
				fakeGraphs.GetEdgesReturns([]repository.GraphEdge{}, nil)
				fakeTags.GetTagsByAddressesReturns([]repository.WalletTag{}, nil)
				fakeWallets.GetWalletsByAddressesReturns([]repository.Wallet{}, nil)
			})

			It("should paginate nodes and report page info", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(*view.ID).To(Equal(uint(3)))

				_, graphID, nodeType, limit, offset := fakeGraphs.GetNodesArgsForCall(0)
				Expect(graphID).To(Equal(uint(3)))
				Expect(nodeType).To(Equal(""))
				Expect(limit).To(Equal(10))
				Expect(offset).To(Equal(10))

				Expect(view.Pagination).NotTo(BeNil())
				Expect(view.Pagination.Total).To(Equal(int64(25)))
				Expect(view.Pagination.TotalPages).To(Equal(3))
				Expect(view.Pagination.HasNext).To(BeTrue())
				Expect(view.Pagination.HasPrev).To(BeTrue())
			})

			It("should always enrich the current page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Nodes).To(HaveLen(1))
				Expect(view.Nodes[0].RiskScore).NotTo(BeNil())
				Expect(fakeTags.GetTagsByAddressesCallCount()).To(Equal(1))
			})
		})

		When("the page is invalid", func() {
			BeforeEach(func() {
				opts.Page = 0
			})

			It("should return ErrInvalidPagination", func() {
				Expect(err).To(MatchError(core.ErrInvalidPagination))
			})
		})
	})

	Describe("GetNodeDetail", func() {
		var (
			detail core.NodeDetail
			err    error
		)

		BeforeEach(func() {
			fakeGraphs.GetNodeReturns(repository.GraphNode{ID: 5, GraphID: 1, WalletAddress: walletA, NodeType: "wallet"}, nil)
			fakeWallets.GetWalletsByAddressesReturns([]repository.Wallet{{Address: walletA, Chain: "ethereum"}}, nil)
			fakeTags.GetTagsByAddressesReturns([]repository.WalletTag{
				{WalletAddress: walletA, TagType: "otc"},
				{WalletAddress: walletA, TagType: "kol"},
			}, nil)
			fakeGraphs.EdgesByEndpointReturns([]repository.GraphEdge{
				{ID: 40, FromWalletAddress: walletA, ToWalletAddress: walletB},
			}, nil)
		})

		JustBeforeEach(func() {
			detail, err = tracer.GetNodeDetail(ctx, 5)
		})

		It("should return the node with risk and connected edges", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.ID).To(Equal(uint(5)))
			Expect(detail.RiskScore).To(Equal(20.0))
			Expect(detail.SafetyLevel).To(Equal("safe"))
			Expect(detail.Wallet).NotTo(BeNil())
			Expect(detail.Tags).To(HaveLen(2))
			Expect(detail.ConnectedEdges).To(HaveLen(1))
		})

		When("the node does not exist", func() {
			BeforeEach(func() {
				fakeGraphs.GetNodeReturns(repository.GraphNode{}, repository.ErrNodeNotFound)
			})

			It("should return ErrNodeNotFound", func() {
				Expect(err).To(MatchError(core.ErrNodeNotFound))
			})
		})
	})

	Describe("GetNodeConnections", func() {
		var (
			list core.ConnectionList
			opts core.ConnectionOptions
			err  error
		)

		BeforeEach(func() {
			opts = core.ConnectionOptions{Direction: "both", Page: 1, Limit: 20}
			fakeGraphs.GetNodeReturns(repository.GraphNode{ID: 5, GraphID: 1, WalletAddress: walletA}, nil)
			fakeGraphs.CountEdgesByEndpointReturns(2, nil)
			fakeGraphs.EdgesByEndpointReturns([]repository.GraphEdge{
				{ID: 41, FromWalletAddress: walletA, ToWalletAddress: walletB},
				{ID: 42, FromWalletAddress: walletC, ToWalletAddress: walletA},
			}, nil)
			fakeGraphs.GetNodesReturns([]repository.GraphNode{
				{ID: 5, GraphID: 1, WalletAddress: walletA},
				{ID: 6, GraphID: 1, WalletAddress: walletB},
			}, nil)
			fakeWallets.GetWalletsByAddressesReturns([]repository.Wallet{}, nil)
			fakeTags.GetTagsByAddressesReturns([]repository.WalletTag{}, nil)
		})

		JustBeforeEach(func() {
			list, err = tracer.GetNodeConnections(ctx, 5, opts)
		})

		It("should annotate each edge with its direction", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Connections).To(HaveLen(2))
			Expect(list.Connections[0].Direction).To(Equal("outgoing"))
			Expect(list.Connections[1].Direction).To(Equal("incoming"))
		})

		It("should resolve the far node when it has a node row", func() {
			Expect(list.Connections[0].Node).NotTo(BeNil())
			Expect(list.Connections[0].Node.WalletAddress).To(Equal(walletB))
		})

		It("should keep edges whose far endpoint has no node row", func() {
			Expect(list.Connections[1].Node).To(BeNil())
			Expect(list.Connections[1].Edge.FromWalletAddress).To(Equal(walletC))
		})

		It("should report pagination", func() {
			Expect(list.Pagination.Total).To(Equal(int64(2)))
			Expect(list.Pagination.TotalPages).To(Equal(1))
		})

		When("the direction is unknown", func() {
			BeforeEach(func() {
				opts.Direction = "sideways"
			})

			It("should return ErrInvalidDirection", func() {
				Expect(err).To(MatchError(core.ErrInvalidDirection))
				Expect(fakeGraphs.GetNodeCallCount()).To(Equal(0))
			})
		})

		When("the node does not exist", func() {
			BeforeEach(func() {
				fakeGraphs.GetNodeReturns(repository.GraphNode{}, repository.ErrNodeNotFound)
			})

			It("should return ErrNodeNotFound", func() {
				Expect(err).To(MatchError(core.ErrNodeNotFound))
			})
		})

		When("the edge lookup fails", func() {
			BeforeEach(func() {
				fakeGraphs.EdgesByEndpointReturns(nil, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("get connections: fake error"))
			})
		})
	})
})
