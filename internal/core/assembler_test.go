package core_test

import (
	"context"
	"errors"

	"graphtrace/internal/core"
	"graphtrace/internal/core/fake"
	"graphtrace/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	walletA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	walletB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	walletC = "0xcccccccccccccccccccccccccccccccccccccccc"
)

var _ = Describe("Tracer graph assembly", func() {
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

	Describe("CreateGraph", func() {
		var (
			msg     core.CreateGraphMessage
			summary core.GraphSummary
			err     error
		)

		BeforeEach(func() {
			msg = core.CreateGraphMessage{
				RootWalletAddress: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
				Nodes: []core.NodeInput{
					{WalletAddress: walletA},
					{WalletAddress: walletB, NodeType: "exchange", OwnerName: "Binance"},
					{WalletAddress: "not-an-address"},
				},
				Edges: []core.EdgeInput{
					{FromWalletAddress: walletA, ToWalletAddress: walletB, Amount: "12.5"},
					{FromWalletAddress: walletA, ToWalletAddress: walletB, Amount: "twelve"},
				},
			}

			fakeGraphs.CreateGraphStub = func(_ context.Context, graph *repository.WalletGraph) error {
				graph.ID = 7
				return nil
			}
			fakeGraphs.InsertNodesReturns(2, nil)
		})

		JustBeforeEach(func() {
			summary, err = tracer.CreateGraph(ctx, msg)
		})

		When("the message is valid", func() {
			It("should create the graph with the canonical root address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.ID).To(Equal(uint(7)))
				Expect(summary.RootWalletAddress).To(Equal(walletA))
			})

			It("should report actually inserted counts, not input lengths", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.NodeCount).To(Equal(2))
				Expect(summary.EdgeCount).To(Equal(1))
			})

			It("should ensure wallet stubs before inserting nodes", func() {
				Expect(fakeWallets.EnsureWalletsCallCount()).To(Equal(2))

				_, rootStubs := fakeWallets.EnsureWalletsArgsForCall(0)
				Expect(rootStubs).To(HaveLen(1))
				Expect(rootStubs[0].Address).To(Equal(walletA))

				_, nodeStubs := fakeWallets.EnsureWalletsArgsForCall(1)
				Expect(nodeStubs).To(HaveLen(2))
				Expect(nodeStubs[1].Chain).To(Equal("ethereum"))
				Expect(*nodeStubs[1].OwnerName).To(Equal("Binance"))
			})

			It("should skip invalid entries without aborting the batch", func() {
				Expect(err).NotTo(HaveOccurred())

				_, nodes := fakeGraphs.InsertNodesArgsForCall(0)
				Expect(nodes).To(HaveLen(2))
				Expect(nodes[0].GraphID).To(Equal(uint(7)))
				Expect(nodes[0].NodeType).To(Equal("wallet"))
				Expect(nodes[1].NodeType).To(Equal("exchange"))

				_, edges := fakeGraphs.InsertEdgesArgsForCall(0)
				Expect(edges).To(HaveLen(1))
				Expect(edges[0].Amount).To(Equal(decimal.NullDecimal{
					Decimal: decimal.RequireFromString("12.5"),
					Valid:   true,
				}))
			})
		})

		When("the root address is invalid", func() {
			BeforeEach(func() {
				msg.RootWalletAddress = "bogus"
			})

			It("should return ErrInvalidAddress", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeGraphs.CreateGraphCallCount()).To(Equal(0))
			})
		})

		When("the graph row cannot be created", func() {
			BeforeEach(func() {
				fakeGraphs.CreateGraphStub = nil
				fakeGraphs.CreateGraphReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("create graph: fake error"))
			})
		})

		When("the node insert fails", func() {
			BeforeEach(func() {
				fakeGraphs.InsertNodesReturns(0, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("insert nodes: fake error"))
			})
		})
	})

	Describe("ReplaceGraph", func() {
		var (
			msg     core.CreateGraphMessage
			summary core.GraphSummary
			err     error
		)

		BeforeEach(func() {
			msg = core.CreateGraphMessage{
				RootWalletAddress: walletA,
				Nodes:             []core.NodeInput{{WalletAddress: walletB}},
			}
			fakeGraphs.InsertNodesReturns(1, nil)
		})

		JustBeforeEach(func() {
			summary, err = tracer.ReplaceGraph(ctx, msg)
		})

		When("a graph already exists for the root wallet", func() {
			BeforeEach(func() {
				fakeGraphs.GetGraphByRootReturns(repository.WalletGraph{ID: 4, RootWalletAddress: walletA}, nil)
			})

			It("should wipe and repopulate the existing graph row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.ID).To(Equal(uint(4)))

				Expect(fakeGraphs.CreateGraphCallCount()).To(Equal(0))
				Expect(fakeGraphs.DeleteGraphDataCallCount()).To(Equal(1))
				_, graphID := fakeGraphs.DeleteGraphDataArgsForCall(0)
				Expect(graphID).To(Equal(uint(4)))

				_, nodes := fakeGraphs.InsertNodesArgsForCall(0)
				Expect(nodes[0].GraphID).To(Equal(uint(4)))
			})
		})

		When("no graph exists yet", func() {
			BeforeEach(func() {
				fakeGraphs.GetGraphByRootReturns(repository.WalletGraph{}, repository.ErrGraphNotFound)
				fakeGraphs.CreateGraphStub = func(_ context.Context, graph *repository.WalletGraph) error {
					graph.ID = 11
					return nil
				}
			})

			It("should fall back to creating a fresh graph", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.ID).To(Equal(uint(11)))
				Expect(fakeGraphs.DeleteGraphDataCallCount()).To(Equal(0))
				Expect(fakeGraphs.CreateGraphCallCount()).To(Equal(1))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeGraphs.GetGraphByRootReturns(repository.WalletGraph{}, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("get graph by root: fake error"))
			})
		})
	})

	Describe("AddToGraph", func() {
		var (
			result core.BatchResult
			nodes  []core.NodeInput
			edges  []core.EdgeInput
			err    error
		)

		BeforeEach(func() {
			nodes = []core.NodeInput{{WalletAddress: walletC}, {WalletAddress: "oops"}}
			edges = []core.EdgeInput{{FromWalletAddress: walletA, ToWalletAddress: "oops"}}
			fakeGraphs.GetGraphReturns(repository.WalletGraph{ID: 2, RootWalletAddress: walletA}, nil)
			fakeGraphs.InsertNodesReturns(1, nil)
		})

		JustBeforeEach(func() {
			result, err = tracer.AddToGraph(ctx, 2, nodes, edges)
		})

		When("the batch contains invalid entries", func() {
			It("should record per-item errors and keep going", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.NodesAdded).To(Equal(1))
				Expect(result.EdgesAdded).To(Equal(0))
				Expect(result.Errors).To(HaveLen(2))
				Expect(result.Errors[0]).To(ContainSubstring("invalid wallet address"))
				Expect(result.Errors[1]).To(ContainSubstring("invalid edge addresses"))
			})
		})

		When("the graph does not exist", func() {
			BeforeEach(func() {
				fakeGraphs.GetGraphReturns(repository.WalletGraph{}, repository.ErrGraphNotFound)
			})

			It("should return ErrGraphNotFound", func() {
				Expect(err).To(MatchError(core.ErrGraphNotFound))
				Expect(fakeGraphs.InsertNodesCallCount()).To(Equal(0))
			})
		})
	})
})
