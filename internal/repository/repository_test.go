package repository_test

import (
	"context"
	"errors"

	"graphtrace/internal/db"
	"graphtrace/internal/repository"
	"graphtrace/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GraphRepository", func() {
	var (
		repo        *repository.GraphRepository
		fakeStorage *fake.Database
		ctx         context.Context
		fakeErr     error
	)

	const address = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	BeforeEach(func() {
		fakeStorage = new(fake.Database)
		repo = repository.NewGraphRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate every table", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTablesCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTablesArgsForCall(0)
				Expect(tables).To(HaveLen(6))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Wallet{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.WalletTag{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.ScamDetail{}))
				Expect(tables[3]).To(BeAssignableToTypeOf(&repository.WalletGraph{}))
				Expect(tables[4]).To(BeAssignableToTypeOf(&repository.GraphNode{}))
				Expect(tables[5]).To(BeAssignableToTypeOf(&repository.GraphEdge{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTablesReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("EnsureWallets", func() {
		var (
			wallets []repository.Wallet
			err     error
		)

		BeforeEach(func() {
			wallets = []repository.Wallet{{Address: address, Chain: "ethereum"}}
		})

		JustBeforeEach(func() {
			err = repo.EnsureWallets(ctx, wallets)
		})

		It("should insert with conflicts ignored on the address column", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.CreateIgnoreConflictsCallCount()).To(Equal(1))
			_, records, conflictColumns := fakeStorage.CreateIgnoreConflictsArgsForCall(0)
			Expect(records).To(BeAssignableToTypeOf(&[]repository.Wallet{}))
			Expect(conflictColumns).To(Equal([]string{"address"}))
		})

		When("the wallet list is empty", func() {
			BeforeEach(func() {
				wallets = nil
			})

			It("should not touch the store", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.CreateIgnoreConflictsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetWallet", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetWallet(ctx, address)
		})

		When("the record is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should translate to ErrWalletNotFound", func() {
				Expect(err).To(MatchError(repository.ErrWalletNotFound))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("get wallet by address: fake error"))
			})
		})
	})

	Describe("InsertNodes", func() {
		var (
			inserted int64
			err      error
		)

		JustBeforeEach(func() {
			inserted, err = repo.InsertNodes(ctx, []repository.GraphNode{
				{GraphID: 1, WalletAddress: address, NodeType: "wallet"},
			})
		})

		When("some rows conflict", func() {
			BeforeEach(func() {
				fakeStorage.CreateIgnoreConflictsReturns(1, nil)
			})

			It("should report the actually inserted count", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(Equal(int64(1)))

				_, _, conflictColumns := fakeStorage.CreateIgnoreConflictsArgsForCall(0)
				Expect(conflictColumns).To(Equal([]string{"graph_id", "wallet_address"}))
			})
		})
	})

	Describe("EdgesByEndpoint", func() {
		var (
			edges     []repository.GraphEdge
			direction string
			limit     int
			offset    int
			err       error
		)

		edge := func(id uint, from, to string) repository.GraphEdge {
			return repository.GraphEdge{ID: id, GraphID: 1, FromWalletAddress: from, ToWalletAddress: to}
		}

		BeforeEach(func() {
			direction = repository.DirectionBoth
			limit = 0
			offset = 0

			fakeStorage.FindStub = func(_ context.Context, dest any, where map[string]any, _ string, _, _ int) error {
				out := dest.(*[]repository.GraphEdge)
				if _, ok := where["to_wallet_address"]; ok {
					*out = []repository.GraphEdge{
						edge(3, "0xother", address),
						edge(1, address, address),
					}
					return nil
				}
				*out = []repository.GraphEdge{
					edge(1, address, address),
					edge(2, address, "0xother"),
				}
				return nil
			}
		})

		JustBeforeEach(func() {
			edges, err = repo.EdgesByEndpoint(ctx, 1, address, direction, limit, offset)
		})

		When("both directions are requested", func() {
			It("should merge, deduplicate and order by edge id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(edges).To(HaveLen(3))
				Expect(edges[0].ID).To(Equal(uint(1)))
				Expect(edges[1].ID).To(Equal(uint(2)))
				Expect(edges[2].ID).To(Equal(uint(3)))
			})
		})

		When("both directions are requested with pagination", func() {
			BeforeEach(func() {
				limit = 2
				offset = 2
			})

			It("should paginate the merged set", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(edges).To(HaveLen(1))
				Expect(edges[0].ID).To(Equal(uint(3)))
			})
		})

		When("the offset is beyond the merged set", func() {
			BeforeEach(func() {
				limit = 10
				offset = 10
			})

			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(edges).To(BeEmpty())
			})
		})

		When("only incoming edges are requested", func() {
			BeforeEach(func() {
				direction = repository.DirectionIncoming
			})

			It("should filter on the to address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.FindCallCount()).To(Equal(1))
				_, _, where, _, _, _ := fakeStorage.FindArgsForCall(0)
				Expect(where).To(HaveKeyWithValue("to_wallet_address", address))
			})
		})

		When("the direction is unknown", func() {
			BeforeEach(func() {
				direction = "sideways"
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(`unknown edge direction "sideways"`))
			})
		})
	})

	Describe("DeleteGraphData", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteGraphData(ctx, 1)
		})

		It("should delete edges before nodes", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(2))

			_, first, _ := fakeStorage.DeleteWhereArgsForCall(0)
			Expect(first).To(BeAssignableToTypeOf(&repository.GraphEdge{}))
			_, second, _ := fakeStorage.DeleteWhereArgsForCall(1)
			Expect(second).To(BeAssignableToTypeOf(&repository.GraphNode{}))
		})

		When("the edge delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(fakeErr)
			})

			It("should return an error without deleting nodes", func() {
				Expect(err).To(MatchError("delete graph edges: fake error"))
				Expect(fakeStorage.DeleteWhereCallCount()).To(Equal(1))
			})
		})
	})

	Describe("ListTags", func() {
		var (
			filter repository.TagFilter
			err    error
		)

		BeforeEach(func() {
			filter = repository.TagFilter{TagType: "scam", WalletAddress: address}
		})

		JustBeforeEach(func() {
			_, err = repo.ListTags(ctx, filter, 10, 0)
		})

		It("should order newest first and pass the filters", func() {
			Expect(err).NotTo(HaveOccurred())

			_, _, where, order, limit, offset := fakeStorage.FindArgsForCall(0)
			Expect(where).To(HaveKeyWithValue("tag_type", "scam"))
			Expect(where).To(HaveKeyWithValue("wallet_address", address))
			Expect(where).NotTo(HaveKey("added_by"))
			Expect(order).To(Equal("created_at DESC"))
			Expect(limit).To(Equal(10))
			Expect(offset).To(Equal(0))
		})
	})

	Describe("TagDistribution", func() {
		var (
			counts map[string]int64
			err    error
		)

		BeforeEach(func() {
			fakeStorage.CountGroupByReturns(map[string]int64{"scam": 3}, nil)
		})

		JustBeforeEach(func() {
			counts, err = repo.TagDistribution(ctx)
		})

		It("should group tag rows by type", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(map[string]int64{"scam": 3}))

			_, model, column := fakeStorage.CountGroupByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.WalletTag{}))
			Expect(column).To(Equal("tag_type"))
		})
	})
})
