package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"graphtrace/internal/core"
	"graphtrace/internal/http/handler"
	"graphtrace/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TraceHandler", func() {
	var (
		th            *handler.TraceHandler
		fakeService   *fake.GraphService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	const walletA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.GraphService)
		fakeValidator = new(fake.RequestValidator)

		w = httptest.NewRecorder()
		th = handler.NewTraceHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleCreateGraph", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"rootWalletAddress":"` + walletA + `"}`)
			req = httptest.NewRequest("POST", "/api/v1/graph", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
			fakeService.CreateGraphReturns(core.GraphSummary{ID: 7, RootWalletAddress: walletA}, nil)
		})

		JustBeforeEach(func() {
			th.HandleCreateGraph(w, req)
		})

		When("the graph is created", func() {
			It("should return 201 with the graph summary", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var response map[string]core.GraphSummary
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["graph"].ID).To(Equal(uint(7)))

				Expect(fakeService.CreateGraphCallCount()).To(Equal(1))
				_, msg := fakeService.CreateGraphArgsForCall(0)
				Expect(msg.RootWalletAddress).To(Equal(walletA))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.CreateGraphCallCount()).To(Equal(0))
			})
		})

		When("the root address is rejected", func() {
			BeforeEach(func() {
				fakeService.CreateGraphReturns(core.GraphSummary{}, core.ErrInvalidAddress)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInvalidAddress.Error()))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.CreateGraphReturns(core.GraphSummary{}, fakeErr)
			})

			It("should return status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetGraph", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/v1/graph/3?includeTags=true", nil)
			req.SetPathValue("graphId", "3")

			id := uint(3)
			fakeService.GetGraphReturns(core.GraphView{ID: &id, RootWalletAddress: walletA}, nil)
		})

		JustBeforeEach(func() {
			th.HandleGetGraph(w, req)
		})

		It("should pass the id and enrichment flags to the service", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, graphID, opts := fakeService.GetGraphArgsForCall(0)
			Expect(graphID).To(Equal(uint(3)))
			Expect(opts.IncludeTags).To(BeTrue())
			Expect(opts.IncludeWalletDetails).To(BeFalse())
		})

		When("the graph does not exist", func() {
			BeforeEach(func() {
				fakeService.GetGraphReturns(core.GraphView{}, core.ErrGraphNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not numeric", func() {
			BeforeEach(func() {
				req.SetPathValue("graphId", "abc")
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetGraphCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetNodeConnections", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/v1/node/5/connections", nil)
			req.SetPathValue("nodeId", "5")
			fakeService.GetNodeConnectionsReturns(core.ConnectionList{}, nil)
		})

		JustBeforeEach(func() {
			th.HandleGetNodeConnections(w, req)
		})

		It("should default to both directions and the first page", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, nodeID, opts := fakeService.GetNodeConnectionsArgsForCall(0)
			Expect(nodeID).To(Equal(uint(5)))
			Expect(opts.Direction).To(Equal("both"))
			Expect(opts.Page).To(Equal(1))
			Expect(opts.Limit).To(Equal(20))
		})

		When("the direction is rejected by the service", func() {
			BeforeEach(func() {
				fakeService.GetNodeConnectionsReturns(core.ConnectionList{}, core.ErrInvalidDirection)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleGetWalletProfile", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/v1/wallet/"+walletA, nil)
			req.SetPathValue("address", walletA)
			fakeService.GetWalletProfileReturns(core.WalletProfile{Address: walletA, SafetyLevel: "safe"}, nil)
		})

		JustBeforeEach(func() {
			th.HandleGetWalletProfile(w, req)
		})

		It("should return the profile", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]core.WalletProfile
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["wallet"].Address).To(Equal(walletA))
		})

		When("the wallet does not exist", func() {
			BeforeEach(func() {
				fakeService.GetWalletProfileReturns(core.WalletProfile{}, core.ErrWalletNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleSearchWallets", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/v1/wallets/search?term=binance&limit=5", nil)
			fakeService.SearchWalletsReturns([]core.WalletSearchResult{{Address: walletA}}, nil)
		})

		JustBeforeEach(func() {
			th.HandleSearchWallets(w, req)
		})

		It("should pass the search options to the service", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, opts := fakeService.SearchWalletsArgsForCall(0)
			Expect(opts.Term).To(Equal("binance"))
			Expect(opts.Limit).To(Equal(5))
		})

		When("the term is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/v1/wallets/search", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SearchWalletsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleApplyTag", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"walletAddress":"` + walletA + `","tagType":"scam"}`)
			req = httptest.NewRequest("POST", "/api/v1/tag", body)

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
			fakeService.ApplyTagReturns(core.TagRecord{ID: 9, WalletAddress: walletA, TagType: "scam"}, nil)
		})

		JustBeforeEach(func() {
			th.HandleApplyTag(w, req)
		})

		It("should return 201 with the created tag", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			var response map[string]core.TagRecord
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["tag"].ID).To(Equal(uint(9)))
		})

		When("the tag type is unknown", func() {
			BeforeEach(func() {
				fakeService.ApplyTagReturns(core.TagRecord{}, core.ErrInvalidTagType)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})
})
