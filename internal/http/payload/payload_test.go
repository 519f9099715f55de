package payload_test

import (
	"net/http/httptest"
	"strings"

	"graphtrace/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CreateGraphRequest", func() {
	It("should require a root wallet address", func() {
		req := payload.CreateGraphRequest{}
		Expect(req.Validate()).To(HaveOccurred())

		req.RootWalletAddress = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		Expect(req.Validate()).To(Succeed())
	})

	It("should carry nodes and edges into the message", func() {
		req := payload.CreateGraphRequest{
			RootWalletAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Nodes:             []payload.NodeEntry{{WalletAddress: "0xbb", NodeType: "exchange"}},
			Edges:             []payload.EdgeEntry{{FromWalletAddress: "0xaa", ToWalletAddress: "0xbb", Amount: "1.5"}},
		}

		msg := req.ToMessage()
		Expect(msg.RootWalletAddress).To(Equal(req.RootWalletAddress))
		Expect(msg.Nodes).To(HaveLen(1))
		Expect(msg.Nodes[0].NodeType).To(Equal("exchange"))
		Expect(msg.Edges).To(HaveLen(1))
		Expect(msg.Edges[0].Amount).To(Equal("1.5"))
	})
})

var _ = Describe("BatchRequest", func() {
	It("should reject an empty batch", func() {
		Expect(payload.BatchRequest{}.Validate()).To(MatchError("nodes or edges are required"))
	})

	It("should accept a batch with only edges", func() {
		req := payload.BatchRequest{
			Edges: []payload.EdgeEntry{{FromWalletAddress: "0xaa", ToWalletAddress: "0xbb"}},
		}
		Expect(req.Validate()).To(Succeed())
	})
})

var _ = Describe("TagRequest", func() {
	It("should require address and tag type", func() {
		Expect(payload.TagRequest{}.Validate()).To(HaveOccurred())
		Expect(payload.TagRequest{WalletAddress: "0xaa"}.Validate()).To(HaveOccurred())
		Expect(payload.TagRequest{WalletAddress: "0xaa", TagType: "scam"}.Validate()).To(Succeed())
	})

	It("should map optional fields to pointers", func() {
		req := payload.TagRequest{
			WalletAddress: "0xaa",
			TagType:       "scam",
			AddedBy:       "analyst",
			ScamDetail:    &payload.ScamDetailEntry{Reason: "rug pull", ScamLink: "https://example.com"},
		}

		msg := req.ToMessage()
		Expect(*msg.AddedBy).To(Equal("analyst"))
		Expect(msg.ScamDetail).NotTo(BeNil())
		Expect(msg.ScamDetail.Reason).To(Equal("rug pull"))
		Expect(*msg.ScamDetail.ScamLink).To(Equal("https://example.com"))
		Expect(msg.ScamDetail.TwitterHandle).To(BeNil())
	})

	It("should leave absent optional fields nil", func() {
		msg := payload.TagRequest{WalletAddress: "0xaa", TagType: "otc"}.ToMessage()
		Expect(msg.AddedBy).To(BeNil())
		Expect(msg.ScamDetail).To(BeNil())
	})
})

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	It("should decode and validate a payload", func() {
		body := strings.NewReader(`{"walletAddress":"0xaa","tagType":"scam"}`)
		req := httptest.NewRequest("POST", "/api/v1/tag", body)

		var tag payload.TagRequest
		Expect(dv.DecodeAndValidateJSONPayload(req, &tag)).To(Succeed())
		Expect(tag.TagType).To(Equal("scam"))
	})

	It("should fail validation for incomplete payloads", func() {
		body := strings.NewReader(`{"walletAddress":"0xaa"}`)
		req := httptest.NewRequest("POST", "/api/v1/tag", body)

		var tag payload.TagRequest
		err := dv.DecodeAndValidateJSONPayload(req, &tag)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("validating payload"))
	})

	It("should reject unknown fields", func() {
		body := strings.NewReader(`{"walletAddress":"0xaa","tagType":"scam","bogus":true}`)
		req := httptest.NewRequest("POST", "/api/v1/tag", body)

		var tag payload.TagRequest
		err := dv.DecodeAndValidateJSONPayload(req, &tag)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("decoding json payload"))
	})
})
