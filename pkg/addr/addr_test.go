package addr_test

import (
	"strings"

	"graphtrace/pkg/addr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IsValid", func() {
	When("the address is an ethereum address", func() {
		It("should accept 0x followed by 40 hex characters", func() {
			Expect(addr.IsValid("0x742d35cc6634c0532925a3b844bc9e7595f0beb1")).To(BeTrue())
			Expect(addr.IsValid("0x742D35CC6634C0532925A3B844BC9E7595F0BEB1")).To(BeTrue())
		})

		It("should reject hex without the 0x prefix", func() {
			Expect(addr.IsValid("742d35cc6634c0532925a3b844bc9e7595f0beb1")).To(BeFalse())
		})

		It("should reject wrong lengths", func() {
			Expect(addr.IsValid("0x742d35cc6634c0532925a3b844bc9e7595f0beb")).To(BeFalse())
			Expect(addr.IsValid("0x742d35cc6634c0532925a3b844bc9e7595f0beb12")).To(BeFalse())
		})

		It("should reject non-hex characters", func() {
			Expect(addr.IsValid("0x742d35cc6634c0532925a3b844bc9e7595f0bezz")).To(BeFalse())
		})
	})

	When("the address is a tron address", func() {
		It("should accept T followed by 33 base58 characters", func() {
			Expect(addr.IsValid("TJRabPrwbZy45sbavfcjinPJC18kjpRTv8")).To(BeTrue())
		})

		It("should reject base58-forbidden characters", func() {
			// 0, O, I and l are not part of the base58 alphabet
			Expect(addr.IsValid("TJRabPrwbZy45sbavfcjinPJC18kjpRT0O")).To(BeFalse())
		})

		It("should reject short strings", func() {
			Expect(addr.IsValid("TJRabPrwbZy45sbavf")).To(BeFalse())
		})
	})

	When("the address is a solana address", func() {
		It("should accept base58 strings between 32 and 44 characters", func() {
			Expect(addr.IsValid("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")).To(BeTrue())
			Expect(addr.IsValid(strings.Repeat("a", 32))).To(BeTrue())
		})

		It("should reject strings outside the length range", func() {
			Expect(addr.IsValid(strings.Repeat("a", 31))).To(BeFalse())
			Expect(addr.IsValid(strings.Repeat("a", 45))).To(BeFalse())
		})
	})

	When("the address is empty", func() {
		It("should be rejected", func() {
			Expect(addr.IsValid("")).To(BeFalse())
		})
	})
})

var _ = Describe("Canonical", func() {
	It("should lowercase the address", func() {
		Expect(addr.Canonical("0x742D35CC6634C0532925A3B844BC9E7595F0BEB1")).
			To(Equal("0x742d35cc6634c0532925a3b844bc9e7595f0beb1"))
	})

	It("should leave lowercase addresses unchanged", func() {
		Expect(addr.Canonical("0x742d35cc6634c0532925a3b844bc9e7595f0beb1")).
			To(Equal("0x742d35cc6634c0532925a3b844bc9e7595f0beb1"))
	})
})
