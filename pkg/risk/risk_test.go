package risk_test

import (
	"graphtrace/pkg/risk"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Score", func() {
	It("should return 0 for no tags", func() {
		Expect(risk.Score(nil)).To(Equal(0.0))
		Expect(risk.Score([]string{})).To(Equal(0.0))
	})

	It("should return the weight of a single tag", func() {
		Expect(risk.Score([]string{"scam"})).To(Equal(80.0))
		Expect(risk.Score([]string{"hacker"})).To(Equal(75.0))
		Expect(risk.Score([]string{"blacklist"})).To(Equal(70.0))
		Expect(risk.Score([]string{"otc"})).To(Equal(30.0))
		Expect(risk.Score([]string{"kol"})).To(Equal(10.0))
		Expect(risk.Score([]string{"f0_user"})).To(Equal(5.0))
	})

	It("should average the weights of multiple tags", func() {
		Expect(risk.Score([]string{"kol", "otc"})).To(Equal(20.0))
		Expect(risk.Score([]string{"scam", "blacklist"})).To(Equal(75.0))
	})

	It("should weigh unknown tag types as 0", func() {
		Expect(risk.Score([]string{"something_else"})).To(Equal(0.0))
		Expect(risk.Score([]string{"scam", "something_else"})).To(Equal(40.0))
	})

	It("should count duplicate tags each time", func() {
		Expect(risk.Score([]string{"scam", "scam", "kol"})).
			To(BeNumerically("~", 56.666, 0.001))
	})

	It("should never leave the 0 to 100 range", func() {
		score := risk.Score([]string{"scam", "hacker", "blacklist", "otc", "kol", "f0_user"})
		Expect(score).To(BeNumerically(">=", 0))
		Expect(score).To(BeNumerically("<=", 100))
	})
})

var _ = Describe("LevelFor", func() {
	It("should classify 30 and below as safe", func() {
		Expect(risk.LevelFor(0)).To(Equal(risk.LevelSafe))
		Expect(risk.LevelFor(30)).To(Equal(risk.LevelSafe))
	})

	It("should classify above 30 up to 70 as caution", func() {
		Expect(risk.LevelFor(30.01)).To(Equal(risk.LevelCaution))
		Expect(risk.LevelFor(70)).To(Equal(risk.LevelCaution))
	})

	It("should classify above 70 as dangerous", func() {
		Expect(risk.LevelFor(70.01)).To(Equal(risk.LevelDangerous))
		Expect(risk.LevelFor(100)).To(Equal(risk.LevelDangerous))
	})
})
