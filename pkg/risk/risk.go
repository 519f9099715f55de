package risk

// Level is the discrete safety classification derived from a risk score.
type Level string

const (
	LevelSafe      Level = "safe"
	LevelCaution   Level = "caution"
	LevelDangerous Level = "dangerous"
)

// HighRiskThreshold is the score above which a wallet counts as high risk.
const HighRiskThreshold = 70

// weights maps a tag type to its risk contribution. Unknown tags weigh 0.
var weights = map[string]int{
	"scam":      80,
	"hacker":    75,
	"blacklist": 70,
	"otc":       30,
	"kol":       10,
	"f0_user":   5,
}

// Score computes the risk score for a wallet from its tag types. The score is
// the arithmetic mean of the per-tag weights, clamped to [0,100]. The mean,
// not the sum: a wallet carrying many low-weight tags scores lower than one
// with a single high-weight tag. An empty tag list scores 0.
func Score(tags []string) float64 {
	if len(tags) == 0 {
		return 0
	}

	total := 0
	for _, tag := range tags {
		total += weights[tag]
	}

	score := float64(total) / float64(len(tags))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// LevelFor maps a risk score to its safety level. Bands are inclusive on the
// lower side: score <= 30 is safe, score <= 70 is caution, above is dangerous.
func LevelFor(score float64) Level {
	if score <= 30 {
		return LevelSafe
	}
	if score <= HighRiskThreshold {
		return LevelCaution
	}
	return LevelDangerous
}
