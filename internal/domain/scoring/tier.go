package scoring

type Tier string

const (
	TierDiamond Tier = "Diamond"
	TierGold    Tier = "Gold"
	TierSilver  Tier = "Silver"
	TierBronze  Tier = "Bronze"
)

func TierFor(overall int) Tier {
	switch {
	case overall >= 3000:
		return TierDiamond
	case overall >= 2500:
		return TierGold
	case overall >= 2000:
		return TierSilver
	default:
		return TierBronze
	}
}
