package scoring

import "testing"

func TestOverall_PrimaryWeights(t *testing.T) {
	got := Overall(SubScores{Skills: 3500, Certifications: 3800, Experience: 3200, Industry: 3450})
	if got != 3465 {
		t.Fatalf("expected 3465, got %d", got)
	}
}

func TestOverall_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name string
		in   SubScores
		want int
	}{
		// 0.4*1001 + 0.1*1 = 400.5
		{name: "exact half rounds up", in: SubScores{Skills: 1001, Industry: 1}, want: 401},
		// 0.4*1001 = 400.4
		{name: "below half rounds down", in: SubScores{Skills: 1001}, want: 400},
		// 0.3*3 = 0.9
		{name: "above half rounds up", in: SubScores{Experience: 3}, want: 1},
		// -0.4*1001 - 0.1*1 = -400.5
		{name: "negative half rounds away", in: SubScores{Skills: -1001, Industry: -1}, want: -401},
		{name: "zero", in: SubScores{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overall(tt.in); got != tt.want {
				t.Fatalf("Overall(%+v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestOverall_MatchesFloatFormulaOnGrid(t *testing.T) {
	for s := 900; s <= 3600; s += 137 {
		for c := 900; c <= 3600; c += 211 {
			in := SubScores{Skills: s, Certifications: c, Experience: s + 13, Industry: c - 7}
			n := 4*in.Skills + 2*in.Certifications + 3*in.Experience + in.Industry
			want := n / 10
			if n%10 >= 5 {
				want++
			}
			if got := Overall(in); got != want {
				t.Fatalf("Overall(%+v) = %d, want %d", in, got, want)
			}
		}
	}
}

func TestNewBreakdown(t *testing.T) {
	b := NewBreakdown(SubScores{Skills: 2000, Certifications: 2100, Experience: 2200, Industry: 2300})
	if b.SkillsScore != 2000 || b.CertificationsScore != 2100 || b.ExperienceScore != 2200 || b.IndustryScore != 2300 {
		t.Fatalf("unexpected sub-scores: %+v", b)
	}
	// 800 + 420 + 660 + 230
	if b.OverallScore != 2110 {
		t.Fatalf("expected overall 2110, got %d", b.OverallScore)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{3487, TierDiamond},
		{3000, TierDiamond},
		{2999, TierGold},
		{2500, TierGold},
		{2000, TierSilver},
		{1999, TierBronze},
		{0, TierBronze},
	}
	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Fatalf("TierFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
