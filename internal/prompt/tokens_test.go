package prompt

import "testing"

func TestEstimateTokensUsesOverride(t *testing.T) {
	oldEstimate := estimateTokensFunc
	estimateTokensFunc = func(text string) int { return len(text) / 10 }
	defer func() { estimateTokensFunc = oldEstimate }()

	if got := EstimateTokens("0123456789"); got != 1 {
		t.Fatalf("expected 1 token, got %d", got)
	}
}
