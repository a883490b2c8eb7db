package inventory

import "testing"

func TestParseCondition(t *testing.T) {
	if got := ParseCondition(" C "); got != ConditionComplete {
		t.Fatalf("got %q", got)
	}
	// unknown codes pass through untouched; validity is decided downstream
	if got := ParseCondition("X"); got != Condition("X") {
		t.Fatalf("got %q", got)
	}
}

func TestPriceStatusString(t *testing.T) {
	testCases := []struct {
		status   PriceStatus
		expected string
	}{
		{StatusOK, "ok"},
		{StatusMissingPrice, "missing_price"},
		{StatusUnknownCondition, "unknown_condition"},
		{PriceStatus(99), "invalid"},
	}
	for _, tc := range testCases {
		if got := tc.status.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.status, got, tc.expected)
		}
	}
}
