package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusCompleted, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidStatus("shipped") {
		t.Errorf("unknown status accepted")
	}
}

func TestDefaults(t *testing.T) {
	stats := DefaultStats()
	if stats.TotalReferrals != 0 || stats.TotalEarnings != 0 || stats.CurrentTier != 1 {
		t.Errorf("unexpected default stats: %+v", stats)
	}

	s := DefaultSettings()
	if s.PayoutMethod != PayoutPayPal || !s.Notifications || s.AutoPayouts || s.MinimumPayout != 100 {
		t.Errorf("unexpected default settings: %+v", s)
	}
}

func TestBudgetRangesOrdered(t *testing.T) {
	ranges := BudgetRanges()
	if len(ranges) != 5 || ranges[0] != "Under 20k" || ranges[4] != "80k+" {
		t.Errorf("unexpected budget ranges: %v", ranges)
	}
}
