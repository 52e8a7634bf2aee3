package loan

import "testing"

func TestStepIndex_MatchesPipelineOrder(t *testing.T) {
	want := []Status{
		StatusApplied, StatusInitialMeeting, StatusNeedsList, StatusUnderReview,
		StatusBanksReviewing, StatusTermSheets, StatusClosing,
	}
	if len(Steps) != len(want) {
		t.Fatalf("pipeline length = %d, want %d", len(Steps), len(want))
	}
	for i, s := range want {
		if Steps[i].Key != s {
			t.Fatalf("step %d = %s, want %s", i, Steps[i].Key, s)
		}
		if got := StepIndex(s); got != i {
			t.Fatalf("StepIndex(%s) = %d, want %d", s, got, i)
		}
	}
}

func TestStepIndex_Unknown(t *testing.T) {
	if got := StepIndex("funded"); got != -1 {
		t.Fatalf("StepIndex(funded) = %d, want -1", got)
	}
}
