package entity

import "testing"

func TestActionForOutcome(t *testing.T) {
	tests := []struct {
		outcome    ReportOutcome
		want       ModerationActionType
		actionable bool
	}{
		{OutcomeWarned, ActionWarn, true},
		{OutcomeHidden, ActionHide, true},
		{OutcomeSuspended, ActionSuspend, true},
		{OutcomeDismissed, ActionDismiss, true},
		{OutcomePending, "", false},
		{ReportOutcome("bogus"), "", false},
	}
	for _, tt := range tests {
		got, ok := ActionForOutcome(tt.outcome)
		if got != tt.want || ok != tt.actionable {
			t.Errorf("ActionForOutcome(%q) = %q/%v, want %q/%v", tt.outcome, got, ok, tt.want, tt.actionable)
		}
	}
}

func TestValidReportStatus(t *testing.T) {
	for _, valid := range []string{"open", "triaged", "closed"} {
		if !ValidReportStatus(valid) {
			t.Errorf("ValidReportStatus(%q) = false", valid)
		}
	}
	if ValidReportStatus("resolved") || ValidReportStatus("") {
		t.Error("unknown report statuses must be rejected")
	}
}

func TestValidReportOutcome(t *testing.T) {
	for _, valid := range []string{"pending", "dismissed", "warned", "hidden", "suspended"} {
		if !ValidReportOutcome(valid) {
			t.Errorf("ValidReportOutcome(%q) = false", valid)
		}
	}
	if ValidReportOutcome("banned") {
		t.Error("unknown report outcomes must be rejected")
	}
}

func TestAuthContextNilSafety(t *testing.T) {
	var missing *AuthContext
	if missing.HasRescue() {
		t.Error("nil context must not report a rescue")
	}

	empty := &AuthContext{}
	if empty.HasRescue() || empty.RescueDisabled() {
		t.Error("empty context must not report a rescue")
	}

	disabled := &AuthContext{Rescue: &Rescue{Disabled: true}, Role: RoleOwner}
	if !disabled.HasRescue() || !disabled.RescueDisabled() {
		t.Error("disabled rescue must surface through the context")
	}
}
