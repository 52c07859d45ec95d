package entity

import (
	"testing"
	"time"
)

func TestCanManageTarget(t *testing.T) {
	tests := []struct {
		actor, target MemberRole
		want          bool
	}{
		{RoleOwner, RoleAdmin, true},
		{RoleOwner, RoleStaff, true},
		{RoleOwner, RoleOwner, false},
		{RoleAdmin, RoleStaff, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleOwner, false},
		{RoleStaff, RoleStaff, false},
		{RoleStaff, RoleAdmin, false},
		{RoleStaff, RoleOwner, false},
	}
	for _, tt := range tests {
		if got := tt.actor.CanManageTarget(tt.target); got != tt.want {
			t.Errorf("%s.CanManageTarget(%s) = %v, want %v", tt.actor, tt.target, got, tt.want)
		}
	}
}

func TestCanManage(t *testing.T) {
	if !RoleOwner.CanManage() || !RoleAdmin.CanManage() {
		t.Error("owners and admins must manage membership")
	}
	if RoleStaff.CanManage() {
		t.Error("staff must not manage membership")
	}
}

func TestInvitationConsumable(t *testing.T) {
	now := time.Now()
	accepted := now.Add(-time.Hour)
	canceled := now.Add(-time.Minute)

	tests := []struct {
		name       string
		expiresAt  time.Time
		acceptedAt *time.Time
		canceledAt *time.Time
		want       bool
	}{
		{"pending", now.Add(24 * time.Hour), nil, nil, true},
		{"expired", now.Add(-time.Second), nil, nil, false},
		{"accepted", now.Add(24 * time.Hour), &accepted, nil, false},
		{"canceled", now.Add(24 * time.Hour), nil, &canceled, false},
	}
	for _, tt := range tests {
		i := Invitation{ExpiresAt: tt.expiresAt, AcceptedAt: tt.acceptedAt, CanceledAt: tt.canceledAt}
		if got := i.Consumable(now); got != tt.want {
			t.Errorf("%s: Consumable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
