package entity

import (
	"time"

	"github.com/google/uuid"
)

type MemberRole string

const (
	RoleOwner MemberRole = "owner"
	RoleAdmin MemberRole = "admin"
	RoleStaff MemberRole = "staff"
)

func ValidMemberRole(role string) bool {
	switch MemberRole(role) {
	case RoleOwner, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// CanManage reports whether an actor with this role may administer team
// membership at all. Staff never manage membership.
func (r MemberRole) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanManageTarget encodes the asymmetric rule: admins may only manage staff,
// owners may manage admins and staff. Owners are never a valid target.
func (r MemberRole) CanManageTarget(target MemberRole) bool {
	if target == RoleOwner {
		return false
	}
	switch r {
	case RoleOwner:
		return true
	case RoleAdmin:
		return target == RoleStaff
	}
	return false
}

type Membership struct {
	RescueId  uuid.UUID
	UserId    uuid.UUID
	Role      MemberRole
	CreatedAt time.Time
}

type Invitation struct {
	Id         uuid.UUID
	RescueId   uuid.UUID
	Email      string
	Role       MemberRole
	Token      string
	CreatedBy  uuid.UUID
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	CanceledAt *time.Time
	CreatedAt  time.Time
}

// Consumable reports whether the invitation can still be accepted.
func (i *Invitation) Consumable(now time.Time) bool {
	return i.AcceptedAt == nil && i.CanceledAt == nil && now.Before(i.ExpiresAt)
}
