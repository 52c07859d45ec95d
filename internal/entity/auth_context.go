package entity

// AuthContext is the resolved tenant capability attached to each dashboard
// request: the caller's rescue and their role within it. Both are nil/empty
// when the user holds no membership, in which case callers redirect to
// onboarding.
type AuthContext struct {
	Rescue *Rescue
	Role   MemberRole
}

func (c *AuthContext) HasRescue() bool {
	return c != nil && c.Rescue != nil
}

func (c *AuthContext) RescueDisabled() bool {
	return c.HasRescue() && c.Rescue.Disabled
}
