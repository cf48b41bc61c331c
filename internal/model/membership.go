package model

// MembershipProduct describes a purchasable membership tier shown on
// the membership page.  The catalog carries these for display only;
// joining the membership programme itself is a single flag on the user.
type MembershipProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceMonthly int    `json:"price_monthly"`
	Benefits     string `json:"benefits"`
}
