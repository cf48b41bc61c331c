package model

import "time"

// User is an application user.  Unlike the catalog types, users are
// mutable: the membership flag and point balance change as side
// effects of booking creation, membership enrollment and referral
// payouts.  The point balance never goes negative.
//
// Fields:
//  ID            – stable user identifier.
//  Name          – display name.
//  Email         – contact email (not verified; demo data).
//  IsMember      – whether the user joined the membership programme.
//  Points        – loyalty point balance, non-negative.
//  InviteCode    – unique 8-character referral token owned by this user.
//  ReferralCount – number of paid bookings made with this user's code.
//  TotalEarnings – cumulative points earned through referrals.
//  CreatedAt     – when the user record was created.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	IsMember      bool      `json:"is_member"`
	Points        int       `json:"points"`
	InviteCode    string    `json:"invite_code"`
	ReferralCount int       `json:"referral_count"`
	TotalEarnings int       `json:"total_earnings"`
	CreatedAt     time.Time `json:"created_at"`
}
