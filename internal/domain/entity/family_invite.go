package entity

import "time"

// InviteStatus is the state of a family invite. No operation transitions it yet.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// FamilyInvite records one invitation attempt.
type FamilyInvite struct {
	ID           string       `json:"id"`
	InviterID    string       `json:"inviter_id"`
	InviteeEmail string       `json:"invitee_email"`
	Role         Role         `json:"role"`
	Status       InviteStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}
