package model

import "time"

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

// Invitation represents an invitation to join a team, sent by email to an
// address which may or may not belong to a registered user yet. Invitations are
// never deleted; once accepted or declined they stay in their terminal state.
type Invitation struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Uuid         string `gorm:"uniqueIndex; not null"`
	TeamID       uint   `gorm:"not null"`
	Email        string `gorm:"not null"`
	Role         string
	Status       string `gorm:"default:pending"`
	InvitedByID  uint
	ValidUntil   time.Time
	AcceptedByID *uint
	AcceptedAt   *time.Time
	Team         *Team `gorm:"constraint:-"`
	InvitedBy    User  `gorm:"foreignKey:InvitedByID"`
}

func (i Invitation) Expired() bool {
	return i.ValidUntil.UTC().Before(time.Now().UTC())
}
