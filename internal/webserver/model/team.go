package model

import "time"

const (
	// TeamRoleMember and TeamRoleAdmin are the only roles a team member or an
	// invitation can carry. They are unrelated to the application-wide User roles.
	TeamRoleMember = "member"
	TeamRoleAdmin  = "admin"
)

type Team struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Uuid        string `gorm:"uniqueIndex"`
	Name        string `gorm:"not null"`
	Description string
	CreatedByID uint
	Members []TeamMember `gorm:"constraint:OnDelete:CASCADE"`
	Tasks   []Task       `gorm:"constraint:OnDelete:CASCADE"`

	// Invitations carry no foreign key constraint on purpose: they are kept as a
	// historical record even after their team is gone, and acceptance checks that
	// the team still exists.
	Invitations []Invitation `gorm:"constraint:-"`
}

// TeamMember links a user to a team. The composite unique index makes duplicated
// memberships impossible at the store level, so no read-then-check is needed.
type TeamMember struct {
	ID          uint `gorm:"primarykey"`
	TeamID      uint `gorm:"uniqueIndex:idx_team_user; not null"`
	UserID      uint `gorm:"uniqueIndex:idx_team_user; not null"`
	Role        string
	InvitedByID *uint
	JoinedAt    time.Time
	User        User
}

func (t Team) Validate() map[string]string {
	errs := map[string]string{}

	if t.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(t.Name) > 50 {
		errs["name"] = "Name cannot be longer than 50 characters"
	}

	if len(t.Description) > 500 {
		errs["description"] = "Description cannot be longer than 500 characters"
	}

	return errs
}
