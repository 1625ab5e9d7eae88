package model

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrNoLongerPending is returned when trying to accept or decline an invitation
// which already reached a terminal state, possibly through a concurrent request.
var ErrNoLongerPending = errors.New("invitation is no longer pending")

type InvitationRepository struct {
	DB *gorm.DB
}

func (i *InvitationRepository) Create(invitation *Invitation) error {
	if result := i.DB.Create(invitation); result.Error != nil {
		log.Printf("error creating invitation: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (i *InvitationRepository) FindByUuid(uuid string) (*Invitation, error) {
	var invitation Invitation

	result := i.DB.Preload("Team").Preload("InvitedBy").Where("uuid = ?", uuid).First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invitation, result.Error
}

// PendingByEmail returns the pending invitations addressed to the given email,
// newest first. Expired ones are included, expiry is advisory.
func (i *InvitationRepository) PendingByEmail(email string) ([]Invitation, error) {
	var invitations []Invitation

	result := i.DB.Preload("Team").Preload("InvitedBy").
		Where("email = ? AND status = ?", strings.TrimSpace(email), InvitationPending).
		Order("created_at DESC").
		Find(&invitations)
	if result.Error != nil {
		log.Printf("error listing invitations: %s\n", result.Error)
		return nil, result.Error
	}
	return invitations, nil
}

func (i *InvitationRepository) PendingByTeam(teamID uint) ([]Invitation, error) {
	var invitations []Invitation

	result := i.DB.Preload("InvitedBy").
		Where("team_id = ? AND status = ?", teamID, InvitationPending).
		Order("created_at DESC").
		Find(&invitations)
	if result.Error != nil {
		log.Printf("error listing team invitations: %s\n", result.Error)
		return nil, result.Error
	}
	return invitations, nil
}

func (i *InvitationRepository) PendingByTeamAndEmail(teamID uint, email string) (*Invitation, error) {
	var invitation Invitation

	result := i.DB.Where("team_id = ? AND email = ? AND status = ?", teamID, strings.TrimSpace(email), InvitationPending).
		First(&invitation)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invitation, result.Error
}

// Accept marks the invitation as accepted and adds the user to the invitation's
// team, all inside one transaction so a failure leaves no partial state behind.
// The status change is a compare-and-swap on the pending status; if a concurrent
// accept or decline got there first, no row matches and ErrNoLongerPending is
// returned.
func (i *InvitationRepository) Accept(invitation *Invitation, user *User) error {
	return i.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		result := tx.Model(&Invitation{}).
			Where("uuid = ? AND status = ?", invitation.Uuid, InvitationPending).
			Updates(map[string]any{
				"status":         InvitationAccepted,
				"accepted_by_id": user.ID,
				"accepted_at":    now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoLongerPending
		}

		if err := migrateLegacyTeams(tx, user); err != nil {
			return err
		}

		var members int64
		if err := tx.Model(&TeamMember{}).
			Where("team_id = ? AND user_id = ?", invitation.TeamID, user.ID).
			Count(&members).Error; err != nil {
			return err
		}
		if members > 0 {
			return nil
		}

		member := TeamMember{
			TeamID:      invitation.TeamID,
			UserID:      user.ID,
			Role:        invitation.Role,
			InvitedByID: &invitation.InvitedByID,
			JoinedAt:    now,
		}
		return tx.Create(&member).Error
	})
}

// Decline marks a pending invitation as declined. Terminal states are immutable,
// declining an already accepted or declined invitation fails.
func (i *InvitationRepository) Decline(uuid string) error {
	result := i.DB.Model(&Invitation{}).
		Where("uuid = ? AND status = ?", uuid, InvitationPending).
		Update("status", InvitationDeclined)
	if result.Error != nil {
		log.Printf("error declining invitation: %s\n", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoLongerPending
	}
	return nil
}

func (i *InvitationRepository) Total() int64 {
	var totalRows int64
	i.DB.Model(&Invitation{}).Count(&totalRows)
	return totalRows
}

// migrateLegacyTeams converts the user's imported team uuid list into proper
// membership rows. Unknown team uuids are skipped, the column is cleared either
// way so the migration runs at most once per user.
func migrateLegacyTeams(tx *gorm.DB, user *User) error {
	if user.LegacyTeams == "" {
		return nil
	}

	for _, teamUuid := range strings.Split(user.LegacyTeams, ",") {
		teamUuid = strings.TrimSpace(teamUuid)
		if teamUuid == "" {
			continue
		}

		var team Team
		if err := tx.Where("uuid = ?", teamUuid).First(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}

		var members int64
		if err := tx.Model(&TeamMember{}).
			Where("team_id = ? AND user_id = ?", team.ID, user.ID).
			Count(&members).Error; err != nil {
			return err
		}
		if members > 0 {
			continue
		}

		member := TeamMember{
			TeamID:   team.ID,
			UserID:   user.ID,
			Role:     TeamRoleMember,
			JoinedAt: time.Now().UTC(),
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
	}

	user.LegacyTeams = ""
	return tx.Model(&User{}).Where("id = ?", user.ID).Update("legacy_teams", "").Error
}
