package model

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

type TeamRepository struct {
	DB *gorm.DB
}

// Create stores the team and makes its creator a team admin in a single
// transaction, so a team can never exist without at least one admin.
func (t *TeamRepository) Create(team *Team, creatorID uint) error {
	err := t.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		member := TeamMember{
			TeamID:   team.ID,
			UserID:   creatorID,
			Role:     TeamRoleAdmin,
			JoinedAt: time.Now().UTC(),
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		log.Printf("error creating team: %s\n", err)
	}
	return err
}

func (t *TeamRepository) FindByUuid(uuid string) (*Team, error) {
	var team Team

	result := t.DB.Preload("Members.User").Where("uuid = ?", uuid).First(&team)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &team, result.Error
}

func (t *TeamRepository) FindByID(id uint) (*Team, error) {
	var team Team

	result := t.DB.Preload("Members.User").First(&team, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &team, result.Error
}

// ListByUser returns all teams the given user is a member of, oldest first.
func (t *TeamRepository) ListByUser(userID uint) ([]Team, error) {
	var teams []Team

	result := t.DB.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.created_at ASC").
		Find(&teams)
	if result.Error != nil {
		log.Printf("error listing teams: %s\n", result.Error)
		return nil, result.Error
	}
	return teams, nil
}

func (t *TeamRepository) Update(team *Team) error {
	if result := t.DB.Save(team); result.Error != nil {
		log.Printf("error updating team: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (t *TeamRepository) Delete(uuid string) error {
	var team Team

	result := t.DB.Where("uuid = ?", uuid).Delete(&team)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting team: %s\n", result.Error)
	}
	return nil
}

// MemberRole returns the role the user has in the team and whether they belong
// to it at all.
func (t *TeamRepository) MemberRole(teamID, userID uint) (string, bool) {
	var member TeamMember

	result := t.DB.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member)
	if result.Error != nil {
		return "", false
	}
	return member.Role, true
}

func (t *TeamRepository) RemoveMember(teamID, userID uint) error {
	result := t.DB.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&TeamMember{})
	if result.Error != nil {
		log.Printf("error removing team member: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// TeamAdmins counts how many members hold the admin role in the team, used to
// keep the last admin from leaving or being removed.
func (t *TeamRepository) TeamAdmins(teamID uint) int64 {
	var totalRows int64
	t.DB.Model(&TeamMember{}).Where("team_id = ? AND role = ?", teamID, TeamRoleAdmin).Count(&totalRows)
	return totalRows
}

func (t *TeamRepository) Total() int64 {
	var totalRows int64
	t.DB.Model(&Team{}).Count(&totalRows)
	return totalRows
}
