package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// ElectionInput carries the fields to open or replace a poll.
type ElectionInput struct {
	CommunityID string    `json:"community_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

// CandidateInput carries the fields to put an option on a ballot.
type CandidateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// VoteInput names the candidate a resident picks.
type VoteInput struct {
	CandidateID string `json:"candidate_id" binding:"required"`
}

// CandidateResult is one tally line of an election.
type CandidateResult struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Votes       int64  `json:"votes"`
}

// InterfaceElectionService runs community polls. Admins manage elections and
// ballots; only residents of the community cast votes, and re-voting inside
// the window replaces the earlier ballot.
type InterfaceElectionService interface {
	Create(caller Caller, input ElectionInput) (*models.Election, error)
	Get(caller Caller, id string) (*models.Election, error)
	List(caller Caller, page models.PaginationQuery) ([]models.Election, int64, error)
	Update(caller Caller, id string, input ElectionInput) (*models.Election, error)
	Delete(caller Caller, id string) error

	AddCandidate(caller Caller, electionID string, input CandidateInput) (*models.ElectionCandidate, error)
	RemoveCandidate(caller Caller, electionID, candidateID string) error
	UpsertVote(caller Caller, electionID string, input VoteInput) (*models.ElectionVote, error)
	Results(caller Caller, electionID string) ([]CandidateResult, error)
}

type ElectionService struct {
	DB *gorm.DB
}

func NewElectionService(db *gorm.DB) InterfaceElectionService {
	return &ElectionService{DB: db}
}

func (s *ElectionService) Create(caller Caller, input ElectionInput) (*models.Election, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	if !Allow(caller, &input.CommunityID, nil) {
		return nil, ErrNotPermitted
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrInvalidWindow
	}

	election := models.Election{
		CommunityID: input.CommunityID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.DB.Create(&election).Error; err != nil {
		return nil, err
	}
	return &election, nil
}

func (s *ElectionService) Get(caller Caller, id string) (*models.Election, error) {
	var election models.Election
	err := s.DB.Preload("Candidates").Where("id = ?", id).First(&election).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Allow(caller, &election.CommunityID, nil) {
		return nil, ErrNotPermitted
	}
	return &election, nil
}

func (s *ElectionService) List(caller Caller, page models.PaginationQuery) ([]models.Election, int64, error) {
	page.Normalize()

	q := scopeByCommunity(s.DB.Model(&models.Election{}), caller, "community_id")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var elections []models.Election
	if err := q.Order("start_date DESC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&elections).Error; err != nil {
		return nil, 0, err
	}
	return elections, total, nil
}

func (s *ElectionService) Update(caller Caller, id string, input ElectionInput) (*models.Election, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	election, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrInvalidWindow
	}
	if input.CommunityID != election.CommunityID && !Allow(caller, &input.CommunityID, nil) {
		return nil, ErrNotPermitted
	}

	election.CommunityID = input.CommunityID
	election.Title = input.Title
	election.Description = input.Description
	election.StartDate = input.StartDate
	election.EndDate = input.EndDate

	if err := s.DB.Omit(clause.Associations).Save(election).Error; err != nil {
		return nil, err
	}
	return election, nil
}

func (s *ElectionService) Delete(caller Caller, id string) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	election, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("election_id = ?", election.ID).Delete(&models.ElectionVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("election_id = ?", election.ID).Delete(&models.ElectionCandidate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Election{}, "id = ?", election.ID).Error
	})
}

func (s *ElectionService) AddCandidate(caller Caller, electionID string, input CandidateInput) (*models.ElectionCandidate, error) {
	if caller.Role == models.RoleResident {
		return nil, ErrNotPermitted
	}
	election, err := s.Get(caller, electionID)
	if err != nil {
		return nil, err
	}

	candidate := models.ElectionCandidate{
		ElectionID:  election.ID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.DB.Create(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *ElectionService) RemoveCandidate(caller Caller, electionID, candidateID string) error {
	if caller.Role == models.RoleResident {
		return ErrNotPermitted
	}
	if _, err := s.Get(caller, electionID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("election_id = ? AND candidate_id = ?", electionID, candidateID).
			Delete(&models.ElectionVote{}).Error; err != nil {
			return err
		}
		result := tx.Where("election_id = ? AND id = ?", electionID, candidateID).
			Delete(&models.ElectionCandidate{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// UpsertVote casts or replaces the caller's ballot. Only a resident of the
// election's community may vote, only inside the voting window, and the
// unique (election, resident) index turns a second ballot into an update.
func (s *ElectionService) UpsertVote(caller Caller, electionID string, input VoteInput) (*models.ElectionVote, error) {
	if caller.Role != models.RoleResident {
		return nil, ErrNotPermitted
	}

	election, err := s.Get(caller, electionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if now.Before(election.StartDate) || !now.Before(election.EndDate) {
		return nil, ErrElectionClosed
	}

	var candidate models.ElectionCandidate
	err = s.DB.Where("id = ? AND election_id = ?", input.CandidateID, election.ID).
		First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	vote := models.ElectionVote{
		ElectionID:  election.ID,
		ResidentID:  caller.EntityID,
		CandidateID: candidate.ID,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "election_id"}, {Name: "resident_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"candidate_id", "updated_at"}),
	}).Create(&vote).Error
	if err != nil {
		return nil, err
	}

	// On a re-vote the conflict clause keeps the stored row's id while
	// Create stamped a fresh one on the struct; re-read so the caller
	// sees the row as persisted.
	var stored models.ElectionVote
	err = s.DB.Where("election_id = ? AND resident_id = ?", election.ID, caller.EntityID).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Results tallies the election per candidate. Candidates without ballots
// still appear with zero votes.
func (s *ElectionService) Results(caller Caller, electionID string) ([]CandidateResult, error) {
	election, err := s.Get(caller, electionID)
	if err != nil {
		return nil, err
	}

	var results []CandidateResult
	err = s.DB.Model(&models.ElectionCandidate{}).
		Select("election_candidates.id AS candidate_id, election_candidates.name AS name, COUNT(election_votes.id) AS votes").
		Joins("LEFT JOIN election_votes ON election_votes.candidate_id = election_candidates.id").
		Where("election_candidates.election_id = ?", election.ID).
		Group("election_candidates.id, election_candidates.name").
		Order("votes DESC, name ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
