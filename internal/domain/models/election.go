package models

import "time"

// Election is a community-scoped poll (board seats, budget questions).
type Election struct {
	BaseModel
	CommunityID string    `gorm:"type:char(36);index;not null" json:"community_id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:varchar(1000)" json:"description"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`

	// Relations
	Candidates []ElectionCandidate `gorm:"foreignKey:ElectionID" json:"candidates,omitempty"`
	Votes      []ElectionVote      `gorm:"foreignKey:ElectionID" json:"votes,omitempty"`
}

// ElectionCandidate is one option on an election's ballot.
type ElectionCandidate struct {
	BaseModel
	ElectionID  string `gorm:"type:char(36);index;not null" json:"election_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
}

// ElectionVote records a resident's current choice. The unique index on
// (election_id, resident_id) makes re-voting an update rather than a second
// ballot.
type ElectionVote struct {
	BaseModel
	ElectionID  string `gorm:"type:char(36);not null;uniqueIndex:idx_election_resident" json:"election_id"`
	ResidentID  string `gorm:"type:char(36);not null;uniqueIndex:idx_election_resident" json:"resident_id"`
	CandidateID string `gorm:"type:char(36);not null" json:"candidate_id"`
}
