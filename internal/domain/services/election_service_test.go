package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

type electionFixture struct {
	db        *gorm.DB
	svc       InterfaceElectionService
	community *models.Community
	admin     Caller
	resident  *models.Resident
	voter     Caller
}

func newElectionFixture(t *testing.T) *electionFixture {
	t.Helper()
	db := setupTestDB(t)
	community := seedCommunity(t, db, "ELC")
	_, admin := seedAdmin(t, db, &community.ID, "board@test.local", "password123", models.RoleAdmin)
	resident, voter := seedResident(t, db, community.ID, "voter@test.local", "password123")

	return &electionFixture{
		db:        db,
		svc:       NewElectionService(db),
		community: community,
		admin:     admin,
		resident:  resident,
		voter:     voter,
	}
}

// openElection creates an election whose window includes time.Now, with two
// candidates on the ballot.
func (f *electionFixture) openElection(t *testing.T) (*models.Election, *models.ElectionCandidate, *models.ElectionCandidate) {
	t.Helper()

	election, err := f.svc.Create(f.admin, ElectionInput{
		CommunityID: f.community.ID,
		Title:       "Board 2026",
		StartDate:   time.Now().Add(-time.Hour),
		EndDate:     time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	alice, err := f.svc.AddCandidate(f.admin, election.ID, CandidateInput{Name: "Alice"})
	require.NoError(t, err)
	bob, err := f.svc.AddCandidate(f.admin, election.ID, CandidateInput{Name: "Bob"})
	require.NoError(t, err)

	return election, alice, bob
}

func TestElectionCreateValidatesWindow(t *testing.T) {
	f := newElectionFixture(t)

	_, err := f.svc.Create(f.admin, ElectionInput{
		CommunityID: f.community.ID,
		Title:       "Backwards",
		StartDate:   time.Now().Add(time.Hour),
		EndDate:     time.Now(),
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestElectionResidentCannotManage(t *testing.T) {
	f := newElectionFixture(t)
	election, alice, _ := f.openElection(t)

	_, err := f.svc.Create(f.voter, ElectionInput{
		CommunityID: f.community.ID,
		Title:       "Rogue",
		StartDate:   time.Now(),
		EndDate:     time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotPermitted)

	_, err = f.svc.AddCandidate(f.voter, election.ID, CandidateInput{Name: "Me"})
	assert.ErrorIs(t, err, ErrNotPermitted)

	assert.ErrorIs(t, f.svc.RemoveCandidate(f.voter, election.ID, alice.ID), ErrNotPermitted)
	assert.ErrorIs(t, f.svc.Delete(f.voter, election.ID), ErrNotPermitted)
}

func TestElectionVoteAndRevote(t *testing.T) {
	f := newElectionFixture(t)
	election, alice, bob := f.openElection(t)

	first, err := f.svc.UpsertVote(f.voter, election.ID, VoteInput{CandidateID: alice.ID})
	require.NoError(t, err)

	// A second ballot replaces the first instead of stacking, and the
	// returned vote keeps the stored row's id.
	second, err := f.svc.UpsertVote(f.voter, election.ID, VoteInput{CandidateID: bob.ID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, f.db.Model(&models.ElectionVote{}).
		Where("election_id = ? AND resident_id = ?", election.ID, f.resident.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var vote models.ElectionVote
	require.NoError(t, f.db.
		Where("election_id = ? AND resident_id = ?", election.ID, f.resident.ID).
		First(&vote).Error)
	assert.Equal(t, bob.ID, vote.CandidateID)
	assert.Equal(t, vote.ID, second.ID)
}

func TestElectionVoteOutsideWindow(t *testing.T) {
	f := newElectionFixture(t)

	past, err := f.svc.Create(f.admin, ElectionInput{
		CommunityID: f.community.ID,
		Title:       "Closed",
		StartDate:   time.Now().Add(-2 * time.Hour),
		EndDate:     time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	candidate, err := f.svc.AddCandidate(f.admin, past.ID, CandidateInput{Name: "Late"})
	require.NoError(t, err)

	_, err = f.svc.UpsertVote(f.voter, past.ID, VoteInput{CandidateID: candidate.ID})
	assert.ErrorIs(t, err, ErrElectionClosed)

	future, err := f.svc.Create(f.admin, ElectionInput{
		CommunityID: f.community.ID,
		Title:       "Not yet",
		StartDate:   time.Now().Add(time.Hour),
		EndDate:     time.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)
	candidate, err = f.svc.AddCandidate(f.admin, future.ID, CandidateInput{Name: "Early"})
	require.NoError(t, err)

	_, err = f.svc.UpsertVote(f.voter, future.ID, VoteInput{CandidateID: candidate.ID})
	assert.ErrorIs(t, err, ErrElectionClosed)
}

func TestElectionOnlyResidentsVote(t *testing.T) {
	f := newElectionFixture(t)
	election, alice, _ := f.openElection(t)

	_, err := f.svc.UpsertVote(f.admin, election.ID, VoteInput{CandidateID: alice.ID})
	assert.ErrorIs(t, err, ErrNotPermitted)

	_, err = f.svc.UpsertVote(rootCaller(t, f.db), election.ID, VoteInput{CandidateID: alice.ID})
	assert.ErrorIs(t, err, ErrNotPermitted)
}

func TestElectionVoteRequiresBallotCandidate(t *testing.T) {
	f := newElectionFixture(t)
	election, _, _ := f.openElection(t)

	other, _, _ := f.openElection(t)
	var foreignCandidate models.ElectionCandidate
	require.NoError(t, f.db.Where("election_id = ?", other.ID).First(&foreignCandidate).Error)

	_, err := f.svc.UpsertVote(f.voter, election.ID, VoteInput{CandidateID: foreignCandidate.ID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestElectionResults(t *testing.T) {
	f := newElectionFixture(t)
	election, alice, bob := f.openElection(t)

	_, voterB := seedResident(t, f.db, f.community.ID, "voter-b@test.local", "password123")
	_, voterC := seedResident(t, f.db, f.community.ID, "voter-c@test.local", "password123")

	for _, v := range []Caller{f.voter, voterB} {
		_, err := f.svc.UpsertVote(v, election.ID, VoteInput{CandidateID: alice.ID})
		require.NoError(t, err)
	}
	_, err := f.svc.UpsertVote(voterC, election.ID, VoteInput{CandidateID: bob.ID})
	require.NoError(t, err)

	results, err := f.svc.Results(f.admin, election.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, alice.ID, results[0].CandidateID)
	assert.EqualValues(t, 2, results[0].Votes)
	assert.Equal(t, bob.ID, results[1].CandidateID)
	assert.EqualValues(t, 1, results[1].Votes)
}

func TestElectionResultsIncludeZeroVoteCandidates(t *testing.T) {
	f := newElectionFixture(t)
	election, alice, _ := f.openElection(t)

	_, err := f.svc.UpsertVote(f.voter, election.ID, VoteInput{CandidateID: alice.ID})
	require.NoError(t, err)

	results, err := f.svc.Results(f.voter, election.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.EqualValues(t, 0, results[1].Votes)
}

func TestElectionRemoveCandidateDropsItsVotes(t *testing.T) {
	f := newElectionFixture(t)
	election, alice, _ := f.openElection(t)

	_, err := f.svc.UpsertVote(f.voter, election.ID, VoteInput{CandidateID: alice.ID})
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveCandidate(f.admin, election.ID, alice.ID))

	var votes int64
	require.NoError(t, f.db.Model(&models.ElectionVote{}).
		Where("candidate_id = ?", alice.ID).Count(&votes).Error)
	assert.Zero(t, votes)

	assert.ErrorIs(t, f.svc.RemoveCandidate(f.admin, election.ID, alice.ID), ErrNotFound)
}

func TestElectionDeleteCascades(t *testing.T) {
	f := newElectionFixture(t)
	election, alice, _ := f.openElection(t)

	_, err := f.svc.UpsertVote(f.voter, election.ID, VoteInput{CandidateID: alice.ID})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(f.admin, election.ID))

	var candidates, votes int64
	require.NoError(t, f.db.Model(&models.ElectionCandidate{}).
		Where("election_id = ?", election.ID).Count(&candidates).Error)
	require.NoError(t, f.db.Model(&models.ElectionVote{}).
		Where("election_id = ?", election.ID).Count(&votes).Error)
	assert.Zero(t, candidates)
	assert.Zero(t, votes)

	_, err = f.svc.Get(f.admin, election.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestElectionCrossCommunityHidden(t *testing.T) {
	f := newElectionFixture(t)
	f.openElection(t)

	otherCommunity := seedCommunity(t, f.db, "OTH")
	_, foreignAdmin := seedAdmin(t, f.db, &otherCommunity.ID, "foreign@test.local", "password123", models.RoleAdmin)

	elections, total, err := f.svc.List(foreignAdmin, models.PaginationQuery{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, elections)
}
