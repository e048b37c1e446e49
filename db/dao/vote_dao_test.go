package dao

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/MuhKar1/Voting-dApp/db/model"
)

type voteSuite struct {
	suite.Suite
	dao *VoteDao
	db  *Database
}

func TestVoteSuite(t *testing.T) {
	suite.Run(t, new(voteSuite))
}

func (s *voteSuite) SetupSuite() {
	db, err := RunDB("vote_dao_test")
	s.Require().NoError(err)
	s.db = db
}

func (s *voteSuite) TearDownSuite() {
	err := s.db.StopDB()
	s.Require().NoError(err)
}

func (s *voteSuite) SetupTest() {
	model.InitVoteTable(s.db.DB)

	s.dao = NewVoteDao(s.db.DB)
}

func (s *voteSuite) TearDownTest() {
	err := s.db.ClearDB()
	s.Require().NoError(err)
}

func (s *voteSuite) createVote() *model.Vote {
	return &model.Vote{
		PollAddress: "0xpoll",
		Voter:       "0xvoter",
		OptionIndex: 1,
		CreatedTime: 1700000000,
	}
}

func (s *voteSuite) TestVoteDao_SaveVote() {
	vote := s.createVote()
	err := s.dao.SaveVote(vote)
	s.Require().NoError(err, "failed to save")
}

func (s *voteSuite) TestVoteDao_GetVotesByPollAddress() {
	vote := s.createVote()
	_ = s.dao.SaveVote(vote)

	result, err := s.dao.GetVotesByPollAddress(vote.PollAddress)
	s.Require().NoError(err, "failed to query")
	s.Require().Len(result, 1)
	s.Require().Equal(vote.Voter, result[0].Voter)
}

func (s *voteSuite) TestVoteDao_IsVoteExists() {
	vote := s.createVote()
	_ = s.dao.SaveVote(vote)

	result, err := s.dao.IsVoteExists(vote.PollAddress, vote.Voter)
	s.Require().NoError(err, "failed to query")
	s.Require().True(result)

	result, err = s.dao.IsVoteExists(vote.PollAddress, vote.Voter+"fake")
	s.Require().NoError(err, "failed to query")
	s.Require().True(!result)
}

func (s *voteSuite) TestVoteDao_CountVotesByPollAddress() {
	vote := s.createVote()
	_ = s.dao.SaveVote(vote)

	other := s.createVote()
	other.Voter = "0xother"
	_ = s.dao.SaveVote(other)

	count, err := s.dao.CountVotesByPollAddress(vote.PollAddress)
	s.Require().NoError(err, "failed to query")
	s.Require().Equal(int64(2), count)
}
