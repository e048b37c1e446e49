package dao

import (
	"github.com/MuhKar1/Voting-dApp/db/model"
	"gorm.io/gorm"
)

type VoteDao struct {
	DB *gorm.DB
}

func NewVoteDao(db *gorm.DB) *VoteDao {
	return &VoteDao{
		DB: db,
	}
}

func (d *VoteDao) SaveVote(vote *model.Vote) error {
	err := d.DB.Create(vote).Error
	if err != nil {
		return err
	}
	return nil
}

func (d *VoteDao) GetVotesByPollAddress(pollAddress string) ([]*model.Vote, error) {
	votes := make([]*model.Vote, 0)
	err := d.DB.
		Where("poll_address = ?", pollAddress).
		Find(&votes).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return votes, nil
}

func (d *VoteDao) IsVoteExists(pollAddress string, voter string) (bool, error) {
	exists := false
	if err := d.DB.Raw(
		"SELECT EXISTS(SELECT id FROM votes WHERE poll_address = ? and voter = ?)",
		pollAddress, voter).Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

func (d *VoteDao) CountVotesByPollAddress(pollAddress string) (int64, error) {
	var count int64
	err := d.DB.Model(&model.Vote{}).
		Where("poll_address = ?", pollAddress).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
