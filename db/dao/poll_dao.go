package dao

import (
	"github.com/MuhKar1/Voting-dApp/db/model"
	"gorm.io/gorm"
)

type PollDao struct {
	DB *gorm.DB
}

func NewPollDao(db *gorm.DB) *PollDao {
	return &PollDao{
		DB: db,
	}
}

func (d *PollDao) SavePoll(poll *model.Poll) error {
	err := d.DB.Create(poll).Error
	if err != nil {
		return err
	}
	return nil
}

func (d *PollDao) GetPollByAddress(address string) (*model.Poll, error) {
	var poll model.Poll
	err := d.DB.
		Where("address = ?", address).
		Take(&poll).Error
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

func (d *PollDao) GetPollsByCreator(creator string) ([]*model.Poll, error) {
	polls := make([]*model.Poll, 0)
	err := d.DB.
		Where("creator = ?", creator).
		Find(&polls).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return polls, nil
}

func (d *PollDao) GetActivePolls() ([]*model.Poll, error) {
	polls := make([]*model.Poll, 0)
	err := d.DB.
		Where("is_active = ?", true).
		Find(&polls).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return polls, nil
}

func (d *PollDao) ClosePoll(address string, closedTime int64) error {
	return d.DB.Model(&model.Poll{}).
		Where("address = ?", address).
		Updates(map[string]interface{}{"is_active": false, "closed_time": closedTime}).Error
}
