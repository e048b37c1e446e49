package model

import (
	"gorm.io/gorm"
)

type Vote struct {
	Id          int64
	PollAddress string `gorm:"NOT NULL;uniqueIndex:idx_vote_poll_address_voter,priority:1"`
	Voter       string `gorm:"NOT NULL;uniqueIndex:idx_vote_poll_address_voter,priority:2"`
	OptionIndex uint32 `gorm:"NOT NULL"`
	CreatedTime int64  `gorm:"NOT NULL"`
}

func (*Vote) TableName() string {
	return "votes"
}

func InitVoteTable(db *gorm.DB) {
	if !db.Migrator().HasTable(&Vote{}) {
		err := db.Migrator().CreateTable(&Vote{})
		if err != nil {
			panic(err)
		}
	}
}
