package model

import (
	"gorm.io/gorm"
)

type Poll struct {
	Id          int64
	Address     string `gorm:"NOT NULL;uniqueIndex:idx_poll_address"`
	Creator     string `gorm:"NOT NULL;index:idx_poll_creator"`
	PollId      uint64 `gorm:"NOT NULL"`
	Question    string `gorm:"NOT NULL"`
	OptionCount uint32 `gorm:"NOT NULL"`
	IsActive    bool   `gorm:"NOT NULL"`
	CreatedTime int64  `gorm:"NOT NULL"`
	ClosedTime  int64
}

func (*Poll) TableName() string {
	return "polls"
}

func InitPollTable(db *gorm.DB) {
	if !db.Migrator().HasTable(&Poll{}) {
		err := db.Migrator().CreateTable(&Poll{})
		if err != nil {
			panic(err)
		}
	}
}
