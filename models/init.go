package models

import "tracker/db"

func Init() {
	db.Instance.AutoMigrate(&Session{})
	db.Instance.AutoMigrate(&ExpressionTally{})
}
