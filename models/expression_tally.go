package models

import (
	"tracker/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpressionTally counts how many times a session committed each
// expression. This is the persistent side of the emoji counters.
type ExpressionTally struct {
	SessionID  uint64  `gorm:"index:uniq_session_expression,unique;priority:1" json:"-"`
	Session    Session `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Expression string  `gorm:"type:varchar(20);index:uniq_session_expression,unique;priority:2" json:"expression"`
	Glyph      string  `gorm:"type:varchar(8)" json:"emoji"`
	Count      uint64  `json:"count"`
}

// TallyAdd merges per-connection counts into the session's rows.
func TallyAdd(sessionID uint64, expression, glyph string, count uint64) error {
	if count == 0 {
		return nil
	}
	tally := ExpressionTally{
		SessionID:  sessionID,
		Expression: expression,
		Glyph:      glyph,
		Count:      count,
	}
	return db.Instance.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "expression"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + ?", count)}),
	}).Create(&tally).Error
}

func TalliesForSession(sessionID uint64) (result []ExpressionTally, err error) {
	err = db.Instance.Where("session_id = ?", sessionID).Order("count DESC").Find(&result).Error
	return
}
