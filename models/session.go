package models

import (
	"time"

	"tracker/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is one tracked stream (one camera, one viewer). Frame counters
// are flushed from the live connection when it ends, not per frame.
type Session struct {
	ID             uint64 `gorm:"primaryKey" json:"id"`
	Token          string `gorm:"type:varchar(40);index:uniq_token,unique" json:"token"`
	CreatedAt      int64  `json:"created"`
	LastSeenAt     int64  `json:"lastSeen"`
	FramesTotal    uint64 `json:"framesTotal"`
	FramesDetected uint64 `json:"framesDetected"`
	FramesSkipped  uint64 `json:"framesSkipped"`
}

func SessionCreate() (s Session, err error) {
	s.Token = uuid.NewString()
	s.CreatedAt = time.Now().Unix()
	s.LastSeenAt = s.CreatedAt
	return s, db.Instance.Create(&s).Error
}

func SessionByToken(token string) (s Session, err error) {
	err = db.Instance.First(&s, "token = ?", token).Error
	return
}

// AddFrameCounts merges one connection's counters into the session row.
// The increments happen in SQL so concurrent tabs on the same token
// cannot overwrite each other's counts.
func (s *Session) AddFrameCounts(total, detected, skipped uint64) error {
	return db.Instance.Model(s).UpdateColumns(map[string]interface{}{
		"frames_total":    gorm.Expr("frames_total + ?", total),
		"frames_detected": gorm.Expr("frames_detected + ?", detected),
		"frames_skipped":  gorm.Expr("frames_skipped + ?", skipped),
		"last_seen_at":    time.Now().Unix(),
	}).Error
}
