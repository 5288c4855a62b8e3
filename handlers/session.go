package handlers

import (
	"net/http"

	"tracker/config"
	"tracker/landmarks"
	"tracker/models"
	"tracker/tracking"

	"github.com/gin-gonic/gin"
)

func SessionCreate(c *gin.Context) {
	session, err := models.SessionCreate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, session)
}

func SessionStatus(c *gin.Context) {
	session, err := models.SessionByToken(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, NopeResponse)
		return
	}
	tallies, err := models.TalliesForSession(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"live":    LiveCount(session.Token),
		"tallies": tallies,
	})
}

// TrackerConfig tells the browser client what the server is classifying
// with, so local overlays can match the committed labels.
func TrackerConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"directionThreshold": config.DIRECTION_THRESHOLD,
		"landmarkCount":      landmarks.NumPoints,
		"directionColors":    tracking.DirectionColors,
		"expressions":        tracking.Glyphs,
	})
}
