package handlers

import (
	"log"
	"net/http"
	"os"

	"tracker/config"
	"tracker/landmarks"
	"tracker/tracking"
	"tracker/utils"

	"github.com/gin-gonic/gin"
)

// DetectImage is the one-shot path: an uploaded snapshot goes through
// the server-side landmark bridge and both classifiers once. No rolling
// state survives the request, so a fresh Tracker per call is correct.
func DetectImage(c *gin.Context) {
	uploaded, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"image parameter missing"})
		return
	}
	src, err := uploaded.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, NopeResponse)
		return
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "detect-*.jpg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, NopeResponse)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err = utils.Downscale(uint(config.DETECT_MAX_SIZE), src, tmp); err != nil {
		c.JSON(http.StatusBadRequest, Response{"cannot decode image"})
		return
	}

	frame, err := landmarks.Detect(tmp.Name())
	if err != nil {
		log.Printf("landmark detect error: %v", err)
		c.JSON(http.StatusInternalServerError, Response{"landmark extraction failed"})
		return
	}
	result := tracking.NewTracker(config.DIRECTION_THRESHOLD).Track(frame)
	c.JSON(http.StatusOK, result)
}
