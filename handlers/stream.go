package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"tracker/config"
	"tracker/landmarks"
	"tracker/models"
	"tracker/tracking"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  256 * 1024,
	WriteBufferSize: 16 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SendSocketFunc returns true if data was successfully sent
type SendSocketFunc func([]byte) bool

type LiveClient struct {
	fun SendSocketFunc
}

// LiveClients is needed as a session may be streaming from more than one tab
type LiveClients []*LiveClient

var (
	ConnectedSessions = cmap.New[LiveClients]()
)

func addClient(token string, c *LiveClient) {
	ConnectedSessions.Upsert(token, LiveClients{c}, func(exist bool, valueInMap, newValue LiveClients) LiveClients {
		if exist {
			return append(valueInMap, c)
		}
		return newValue
	})
}

func removeClient(token string, c *LiveClient) {
	ConnectedSessions.Upsert(token, LiveClients{}, func(exist bool, valueInMap, newValue LiveClients) LiveClients {
		if !exist {
			return newValue
		}
		for _, oc := range valueInMap {
			if oc == c {
				continue
			}
			newValue = append(newValue, oc)
		}
		return newValue
	})
}

// LiveCount reports how many clients are currently streaming for a session.
func LiveCount(token string) int {
	if clients, ok := ConnectedSessions.Get(token); ok {
		return len(clients)
	}
	return 0
}

// frameMessage is what the browser sends once per processed video frame.
// Landmarks is empty when its local model saw no face.
type frameMessage struct {
	Landmarks [][3]float64 `json:"landmarks"`
}

func (m *frameMessage) toFrame() landmarks.Frame {
	frame := make(landmarks.Frame, 0, len(m.Landmarks))
	for _, p := range m.Landmarks {
		frame = append(frame, landmarks.Point{X: p[0], Y: p[1], Z: p[2]})
	}
	return frame
}

// LiveTracking is the per-frame websocket loop: one landmark frame in,
// one tracking result out. Each connection owns its own Tracker so
// expression smoothing never crosses streams.
func LiveTracking(c *gin.Context) {
	session, err := models.SessionByToken(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, NopeResponse)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer conn.Close()

	// Setup client
	isConnected := true
	client := LiveClient{}
	client.fun = func(data []byte) bool {
		if !isConnected {
			return false
		}
		err := conn.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			log.Println("write err:", err)
			isConnected = false
			return false
		}
		return true
	}
	addClient(session.Token, &client)
	defer removeClient(session.Token, &client)

	tracker := tracking.NewTracker(config.DIRECTION_THRESHOLD)
	counts := map[tracking.Expression]uint64{}
	var framesTotal, framesDetected, framesSkipped uint64
	defer func() {
		// Flush counters once the stream ends. Deltas go in as SQL
		// increments: another tab may be flushing the same session.
		for expression, count := range counts {
			if err := models.TallyAdd(session.ID, string(expression), tracking.Glyphs[expression], count); err != nil {
				log.Printf("tally save error: %v", err)
			}
		}
		if err := session.AddFrameCounts(framesTotal, framesDetected, framesSkipped); err != nil {
			log.Printf("session save error: %v", err)
		}
	}()

	// Main read cycle
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			log.Println("read err:", err)
			isConnected = false
			break
		}
		if string(message) == "ping" {
			conn.WriteMessage(mt, []byte("pong"))
			continue
		}
		msg := frameMessage{}
		if err = json.Unmarshal(message, &msg); err != nil {
			log.Printf("bad frame message: %v", err)
			continue
		}
		framesTotal++
		result, processed := tracker.TryTrack(msg.toFrame())
		if !processed {
			framesSkipped++
		} else if result.Detected {
			framesDetected++
			counts[result.Expression]++
		}
		data, _ := json.Marshal(result)
		if !client.fun(data) {
			break
		}
	}
}
