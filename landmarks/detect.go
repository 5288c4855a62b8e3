package landmarks

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os/exec"
	"sync"
	"time"

	"tracker/config"
)

// Long-running MediaPipe bridge: a python3 subprocess reads one image
// path per line on stdin and answers with one JSON landmark frame per
// line on stdout. Started lazily, stopped again after 20s idle.
var (
	pipesReady    = make(chan struct{})
	scriptRunning = false
	stdin         io.WriteCloser
	stdoutPipe    io.ReadCloser
	stdout        *bufio.Reader
	mutex         = sync.Mutex{}
	lastUsed      = time.Now()
)

func init() {
	go backgroundChecker()
}

func shutdown() {
	scriptRunning = false
	if stdin != nil {
		stdin.Close()
	}
	if stdoutPipe != nil {
		stdoutPipe.Close()
	}
	stdin = nil
	stdout = nil
	stdoutPipe = nil
	log.Println("Landmark script stopped")
}

func backgroundChecker() {
	for {
		mutex.Lock()
		if scriptRunning {
			if time.Since(lastUsed) > 20*time.Second && stdin != nil && stdout != nil {
				shutdown()
			} else if writeAndRead("ping") != "pong" {
				shutdown()
			}
		}
		mutex.Unlock()
		time.Sleep(10 * time.Second)
	}
}

func writeAndRead(line string) string {
	_, err := stdin.Write([]byte(line + "\n"))
	if err != nil {
		log.Printf("Error writing to landmark script: %v", err)
		shutdown()
		return ""
	}
	result, err := stdout.ReadString('\n')
	if err != nil {
		log.Printf("Error reading from landmark script: %v", err)
		shutdown()
		return ""
	}
	// Strip the trailing newline
	return result[:len(result)-1]
}

type meshResponse struct {
	Points [][3]float64 `json:"points"`
	Error  string       `json:"error"`
}

// Detect runs the face mesh over one image file and returns its landmark
// frame. An empty frame (no error) means no face was resolved.
func Detect(imgPath string) (Frame, error) {
	mutex.Lock()
	defer mutex.Unlock()

	lastUsed = time.Now()

	// If the bridge is not running, start it
	if !scriptRunning {
		log.Println("Starting landmark script...")
		scriptRunning = true
		go runLandmarkScript()
		// Wait until the in/out pipes are ready
		<-pipesReady
	}
	result := writeAndRead(imgPath)
	if result == "" {
		return nil, errors.New("no response from landmark script")
	}
	return toFrame([]byte(result))
}

func toFrame(data []byte) (Frame, error) {
	response := meshResponse{}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}
	if response.Error != "" {
		return nil, errors.New(response.Error)
	}
	frame := make(Frame, 0, len(response.Points))
	for _, p := range response.Points {
		frame = append(frame, Point{X: p[0], Y: p[1], Z: p[2]})
	}
	return frame, nil
}

func runLandmarkScript() {
	cmd := exec.Command("python3", config.LANDMARKER_SCRIPT)
	stdin, _ = cmd.StdinPipe()
	stdoutPipe, _ = cmd.StdoutPipe()
	stdout = bufio.NewReaderSize(stdoutPipe, 256*1024)
	err := cmd.Start()
	if err != nil {
		log.Printf("Error running landmark script: %v", err)
	}
	// Notify the main goroutine that the pipes are ready
	pipesReady <- struct{}{}

	if err = cmd.Wait(); err != nil {
		log.Printf("Landmark script exited: %v", err)
	}
}
