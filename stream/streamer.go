package stream

import (
	"context"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Client is the part of mqtt.Client the Streamer uses.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device and takes
// timeline updates from MQTT.
type Streamer struct {
	config    Config
	client    Client
	animation Animation
	track     *Track
	start     time.Time
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Client, animation Animation, track *Track) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.animation = animation
	s.track = track
	s.start = time.Now()
	return s
}

// Subscribe listens for timeline documents on the timeline topic.
func (s *Streamer) Subscribe() error {
	token := s.client.Subscribe(s.config.Mqtt.Topics.Timeline, 1, s.handleTimeline)
	token.Wait()
	return token.Error()
}

func (s *Streamer) handleTimeline(client mqtt.Client, msg mqtt.Message) {
	if err := s.track.LoadYAML(msg.Payload()); err != nil {
		log.Printf("Rejected timeline on %s: %v", msg.Topic(), err)
		return
	}
	log.Printf("Loaded timeline from %s (%d keyframes)", msg.Topic(), s.track.Len())
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 0, false, b)
	token.Wait()
	return token.Error()
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) {
	interval := time.Duration(float64(time.Second) / s.config.Stream.FrameRate)
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()
	for {
		select {
		case <-publishTimer.C:
			if err := s.SendFrame(time.Since(s.start).Milliseconds()); err != nil {
				log.Printf("Send frame: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
