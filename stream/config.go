package stream

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/matt-g-everett/keyframe/easing"
	"gopkg.in/yaml.v2"
)

// Config holds the settings read from the YAML config file.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream   string `yaml:"stream"`
			Timeline string `yaml:"timeline"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Stream struct {
		Pixels           int           `yaml:"pixels"`
		FrameRate        float64       `yaml:"frameRate"`
		AnimationTime    time.Duration `yaml:"animationTime"`
		TransitionTime   time.Duration `yaml:"transitionTime"`
		TransitionEasing easing.Value  `yaml:"transitionEasing"`
	} `yaml:"stream"`
	Timeline struct {
		Path   string `yaml:"path"`
		LoopMs int64  `yaml:"loopMs"`
	} `yaml:"timeline"`
	Api struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"api"`
}

// ReadConfig decodes a Config and fills in defaults for anything left out.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return c, err
	}

	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Mqtt.Topics.Timeline == "" {
		c.Mqtt.Topics.Timeline = "home/xmastree/timeline"
	}
	if c.Stream.Pixels <= 0 {
		c.Stream.Pixels = 500
	}
	if c.Stream.Pixels > math.MaxUint16 {
		return c, fmt.Errorf("stream.pixels %d exceeds the frame limit of %d", c.Stream.Pixels, math.MaxUint16)
	}
	if c.Stream.FrameRate <= 0 {
		c.Stream.FrameRate = 30
	}
	if c.Stream.AnimationTime <= 0 {
		c.Stream.AnimationTime = time.Minute
	}
	if c.Stream.TransitionTime <= 0 {
		c.Stream.TransitionTime = 5 * time.Second
	}
	if c.Stream.TransitionEasing.Descriptor == nil {
		c.Stream.TransitionEasing.Descriptor = easing.Named("easeInOutSine")
	}
	if c.Api.Listen == "" {
		c.Api.Listen = ":3000"
	}
	return c, nil
}
