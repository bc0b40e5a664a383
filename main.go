package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/keyframe/api"
	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/stream"
	"github.com/matt-g-everett/keyframe/timeline"
	"github.com/matt-g-everett/keyframe/util"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Track      *stream.Track
	Controller *stream.Controller
	Streamer   *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Printf("Subscribe to %s: %v", a.Config.Mqtt.Topics.Timeline, err)
	}
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal(token.Error())
	}
	go a.Controller.Run(ctx, a.Config.Stream.AnimationTime)
	a.Streamer.Run(ctx)
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		log.Fatal(err)
	}
}

func (a *app) loadTimeline(path string) {
	a.Track = stream.NewTrack(colorful.Color{}, a.Config.Timeline.LoopMs)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := a.Track.LoadYAML(data); err != nil {
		log.Fatalf("Timeline %s: %v", path, err)
	}
	log.Printf("Loaded %d keyframes from %s", a.Track.Len(), path)
}

func (a *app) buildAnimations(rng *rand.Rand) []stream.Animation {
	pixels := a.Config.Stream.Pixels

	rainbow, err := stream.Rainbow.NewGradient(0.6, 0.5)
	if err != nil {
		log.Fatal(err)
	}

	backColours := []colorful.Color{
		colorful.Hcl(87.0, 0.6, 0.25),
		colorful.Hcl(98.0, 0.6, 0.25),
		colorful.Hcl(320.0, 0.6, 0.25),
	}

	return []stream.Animation{
		stream.NewKeyframeAnimation(a.Track, pixels),
		stream.NewGradientTrail(rainbow, pixels, 150, 0.03, 0),
		stream.NewTwinkle(util.NewMemoizer(easing.Named("easeInOutQuad")), pixels, 200, backColours, rng),
	}
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	timelinePath := flag.String("timeline", "", "YAML timeline document, overrides timeline.path in the config.")
	verbose := flag.Bool("v", false, "Log timeline edits.")
	flag.Parse()

	if *verbose {
		timeline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	path := a.Config.Timeline.Path
	if *timelinePath != "" {
		path = *timelinePath
	}
	a.loadTimeline(path)

	rng := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	a.Controller = stream.NewController(a.buildAnimations(rng), a.Config.Stream.FrameRate,
		a.Config.Stream.TransitionTime, a.Config.Stream.TransitionEasing.Descriptor)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("keyframe").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Controller, a.Track)

	go func() {
		if err := api.NewApi(a.Track, a.Config.Api.Static).Serve(a.Config.Api.Listen); err != nil {
			log.Fatal(err)
		}
	}()

	a.run(context.Background())
}
