// main.go - spatialdemo: a minimal command wiring the mixer core to an output backend

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/soundstage/spatialmixer"
	"github.com/soundstage/spatialmixer/internal/backend"
)

var cli struct {
	Backend    string  `help:"Output backend: oto, alsa, or headless." default:"oto" enum:"oto,alsa,headless"`
	SampleRate int     `help:"Output sample rate in Hz." default:"48000"`
	Channels   int     `help:"Output channel count." default:"2"`
	Config     string  `help:"Optional YAML file overriding process-wide tunables." optional:""`
	Scenario   string  `help:"Demo scenario to run: mono-centered, inverse-distance, stereo-wide." default:"mono-centered" enum:"mono-centered,inverse-distance,stereo-wide"`
	RunSeconds float64 `help:"How long to run before exiting." default:"2"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("spatialdemo"),
		kong.Description("Runs the spatial audio mixer core against a demo scenario."),
		kong.UsageOnError(),
	)

	if err := loadTunables(cli.Config); err != nil {
		spatialmixer.Logger.Fatal("loading config", "err", err)
	}

	device := spatialmixer.NewDevice(cli.SampleRate, cli.Channels, defaultLayout(cli.Channels))
	be, err := newBackend(cli.Backend, cli.SampleRate, cli.Channels, device)
	if err != nil {
		spatialmixer.Logger.Fatal("starting backend", "err", err)
	}
	device.Backend = be
	device.Synth = silentSynth{}

	mixCtx := buildScenario(cli.Scenario, device)
	device.Contexts = []*spatialmixer.Context{mixCtx}

	be.Start()
	defer be.Stop()

	ctx.Printf("running %q on %s backend for %.1fs", cli.Scenario, cli.Backend, cli.RunSeconds)
	time.Sleep(time.Duration(cli.RunSeconds * float64(time.Second)))
}

func defaultLayout(channels int) []spatialmixer.ChannelID {
	switch channels {
	case 1:
		return []spatialmixer.ChannelID{spatialmixer.ChannelFrontCenter}
	default:
		return []spatialmixer.ChannelID{spatialmixer.ChannelFrontLeft, spatialmixer.ChannelFrontRight}
	}
}

// startable is the subset of each backend type's method set the demo
// drives directly; all three internal/backend players implement it.
type startable interface {
	spatialmixer.Backend
	Start()
	Stop()
}

func newBackend(name string, sampleRate, channels int, device *spatialmixer.Device) (startable, error) {
	switch name {
	case "oto":
		op, err := backend.NewOtoPlayer(sampleRate, channels)
		if err != nil {
			return nil, fmt.Errorf("oto backend: %w", err)
		}
		op.SetupPlayer(device)
		return op, nil
	case "headless":
		op, err := backend.NewOtoPlayer(sampleRate, channels)
		if err != nil {
			return nil, fmt.Errorf("headless backend: %w", err)
		}
		op.SetupPlayer(device)
		return op, nil
	case "alsa":
		return newALSAPump(sampleRate, channels, device)
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

type silentSynth struct{}

func (silentSynth) Process(samples int, outBuffer [][]float32, outChannels int) {}
