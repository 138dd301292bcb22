// logging.go - structured logging at construction/teardown/disconnect boundaries only

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the package-level structured logger, configured for a
// timestamped, key=value-ish console report matching the style of a
// small CLI audio tool. It is never touched from inside MixCycle's
// per-sample work - only from NewDevice-adjacent setup and
// HandleDisconnect: the mixer thread must never allocate or block.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "spatialmixer",
})

func init() {
	Logger.SetLevel(log.InfoLevel)
}

func logDeviceCreated(d *Device) {
	Logger.Info("device created", "frequency", d.Frequency, "channels", d.NumChannels, "hrtf", d.Hrtf != nil)
}

func logDisconnect(d *Device) {
	Logger.Warn("device disconnected", "frequency", d.Frequency)
}
