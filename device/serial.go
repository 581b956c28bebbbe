// Package device provides transport sources for cmd/nistcat beyond plain
// files: ANSI/NIST transactions captured off a serial-attached livescan or
// booking-station device.
package device

import (
	"io"
	"time"

	"github.com/tarm/serial"
)

// SerialConfig configures a serial source, trimmed to what an AFIS serial
// link needs.
type SerialConfig struct {
	Device      string
	BaudRate    int
	ReadTimeout time.Duration
}

// OpenSerialSource opens a serial port as an io.ReadWriteCloser so it can be
// read the same way a file or stdin stream is read by nist.Read.
func OpenSerialSource(cfg SerialConfig) (io.ReadWriteCloser, error) {
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 100 * time.Millisecond
	}
	return serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.BaudRate,
		ReadTimeout: readTimeout,
		Size:        8,
	})
}
