package logger

import (
	"compot/device"
	"log"
)

// Device records every surface operation to a logger instead of drawing.
type Device struct {
	logger   *log.Logger
	surfaces int
}

func NewDevice(logger *log.Logger) *Device {
	return &Device{logger: logger}
}

func (d *Device) NewSurface(x, y, width, height int) (device.Surface, error) {
	d.surfaces++
	d.logger.Printf("Device: NewSurface(%d, X(%d), Y(%d), W(%d), H(%d))", d.surfaces, x, y, width, height)
	return &surface{id: d.surfaces, logger: d.logger}, nil
}

func (d *Device) Show() {
	d.logger.Println("Device: Show()")
}

type surface struct {
	id     int
	logger *log.Logger
}

func (s *surface) Write(text string, attr device.Attr) error {
	s.logger.Printf("Surface(%d): Write('%s', Attr(%v))", s.id, text, attr)
	return nil
}

func (s *surface) Flush() {
	s.logger.Printf("Surface(%d): Flush()", s.id)
}
