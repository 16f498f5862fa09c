package models

import "time"

type ClockReading struct {
	DisplayName string
	Time        string
	Now         time.Time
}
