package service

import "time"

// Clock is the time source of countdowns and capture names.
type Clock func() time.Time
