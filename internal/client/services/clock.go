package services

import "time"

var timeNow = time.Now
