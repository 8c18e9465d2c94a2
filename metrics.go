package sole

import (
	"time"
)

type CreateHook func(key string, duration time.Duration, err error)

type ReuseHook func(key string)
