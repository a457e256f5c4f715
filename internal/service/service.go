// Package service contains the application use cases, composed from the
// repository, storage, and content packages.
package service

import "time"

// nowFunc lets tests pin the clock.
type nowFunc func() time.Time

func utcNow() time.Time { return time.Now().UTC() }
