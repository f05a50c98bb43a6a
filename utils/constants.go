// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis form-session keys.
const SessionCachePrefix = "formsession:"

// SessionTTL is how long an abandoned form session is kept.
const SessionTTL = 30 * time.Minute

// SubmitLockPrefix is the prefix used for Redis submit-lock keys.
const SubmitLockPrefix = "submitlock:"

// SubmitLockTTL bounds how long an in-flight submission can hold its lock.
const SubmitLockTTL = 30 * time.Second
