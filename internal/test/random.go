package test

import "math/rand/v2"

const alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomASCIIString returns a lower-case alphanumeric string with a length in [minLen, maxLen].
// Usernames are lower-cased on sign up, so the result round-trips unchanged.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = alphanumeric[rand.IntN(len(alphanumeric))]
	}
	return string(buf)
}
