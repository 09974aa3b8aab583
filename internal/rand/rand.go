// Package rand produces random identifiers for tests
package rand

import (
	"math/rand"
	"sync"
	"time"
)

const letters = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	mx  sync.Mutex
	src = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec
)

// LetterBytes returns a random slice of bytes picked in the [a-z]|[0-9] range
func LetterBytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	b := make([]byte, n)
	mx.Lock()
	defer mx.Unlock()
	for i := range b {
		b[i] = letters[src.Intn(len(letters))]
	}
	return b
}

// LetterString returns a random string picked in the [a-z]|[0-9] range
func LetterString(n int) string {
	return string(LetterBytes(n))
}

// NodeID returns a random platform identifier such as "N:package:3k9x0a1b"
func NodeID(kind string) string {
	return "N:" + kind + ":" + LetterString(8)
}
