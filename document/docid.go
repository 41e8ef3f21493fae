package document

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewDocumentID mints a fresh document ID of the form
// SGM-<base36 millis>-<5 random base36 chars>, uppercased. IDs are generated
// on every render and never persisted; the random suffix keeps two renders
// within the same millisecond distinct.
func NewDocumentID() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return "SGM-" + ts + "-" + string(suffix)
}
