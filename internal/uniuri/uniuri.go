package uniuri

import "crypto/rand"

const (
	// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
	StdLen = 16

	// FileLen is the length used for generated media file names.
	FileLen = 24

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

// StdChars is a set of standard characters allowed in uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random string of the standard length, consisting of
// standard characters.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a new random string of the provided length, consisting
// of the provided byte slice of allowed characters (maximum 256).
// Bytes outside the unbiased range are rejected to avoid modulo bias.
func NewLenChars(length int, chars []byte) string {
	if length == 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	maxRb := maxByteValue - (byteRange % clen)

	buf := make([]byte, length+(length/2)) // storage for random bytes
	out := make([]byte, length)            // storage for result

	i := 0

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxRb {
				// Skip this number to avoid modulo bias.
				continue
			}

			out[i] = chars[c%clen]
			i++

			if i == length {
				return string(out)
			}
		}
	}
}
