package calendar

import "fmt"

// lineBuffer is an append-only line with a capacity fixed at construction.
// Appending past the capacity is a layout bug and panics.
type lineBuffer struct {
	data []byte
}

func newLineBuffer(capacity int) *lineBuffer {
	if capacity <= 0 {
		panic(fmt.Sprintf("calendar: invalid line capacity %d", capacity))
	}
	return &lineBuffer{data: make([]byte, 0, capacity)}
}

func (b *lineBuffer) Len() int { return len(b.data) }

func (b *lineBuffer) appendByte(c byte) {
	if len(b.data) == cap(b.data) {
		panic(fmt.Sprintf("calendar: line overflow at %d bytes", cap(b.data)))
	}
	b.data = append(b.data, c)
}

func (b *lineBuffer) appendString(s string) {
	for i := 0; i < len(s); i++ {
		b.appendByte(s[i])
	}
}

func (b *lineBuffer) appendSpaces(n int) {
	for i := 0; i < n; i++ {
		b.appendByte(' ')
	}
}

// appendNumber writes n in decimal without padding.
func (b *lineBuffer) appendNumber(n int) {
	var digits [4]byte
	i := len(digits)
	for {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	for _, c := range digits[i:] {
		b.appendByte(c)
	}
}

// appendDay writes a day right-aligned in two columns.
func (b *lineBuffer) appendDay(day int) {
	if day < 10 {
		b.appendByte(' ')
	} else {
		b.appendByte(byte('0' + day/10))
	}
	b.appendByte(byte('0' + day%10))
}

// truncate drops the tail of the line down to n bytes.
func (b *lineBuffer) truncate(n int) {
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("calendar: truncate to %d of %d", n, len(b.data)))
	}
	b.data = b.data[:n]
}

func (b *lineBuffer) String() string { return string(b.data) }

// digitLen is the number of decimal digits in a year.
func digitLen(n int) int {
	switch {
	case n > 999:
		return 4
	case n > 99:
		return 3
	case n > 9:
		return 2
	}
	return 1
}
