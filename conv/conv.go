// Package conv converts fixed-width integers to minimal decimal text.
// Every result is an exactly-sized buffer: the digit count plus one byte
// for a leading '-' on negatives, nothing else.
package conv

// digits counts decimal digits by repeated division. Division is exact at
// power-of-ten boundaries, where a floating-point logarithm is not.
func digits(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

func fill(dst []byte, u uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte('0' + u%10)
		u /= 10
	}
}

func formatUint(u uint64) []byte {
	buf := make([]byte, digits(u))
	fill(buf, u)
	return buf
}

func formatInt(v int64) []byte {
	if v >= 0 {
		return formatUint(uint64(v))
	}
	// Negate through uint64 so the width minimum stays exact.
	u := uint64(-(v + 1)) + 1
	buf := make([]byte, 1+digits(u))
	buf[0] = '-'
	fill(buf[1:], u)
	return buf
}

func FormatInt8(v int8) []byte { return formatInt(int64(v)) }

func FormatInt16(v int16) []byte { return formatInt(int64(v)) }

func FormatInt32(v int32) []byte { return formatInt(int64(v)) }

func FormatInt64(v int64) []byte { return formatInt(v) }

func FormatUint8(v uint8) []byte { return formatUint(uint64(v)) }

func FormatUint16(v uint16) []byte { return formatUint(uint64(v)) }

func FormatUint32(v uint32) []byte { return formatUint(uint64(v)) }

func FormatUint64(v uint64) []byte { return formatUint(v) }
