package digestcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteSortedNonZeroIntMap_OrderIndependent(t *testing.T) {
	var a, b bytes.Buffer
	var tmp [8]byte
	WriteSortedNonZeroIntMap(&a, &tmp, map[string]int{"Inserter": 5, "OreMine": 2, "TransportBelt": 0})
	WriteSortedNonZeroIntMap(&b, &tmp, map[string]int{"OreMine": 2, "Inserter": 5})
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriteF64_DistinguishesBits(t *testing.T) {
	var a, b bytes.Buffer
	var tmp [8]byte
	x, y := 0.1, 0.2
	WriteF64(&a, &tmp, x+y)
	WriteF64(&b, &tmp, 0.3)
	assert.NotEqual(t, a.Bytes(), b.Bytes())
}

func TestWriteString_LengthPrefixed(t *testing.T) {
	var a, b bytes.Buffer
	var tmp [8]byte
	WriteString(&a, &tmp, "ab")
	WriteString(&a, &tmp, "c")
	WriteString(&b, &tmp, "a")
	WriteString(&b, &tmp, "bc")
	assert.NotEqual(t, a.Bytes(), b.Bytes())
	assert.Equal(t, BoolByte(true), byte(1))
	assert.Equal(t, BoolByte(false), byte(0))
}
