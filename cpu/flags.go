package cpu

import (
	"math/bits"
)

// FlagMask selects condition flags.
type FlagMask uint8

const (
	FLAG_ZERO   = FlagMask(1 << 0)
	FLAG_SIGN   = FlagMask(1 << 1)
	FLAG_PARITY = FlagMask(1 << 2)
	FLAG_CARRY  = FlagMask(1 << 3)
	FLAG_AUX    = FlagMask(1 << 4)
	FLAG_ALL    = FLAG_ZERO | FLAG_SIGN | FLAG_PARITY | FLAG_CARRY | FLAG_AUX
)

// Bit positions of the flags in the PSW status byte, as pushed by PUSH PSW.
// Bit 1 always reads as one, bits 3 and 5 as zero.
const (
	PSW_CARRY  = 1 << 0
	PSW_ONE    = 1 << 1
	PSW_PARITY = 1 << 2
	PSW_AUX    = 1 << 4
	PSW_ZERO   = 1 << 6
	PSW_SIGN   = 1 << 7
)

// Flags are the condition codes.
type Flags struct {
	Zero     bool // Result was zero.
	Sign     bool // Bit 7 of the result.
	Parity   bool // Result has an even number of set bits.
	Carry    bool // Carry out of bit 7, or borrow.
	AuxCarry bool // Carry out of bit 3.
}

// Update copies the flags selected by mask from result.
func (fl *Flags) Update(result Flags, mask FlagMask) {
	if mask&FLAG_ZERO != 0 {
		fl.Zero = result.Zero
	}
	if mask&FLAG_SIGN != 0 {
		fl.Sign = result.Sign
	}
	if mask&FLAG_PARITY != 0 {
		fl.Parity = result.Parity
	}
	if mask&FLAG_CARRY != 0 {
		fl.Carry = result.Carry
	}
	if mask&FLAG_AUX != 0 {
		fl.AuxCarry = result.AuxCarry
	}
}

// PSW packs the flags into the status byte.
func (fl Flags) PSW() (psw byte) {
	psw = PSW_ONE
	if fl.Carry {
		psw |= PSW_CARRY
	}
	if fl.Parity {
		psw |= PSW_PARITY
	}
	if fl.AuxCarry {
		psw |= PSW_AUX
	}
	if fl.Zero {
		psw |= PSW_ZERO
	}
	if fl.Sign {
		psw |= PSW_SIGN
	}
	return
}

// SetPSW unpacks a status byte. Reserved bits are ignored.
func (fl *Flags) SetPSW(psw byte) {
	fl.Carry = psw&PSW_CARRY != 0
	fl.Parity = psw&PSW_PARITY != 0
	fl.AuxCarry = psw&PSW_AUX != 0
	fl.Zero = psw&PSW_ZERO != 0
	fl.Sign = psw&PSW_SIGN != 0
}

// String returns the flags in the "SZAPC" style, lower case when clear.
func (fl Flags) String() string {
	out := []byte("szapc")
	for n, set := range []bool{fl.Sign, fl.Zero, fl.AuxCarry, fl.Parity, fl.Carry} {
		if set {
			out[n] -= 'a' - 'A'
		}
	}
	return string(out)
}

// Parity is true if value has an even number of set bits.
func Parity(value byte) bool {
	return bits.OnesCount8(value)%2 == 0
}

// resultFlags computes Zero, Sign, Parity and Carry from a 9-bit wide result.
func resultFlags(result uint16) (fl Flags) {
	value := byte(result)
	fl.Zero = value == 0
	fl.Sign = value&0x80 != 0
	fl.Parity = Parity(value)
	fl.Carry = result > 0xff
	return
}
