package cpu

// add8 adds with carry-in, returning the 9-bit result and the carry out of bit 3.
func add8(a, b byte, cin uint16) (result uint16, aux bool) {
	result = uint16(a) + uint16(b) + cin
	aux = uint16(a&0xf)+uint16(b&0xf)+cin > 0xf
	return
}

// sub8 subtracts with borrow-in. Bit 8 of the result is set on borrow.
// The aux carry is that of the equivalent two's complement addition.
func sub8(a, b byte, bin uint16) (result uint16, aux bool) {
	result = uint16(a) - uint16(b) - bin
	aux = uint16(a&0xf)+uint16(^b&0xf)+(1-bin) > 0xf
	return
}

// doAlu performs an accumulator operation, and returns the 9-bit result
// along with every flag it would set.
func doAlu(op CodeOp, a byte, value byte, carry bool) (result uint16, fl Flags) {
	var cin uint16
	if carry {
		cin = 1
	}

	var aux bool
	switch op {
	case OP_ADD, OP_ADI:
		result, aux = add8(a, value, 0)
	case OP_ADC, OP_ACI:
		result, aux = add8(a, value, cin)
	case OP_SUB, OP_SUI, OP_CMP, OP_CPI:
		result, aux = sub8(a, value, 0)
	case OP_SBB, OP_SBI:
		result, aux = sub8(a, value, cin)
	case OP_ANA, OP_ANI:
		result = uint16(a & value)
		aux = (a|value)&0x08 != 0
	case OP_XRA, OP_XRI:
		result = uint16(a ^ value)
	case OP_ORA, OP_ORI:
		result = uint16(a | value)
	}

	fl = resultFlags(result)
	fl.AuxCarry = aux

	return
}

// doIncDec performs INR (delta 1) or DCR (delta 0xff). Carry is left to the caller.
func doIncDec(value byte, delta byte) (output byte, fl Flags) {
	output = value + delta
	fl = resultFlags(uint16(output))
	if delta == 1 {
		fl.AuxCarry = output&0xf == 0
	} else {
		fl.AuxCarry = output&0xf != 0xf
	}
	return
}

// doRotate performs the accumulator rotates, returning the new accumulator
// and carry.
func doRotate(op CodeOp, a byte, carry bool) (output byte, cout bool) {
	var cin byte
	if carry {
		cin = 1
	}

	switch op {
	case OP_RLC:
		output = a<<1 | a>>7
		cout = a&0x80 != 0
	case OP_RRC:
		output = a>>1 | a<<7
		cout = a&0x01 != 0
	case OP_RAL:
		output = a<<1 | cin
		cout = a&0x80 != 0
	case OP_RAR:
		output = a>>1 | cin<<7
		cout = a&0x01 != 0
	}
	return
}
