package entity

// OTPLength is the number of digit slots of every OTP entry.
const OTPLength = 4

// OTPInput holds the digit slots of an OTP entry. A zero byte is an empty slot.
type OTPInput [OTPLength]byte

// Set stores value in slot index. An empty value clears the slot. Anything other than a
// single ASCII digit is rejected and the input is returned unchanged with ok=false.
func (in OTPInput) Set(index int, value string) (out OTPInput, ok bool) {
	if index < 0 || index >= OTPLength {
		return in, false
	}
	if value == "" {
		in[index] = 0

		return in, true
	}
	if len(value) != 1 || value[0] < '0' || value[0] > '9' {
		return in, false
	}
	in[index] = value[0]

	return in, true
}

// Complete reports whether every slot holds a digit.
func (in OTPInput) Complete() bool {
	for _, d := range in {
		if d == 0 {
			return false
		}
	}

	return true
}

// Code concatenates the filled slots.
func (in OTPInput) Code() string {
	buf := make([]byte, 0, OTPLength)
	for _, d := range in {
		if d != 0 {
			buf = append(buf, d)
		}
	}

	return string(buf)
}

// Slots renders each slot as a string, empty when unfilled.
func (in OTPInput) Slots() []string {
	out := make([]string, OTPLength)
	for i, d := range in {
		if d != 0 {
			out[i] = string(rune(d))
		}
	}

	return out
}

// ParseOTP fills an input from a full code. ok is false unless code is exactly OTPLength digits.
func ParseOTP(code string) (OTPInput, bool) {
	var in OTPInput
	if len(code) != OTPLength {
		return in, false
	}
	for i := 0; i < OTPLength; i++ {
		var ok bool
		if in, ok = in.Set(i, code[i:i+1]); !ok {
			return OTPInput{}, false
		}
	}

	return in, true
}
