package ubn

// Length is the number of digits of a uniform number.
const Length = 8

// specialDigit is the index of the digit that enables the remainder 7 rule.
const specialDigit = 6

var weights = [Length]int{1, 2, 1, 2, 1, 2, 4, 1}

// ChecksumValidator validates uniform numbers with the weighted checksum.
type ChecksumValidator struct{}

// NewChecksumValidator creates a new ChecksumValidator instance.
func NewChecksumValidator() *ChecksumValidator {
	return &ChecksumValidator{}
}

// Check implements Validator with the package level Check.
func (v *ChecksumValidator) Check(number string) error {
	return Check(number)
}

// Validate reports whether number is a valid uniform number.
func Validate(number string) bool {
	return Check(number) == nil
}

// Check validates number and returns the reason it is rejected, or nil.
//
// Every digit is multiplied by its weight and the tens and units of the
// product are added up. The number is valid when the sum is divisible by 10,
// or when the sum ends in 7 and the seventh digit is 7.
func Check(number string) error {
	if len(number) != Length {
		return ErrInvalidLength
	}

	sum := 0
	for i := 0; i < Length; i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return ErrInvalidCharacter
		}

		product := int(c-'0') * weights[i]
		sum += product/10 + product%10
	}

	switch sum % 10 {
	case 0:
		return nil
	case 7:
		if number[specialDigit] == '7' {
			return nil
		}
	}

	return ErrChecksumMismatch
}
