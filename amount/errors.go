package amount

import "errors"

var (
	// ErrOverflow reports a value that cannot be represented losslessly
	// in the width a transfer instruction carries. This is a
	// configuration error, not something to round away.
	ErrOverflow = errors.New("amount: value overflows transfer width")

	// ErrFeePercent reports a fee percentage outside [0, 100].
	ErrFeePercent = errors.New("amount: fee percent out of range")
)
