package amount

import (
	"fmt"

	"github.com/holiman/uint256"
)

var hundred = uint256.NewInt(100)

// Split divides a payment into the protocol fee and the treasury
// remainder. The fee is floor(total * feePercent / 100); the remainder
// absorbs any truncated fraction, so protocol + treasury always equals
// the full payment.
func Split(total *uint256.Int, feePercent uint64) (protocol, treasury uint64, err error) {
	if feePercent > 100 {
		return 0, 0, fmt.Errorf("%w: %d", ErrFeePercent, feePercent)
	}

	// The whole payment must fit the transfer width, not just each
	// half: above 2^64-1 both halves can fit uint64 individually while
	// protocol + treasury == total becomes unrepresentable.
	if !total.IsUint64() {
		return 0, 0, fmt.Errorf("%w: %s exceeds transfer width", ErrOverflow, total.Dec())
	}

	fee := new(uint256.Int).Mul(total, uint256.NewInt(feePercent))
	fee.Div(fee, hundred)
	rest := new(uint256.Int).Sub(total, fee)

	return fee.Uint64(), rest.Uint64(), nil
}
