// Package amount provides payment arithmetic for the sale contract.
// Prices and supply caps are 256-bit unsigned integers; the transfer
// instructions handed to the chain carry 64-bit amounts, so every
// narrowing here is checked rather than truncated.
package amount

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// Coin is a denominated amount as it appears in attached funds and in
// transfer instructions.
type Coin struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

// NewCoin creates a coin.
func NewCoin(denom string, amount uint64) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func (c Coin) String() string {
	return strconv.FormatUint(c.Amount, 10) + c.Denom
}

// ParseCoin parses a string of the form "100uscrt".
func ParseCoin(s string) (Coin, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return Coin{}, fmt.Errorf("invalid coin %q", s)
	}
	n, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return Coin{}, fmt.Errorf("invalid coin %q: %w", s, err)
	}
	return Coin{Denom: s[i:], Amount: n}, nil
}

// ParseCoins parses a comma-separated coin list.
func ParseCoins(s string) ([]Coin, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var coins []Coin
	for _, part := range strings.Split(s, ",") {
		c, err := ParseCoin(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, nil
}

// Find returns the attached amount of the given denomination as a wide
// integer. A missing denomination counts as zero funds.
func Find(funds []Coin, denom string) *uint256.Int {
	for _, c := range funds {
		if c.Denom == denom {
			return uint256.NewInt(c.Amount)
		}
	}
	return uint256.NewInt(0)
}

// ToUint64 narrows a wide integer to the 64-bit width used by transfer
// instructions. Values that do not fit are rejected with ErrOverflow;
// the numeric value is never truncated.
func ToUint64(x *uint256.Int) (uint64, error) {
	v, overflow := x.Uint64WithOverflow()
	if overflow {
		return 0, fmt.Errorf("%w: %s exceeds 64 bits", ErrOverflow, x.Dec())
	}
	return v, nil
}
