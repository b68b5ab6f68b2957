package chainsim

import (
	"encoding/json"
	"fmt"

	"github.com/mintgate-xyz/go-mintgate/wire"
)

// DecodeMsg rebuilds an instruction from its kind name and encoded
// body, e.g. when replaying a call journal.
func DecodeMsg(kind string, body json.RawMessage) (wire.Msg, error) {
	switch kind {
	case wire.IssueClass{}.MsgKind():
		return decode[wire.IssueClass](body)
	case wire.MintAsset{}.MsgKind():
		return decode[wire.MintAsset](body)
	case wire.BankSend{}.MsgKind():
		return decode[wire.BankSend](body)
	case wire.MintNFT{}.MsgKind():
		return decode[wire.MintNFT](body)
	case wire.BurnNFT{}.MsgKind():
		return decode[wire.BurnNFT](body)
	case wire.FreezeNFT{}.MsgKind():
		return decode[wire.FreezeNFT](body)
	case wire.UnfreezeNFT{}.MsgKind():
		return decode[wire.UnfreezeNFT](body)
	case wire.AddToWhitelist{}.MsgKind():
		return decode[wire.AddToWhitelist](body)
	case wire.RemoveFromWhitelist{}.MsgKind():
		return decode[wire.RemoveFromWhitelist](body)
	case wire.SendNFT{}.MsgKind():
		return decode[wire.SendNFT](body)
	default:
		return nil, fmt.Errorf("chainsim: unknown instruction kind %q", kind)
	}
}

func decode[T wire.Msg](body json.RawMessage) (wire.Msg, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("chainsim: decode %s: %w", v.MsgKind(), err)
	}
	return v, nil
}
