package mint

import (
	"errors"
	"strings"
)

// Messages shown to the user. The chain adapter is the only producer of the
// matched substrings; the phrasing on both sides must move together.
const (
	MsgFundsShortage  = "Not enough balance to cover the storage deposit. Top up your wallet and try again."
	MsgDuplicateTitle = "A token class with this title already exists. Pick a different title."
	MsgUnknown        = "Something went wrong. Please try again."
	MsgNoWallet       = "Wallet not connected."
	MsgNoConnection   = "No chain connection."
	MsgInFlight       = "A mint is already in progress."
)

var errUnknown = errors.New(MsgUnknown)

// classifyError maps a mint failure to its user-facing message. Errors that
// match neither known failure pass through verbatim.
func classifyError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "insufficient deposit"):
		return MsgFundsShortage
	case strings.Contains(msg, "token class ID already exists"):
		return MsgDuplicateTitle
	}
	return msg
}
