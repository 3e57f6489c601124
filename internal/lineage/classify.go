package lineage

import "github.com/btcsuite/btcd/btcutil"

// Role is the part an output plays in a payment.
type Role int

const (
	// RoleAmbiguous marks an output whose role cannot be decided by value.
	RoleAmbiguous Role = iota

	// RolePayment marks the output paying the counterparty.
	RolePayment

	// RoleChange marks the output returning funds to the payer.
	RoleChange
)

func (r Role) String() string {
	switch r {
	case RolePayment:
		return "payment"
	case RoleChange:
		return "change"
	default:
		return "ambiguous"
	}
}

// Classify assigns a role to each output of a two-output payment by value:
// the single output worth exactly expected is the payment, the other one is
// change. When no output or both outputs match, every role is
// RoleAmbiguous. Outputs are never assigned by position.
func Classify(outputs []Output, expected btcutil.Amount) []Role {
	roles := make([]Role, len(outputs))
	if len(outputs) != 2 {
		return roles
	}

	first := outputs[0].Value == expected
	second := outputs[1].Value == expected

	switch {
	case first && !second:
		roles[0], roles[1] = RolePayment, RoleChange
	case second && !first:
		roles[0], roles[1] = RoleChange, RolePayment
	}

	return roles
}
