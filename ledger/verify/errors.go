// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"errors"
	"fmt"
)

// ErrStructuralInvariant is matched by every error returned by this package.
var ErrStructuralInvariant = errors.New("structural invariant violated")

var (
	ErrNoSignatories             = fmt.Errorf("%w: no signatories", ErrStructuralInvariant)
	ErrNoInputsOrOutputs         = fmt.Errorf("%w: no inputs or outputs", ErrStructuralInvariant)
	ErrNoCommands                = fmt.Errorf("%w: no commands", ErrStructuralInvariant)
	ErrNilNotary                 = fmt.Errorf("%w: nil notary", ErrStructuralInvariant)
	ErrNilTimeWindow             = fmt.Errorf("%w: nil time window", ErrStructuralInvariant)
	ErrEncumbranceGroupTooSmall  = fmt.Errorf("%w: encumbrance group too small", ErrStructuralInvariant)
	ErrInconsistentInputNotaries = fmt.Errorf("%w: inconsistent input notaries", ErrStructuralInvariant)
	ErrInputNotaryMismatch       = fmt.Errorf("%w: input notary mismatch", ErrStructuralInvariant)
)
