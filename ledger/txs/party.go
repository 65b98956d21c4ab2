// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/utxoledger/utils/crypto/keys"
)

// Party is a named identity. Notaries are parties whose key may be composite.
type Party struct {
	Name string         `json:"name"`
	Key  keys.PublicKey `json:"-"`
}

// Equal returns true if both parties have the same name and key.
func (p Party) Equal(other Party) bool {
	return p.Name == other.Name && keys.Equal(p.Key, other.Key)
}

func (p Party) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Key)
}

// partyID is a comparable identity of a party.
type partyID struct {
	name string
	key  string
}

func (p Party) id() partyID {
	return partyID{
		name: p.Name,
		key:  keys.Fingerprint(p.Key),
	}
}

// DistinctParties returns the distinct parties of [parties] in order of first
// appearance.
func DistinctParties(parties []Party) []Party {
	var (
		distinct []Party
		seen     = make(map[partyID]struct{}, len(parties))
	)
	for _, party := range parties {
		id := party.id()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, party)
	}
	return distinct
}
