// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/utxoledger/utils"
	"github.com/ava-labs/utxoledger/utils/set"
)

const (
	// MaxDepth bounds the nesting of composite keys.
	MaxDepth = 32

	compositeTypeID byte = 0xc0
)

var (
	ErrInvalidCompositeKey = errors.New("invalid composite key")

	errNoChildren           = errors.New("composite key has no children")
	errZeroThreshold        = errors.New("threshold must be positive")
	errNilChild             = errors.New("nil child key")
	errZeroWeight           = errors.New("child weight must be positive")
	errDuplicateChild       = errors.New("duplicate child key")
	errThresholdUnreachable = errors.New("threshold exceeds the total weight of the children")
	errTooDeep              = errors.New("composite key nesting too deep")
)

var _ utils.Sortable[NodeAndWeight] = NodeAndWeight{}

// NodeAndWeight is a child of a composite key.
type NodeAndWeight struct {
	Node   PublicKey
	Weight uint32
}

// Less orders children by the encoding of their keys.
func (n NodeAndWeight) Less(other NodeAndWeight) bool {
	return bytes.Compare(n.Node.Bytes(), other.Node.Bytes()) < 0
}

// CompositeKey is a weighted threshold over child keys. Children may be
// composite keys themselves. A composite key is fulfilled when the summed
// weight of its fulfilled children reaches [Threshold].
type CompositeKey struct {
	Threshold uint32
	Children  []NodeAndWeight

	bytes []byte
}

// NewCompositeKey returns a verified composite key with its children in
// canonical order.
func NewCompositeKey(threshold uint32, children []NodeAndWeight) (*CompositeKey, error) {
	for _, child := range children {
		if child.Node == nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCompositeKey, errNilChild)
		}
	}
	sorted := utils.SortedClone(children)

	key := &CompositeKey{
		Threshold: threshold,
		Children:  sorted,
	}
	if err := key.Verify(); err != nil {
		return nil, err
	}
	key.bytes = key.encode()
	return key, nil
}

// Verify checks that the key, and every nested key, is satisfiable and free
// of duplicate children.
func (k *CompositeKey) Verify() error {
	if err := k.verify(0); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCompositeKey, err)
	}
	return nil
}

func (k *CompositeKey) verify(depth int) error {
	switch {
	case depth >= MaxDepth:
		return errTooDeep
	case len(k.Children) == 0:
		return errNoChildren
	case k.Threshold == 0:
		return errZeroThreshold
	}

	var (
		totalWeight uint64
		seen        = set.NewSet[string](len(k.Children))
	)
	for _, child := range k.Children {
		if child.Node == nil {
			return errNilChild
		}
		if child.Weight == 0 {
			return errZeroWeight
		}
		fp := Fingerprint(child.Node)
		if seen.Contains(fp) {
			return fmt.Errorf("%w: %s", errDuplicateChild, child.Node)
		}
		seen.Add(fp)
		totalWeight += uint64(child.Weight)

		if nested, ok := child.Node.(*CompositeKey); ok {
			if err := nested.verify(depth + 1); err != nil {
				return err
			}
		}
	}
	if uint64(k.Threshold) > totalWeight {
		return fmt.Errorf("%w: threshold %d, total weight %d", errThresholdUnreachable, k.Threshold, totalWeight)
	}
	return nil
}

// Bytes encodes the key as
// [typeID || threshold || numChildren || (weight || len || child)...].
func (k *CompositeKey) Bytes() []byte {
	if k.bytes != nil {
		return k.bytes
	}
	return k.encode()
}

func (k *CompositeKey) encode() []byte {
	b := []byte{compositeTypeID}
	b = binary.BigEndian.AppendUint32(b, k.Threshold)
	b = binary.BigEndian.AppendUint32(b, uint32(len(k.Children)))
	for _, child := range k.Children {
		childBytes := child.Node.Bytes()
		b = binary.BigEndian.AppendUint32(b, child.Weight)
		b = binary.BigEndian.AppendUint32(b, uint32(len(childBytes)))
		b = append(b, childBytes...)
	}
	return b
}

func (k *CompositeKey) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "CompositeKey(threshold=%d, children=[", k.Threshold)
	for i, child := range k.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s:%d", child.Node, child.Weight)
	}
	sb.WriteString("])")
	return sb.String()
}

func (k *CompositeKey) visitLeaves(f func(PublicKey)) {
	for _, child := range k.Children {
		if nested, ok := child.Node.(*CompositeKey); ok {
			nested.visitLeaves(f)
			continue
		}
		f(child.Node)
	}
}

func (k *CompositeKey) isFulfilledBy(signers set.Set[string]) bool {
	var weight uint64
	for _, child := range k.Children {
		if !isFulfilledBy(child.Node, signers) {
			continue
		}
		weight += uint64(child.Weight)
		if weight >= uint64(k.Threshold) {
			return true
		}
	}
	return false
}

// Builder collects weighted children for a composite key.
type Builder struct {
	children []NodeAndWeight
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddKey adds [key] with [weight].
func (b *Builder) AddKey(key PublicKey, weight uint32) *Builder {
	b.children = append(b.children, NodeAndWeight{
		Node:   key,
		Weight: weight,
	})
	return b
}

// AddKeys adds every key with weight 1.
func (b *Builder) AddKeys(keys ...PublicKey) *Builder {
	for _, key := range keys {
		b.AddKey(key, 1)
	}
	return b
}

// Build returns the composite key requiring [threshold]. A zero threshold
// requires the total weight of the children. A single child with weight 1 and
// no explicit threshold is returned as is.
func (b *Builder) Build(threshold uint32) (PublicKey, error) {
	if threshold == 0 {
		if len(b.children) == 1 && b.children[0].Weight == 1 {
			return b.children[0].Node, nil
		}
		var total uint64
		for _, child := range b.children {
			total += uint64(child.Weight)
		}
		if total > uint64(^uint32(0)) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCompositeKey, errThresholdUnreachable)
		}
		threshold = uint32(total)
	}
	return NewCompositeKey(threshold, b.children)
}
