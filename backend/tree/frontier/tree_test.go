package frontier

import (
	"errors"
	"testing"

	"github.com/depositree/go-deposit-tree/backend/tree"
	"github.com/depositree/go-deposit-tree/common"
)

var _ tree.Tree = &Tree{}

func TestFrontierTree_DepositIncrementsLeafCount(t *testing.T) {
	f := New()
	for i := uint64(0); i < 10; i++ {
		if got, want := f.LeafCount(), i; got != want {
			t.Fatalf("unexpected leaf count, wanted %d, got %d", want, got)
		}
		if err := f.Deposit(common.HashFromNumber(i)); err != nil {
			t.Fatalf("failed to deposit leaf %d; %s", i, err)
		}
	}
}

func TestFrontierTree_DepositAtCapacityFailsWithoutStateChange(t *testing.T) {
	f := New()
	if err := f.Deposit(common.HashFromNumber(1)); err != nil {
		t.Fatalf("failed to deposit leaf; %s", err)
	}
	f.SetLeafCount(tree.MaxLeafCount)

	before, err := f.Root()
	if err != nil {
		t.Fatalf("failed to compute root; %s", err)
	}

	if err := f.Deposit(common.HashFromNumber(2)); !errors.Is(err, tree.ErrTreeFull) {
		t.Fatalf("deposit into a full tree should fail with ErrTreeFull, got %v", err)
	}

	if got, want := f.LeafCount(), uint64(tree.MaxLeafCount); got != want {
		t.Errorf("failing deposit changed the leaf count, wanted %d, got %d", want, got)
	}
	after, err := f.Root()
	if err != nil {
		t.Fatalf("failed to compute root; %s", err)
	}
	if after != before {
		t.Errorf("failing deposit changed the root, %v != %v", before, after)
	}
}

func TestFrontierTree_DepositJustBelowCapacitySucceeds(t *testing.T) {
	f := New()
	f.SetLeafCount(tree.MaxLeafCount - 1)
	if err := f.Deposit(common.HashFromNumber(1)); err != nil {
		t.Fatalf("deposit below capacity should succeed, got %v", err)
	}
	if got, want := f.LeafCount(), uint64(tree.MaxLeafCount); got != want {
		t.Errorf("unexpected leaf count, wanted %d, got %d", want, got)
	}
	if err := f.Deposit(common.HashFromNumber(2)); !errors.Is(err, tree.ErrTreeFull) {
		t.Errorf("deposit into a full tree should fail with ErrTreeFull, got %v", err)
	}
}

func TestFrontierTree_BranchSlotsFollowBinaryCounter(t *testing.T) {
	f := New()

	leaf0 := common.HashFromNumber(10)
	if err := f.Deposit(leaf0); err != nil {
		t.Fatalf("failed to deposit leaf; %s", err)
	}
	// the first leaf is a lone left sibling at level 0
	if f.branch[0] != leaf0 {
		t.Errorf("unexpected branch slot 0, wanted %v, got %v", leaf0, f.branch[0])
	}

	leaf1 := common.HashFromNumber(11)
	if err := f.Deposit(leaf1); err != nil {
		t.Fatalf("failed to deposit leaf; %s", err)
	}
	// the second leaf completes the pair; the combined hash is carried to level 1
	if want := common.Keccak256Pair(leaf0, leaf1); f.branch[1] != want {
		t.Errorf("unexpected branch slot 1, wanted %v, got %v", want, f.branch[1])
	}
}

func TestFrontierTree_MemoryFootprintIsConstant(t *testing.T) {
	f := New()
	empty := f.GetMemoryFootprint().Total()
	for i := uint64(0); i < 100; i++ {
		if err := f.Deposit(common.HashFromNumber(i)); err != nil {
			t.Fatalf("failed to deposit leaf; %s", err)
		}
	}
	if got := f.GetMemoryFootprint().Total(); got != empty {
		t.Errorf("frontier tree footprint should not grow with deposits, %d != %d", got, empty)
	}
}
