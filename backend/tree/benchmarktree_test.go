package tree_test

import (
	"testing"

	"github.com/depositree/go-deposit-tree/backend/tree"
	"github.com/depositree/go-deposit-tree/common"
)

var (
	sinkHash  common.Hash
	sinkProof tree.Proof
)

func BenchmarkTreeDeposit(b *testing.B) {
	for _, factory := range getTreeFactories(b) {
		b.Run(factory.label, func(b *testing.B) {
			tr := factory.getTree(b)
			for i := 0; i < b.N; i++ {
				if err := tr.Deposit(common.HashFromNumber(uint64(i))); err != nil {
					b.Fatalf("failed to deposit leaf; %s", err)
				}
			}
		})
	}
}

func BenchmarkTreeRoot(b *testing.B) {
	for _, factory := range getTreeFactories(b) {
		b.Run(factory.label, func(b *testing.B) {
			tr := factory.getTree(b)
			for i := uint64(0); i < 1000; i++ {
				if err := tr.Deposit(common.HashFromNumber(i)); err != nil {
					b.Fatalf("failed to deposit leaf; %s", err)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var err error
				sinkHash, err = tr.Root()
				if err != nil {
					b.Fatalf("failed to compute root; %s", err)
				}
			}
		})
	}
}

func BenchmarkTreeGetMerkleProof(b *testing.B) {
	for _, factory := range getTreeFactories(b) {
		tr, canProve := factory.getTree(b).(tree.ProvingTree)
		if !canProve {
			continue
		}
		b.Run(factory.label, func(b *testing.B) {
			for i := uint64(0); i < 1000; i++ {
				if err := tr.Deposit(common.HashFromNumber(i)); err != nil {
					b.Fatalf("failed to deposit leaf; %s", err)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var err error
				sinkProof, err = tr.GetMerkleProof(uint64(i % 1000))
				if err != nil {
					b.Fatalf("failed to get proof; %s", err)
				}
			}
		})
	}
}
