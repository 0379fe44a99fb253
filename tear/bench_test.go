package tear_test

import (
	"fmt"
	"testing"

	"github.com/procflow/seqdecomp/flowgraph"
	"github.com/procflow/seqdecomp/sccycle"
	"github.com/procflow/seqdecomp/tear"
)

var benchWheelSizes = []int{6, 12, 20}

func BenchmarkBranchAndBoundWheel(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchWheelSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := flowgraph.GenerateWheel(n)
			if err != nil {
				b.Fatalf("GenerateWheel: %v", err)
			}
			sccRes := sccycle.FindSCCs(g)
			cycles := sccycle.EnumerateCycles(g, sccRes.SCCs)
			model, err := tear.BuildMIPModel(cycles)
			if err != nil {
				b.Fatalf("BuildMIPModel: %v", err)
			}
			solver := tear.NewBranchAndBoundHeuristic(0)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := solver.Solve(model); err != nil {
					b.Fatalf("Solve: %v", err)
				}
			}
		})
	}
}

func BenchmarkExhaustiveCycle(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 8, 12} {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := flowgraph.GenerateCycle(n)
			if err != nil {
				b.Fatalf("GenerateCycle: %v", err)
			}
			sccRes := sccycle.FindSCCs(g)
			cycles := sccycle.EnumerateCycles(g, sccRes.SCCs)
			model, err := tear.BuildMIPModel(cycles)
			if err != nil {
				b.Fatalf("BuildMIPModel: %v", err)
			}
			solver := tear.NewExhaustiveSolver()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := solver.Solve(model); err != nil {
					b.Fatalf("Solve: %v", err)
				}
			}
		})
	}
}
