package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/g-m-twostay/go-avl/Trees"
)

var (
	bAddN  = flag.Int("n", 1000000, "number of values inserted at the last step")
	bSteps = flag.Int("steps", 10, "number of tree sizes to measure, evenly spaced up to n")
	bMode  = flag.String("mode", "rand", "seed values: seq for ascending, rand for random")
)

var _R = rand.New(rand.NewSource(0))

func seed(n int) []int {
	all := make([]int, n)
	for i := range all {
		if *bMode == "seq" {
			all[i] = i
		} else {
			all[i] = _R.Int()
		}
	}
	return all
}

// averageDepth of all the nodes, the root being at depth 0.
func averageDepth(tree *Trees.AVLTree[int]) float64 {
	sum := 0
	tree.LevelOrder(func(_ int, d int) bool {
		sum += d
		return true
	})
	return float64(sum) / float64(max(tree.Size(), 1))
}

var __r1 bool

func measure(n int) {
	all := seed(n)
	tree := Trees.New[int]()
	for _, v := range all {
		tree.Insert(v)
	}
	bound := 1.4405*math.Log2(float64(tree.Size())+2) - 0.3277
	fmt.Printf("size: %d, height: %d, avl bound: %.2f, average depth: %.2f\n",
		tree.Size(), tree.Height(), bound, averageDepth(tree))

	ins := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			t := Trees.New[int]()
			for _, v := range all {
				t.Insert(v)
			}
		}
	})
	qry := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			for _, v := range all {
				__r1 = tree.Has(v)
			}
		}
	})
	rmv := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			t := Trees.New[int]()
			for _, v := range all {
				t.Insert(v)
			}
			b.StartTimer()
			for _, v := range all {
				t.Remove(v)
			}
		}
	})
	per := func(r testing.BenchmarkResult) float64 {
		return float64(r.NsPerOp()) / float64(n)
	}
	fmt.Printf("insert: %.1fns/op, has: %.1fns/op, remove: %.1fns/op\n", per(ins), per(qry), per(rmv))
}

func main() {
	testing.Init()
	flag.Parse()
	if *bAddN <= 0 || *bSteps <= 0 || (*bMode != "seq" && *bMode != "rand") {
		flag.Usage()
		os.Exit(2)
	}
	for i := 1; i <= *bSteps; i++ {
		measure(max((*bAddN)/(*bSteps)*i, 1))
	}
}
