// Demonstration driver for the ll package. Exercises the API
// sequentially, then from several goroutines at once. Not part of the
// library contract.
package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/pengdafu/ll-golang/ll"
	"github.com/pengdafu/ll-golang/util"
)

func numTeardown(n *int) {
	*n *= -1 // so removals are visible afterwards
}

func numPrinter(n *int) {
	fmt.Printf(" %d", *n)
}

func numEquals(val, ref *int) int {
	return *val - *ref
}

func main() {
	sequential()
	concurrent()
	hashed()
}

func sequential() {
	nums := make([]int, 7)
	for i := range nums {
		nums[i] = i
	}

	list := ll.New(numTeardown)
	list.SetPrinter(numPrinter)

	list.InsertFirst(&nums[2])
	list.InsertFirst(&nums[1])
	list.InsertFirst(&nums[0])
	list.InsertLast(&nums[3])
	list.InsertLast(&nums[4])
	list.InsertLast(&nums[5])
	list.InsertN(&nums[6], 6)
	list.Print() // (ll: 0 1 2 3 4 5 6), length: 7

	list.RemoveFirst()
	list.RemoveN(1)
	list.RemoveSearch(func(n *int) bool { return *n == 3 })
	five := 5
	list.RemoveFind(numEquals, &five)
	list.Print() // (ll: 1 4 6), length: 3

	if v, ok := list.GetFirst(); ok {
		log.Printf("first value: %d", *v)
	}

	list.Clear()
	// no effect, the list is invalid now
	list.InsertLast(&nums[0])
	list.Print()
	list.Delete()
}

func concurrent() {
	const workers = 8
	const perWorker = 1000

	list := ll.New(ll.NoTeardown[int])

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				list.InsertLast(w*perWorker + i)
				if i%3 == 0 {
					list.RemoveFirst()
				}
				list.GetN(i % 16)
			}
		}(w)
	}
	wg.Wait()

	log.Printf("concurrent demo done, length: %d", list.Length())
	list.Delete()
}

func hashed() {
	util.SetHashSeed(util.GetRandomBytes(16))

	hashEquals := func(val, ref []byte) int {
		if util.SipHash(val) == util.SipHash(ref) {
			return 0
		}
		return 1
	}

	keys := ll.New(ll.NoTeardown[[]byte])
	for _, s := range []string{"alpha", "beta", "gamma"} {
		keys.InsertLast(util.String2Bytes(s))
	}

	if v, ok := keys.Find(hashEquals, util.String2Bytes("beta")); ok {
		log.Printf("found %s (hash %016x)", util.Bytes2String(v), util.SipHash(v))
	}
	keys.RemoveFind(hashEquals, util.String2Bytes("alpha"))
	log.Printf("hashed demo done, length: %d", keys.Length())
	keys.Delete()
}
