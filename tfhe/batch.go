package tfhe

import (
	"runtime"
	"sync"

	"github.com/SUSYLABS/nufhe/math/num"
)

// BootstrapLUTBatch bootstraps a batch of LWE ciphertexts with respect
// to given LUT in parallel.
func (e *Evaluator[T]) BootstrapLUTBatch(cts []LWECiphertext[T], lut LookUpTable[T]) []LWECiphertext[T] {
	ctsOut := make([]LWECiphertext[T], len(cts))
	for i := range ctsOut {
		ctsOut[i] = NewLWECiphertext(e.Parameters)
	}
	e.BootstrapLUTBatchAssign(cts, lut, ctsOut)
	return ctsOut
}

// BootstrapLUTBatchAssign bootstraps a batch of LWE ciphertexts with
// respect to given LUT in parallel, and writes them to ctsOut.
//
// Each worker owns a shallow copy of the Evaluator, so the ciphertexts
// are processed independently. ctsOut must have the same length as cts.
func (e *Evaluator[T]) BootstrapLUTBatchAssign(cts []LWECiphertext[T], lut LookUpTable[T], ctsOut []LWECiphertext[T]) {
	if len(cts) != len(ctsOut) {
		panic("length mismatch between cts and ctsOut")
	}

	workerCount := num.Min(runtime.NumCPU(), len(cts))
	if workerCount <= 1 {
		for i := range cts {
			e.BootstrapLUTAssign(cts[i], lut, ctsOut[i])
		}
		return
	}

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := range cts {
			jobs <- i
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eWorker := e.ShallowCopy()
			for i := range jobs {
				eWorker.BootstrapLUTAssign(cts[i], lut, ctsOut[i])
			}
		}()
	}
	wg.Wait()
}

// BootstrapFuncBatch bootstraps a batch of LWE ciphertexts with respect
// to given function in parallel.
func (e *Evaluator[T]) BootstrapFuncBatch(cts []LWECiphertext[T], f func(int) int) []LWECiphertext[T] {
	e.GenLookUpTableAssign(f, e.buffer.lut)
	return e.BootstrapLUTBatch(cts, e.buffer.lut)
}
