// Package algo provides step-emitting sorting and searching algorithms.
//
// Every algorithm is a resumable computation over a shared []int. Each call to
// [Run.Next] performs one indivisible unit of work and reports a [Step]: a
// snapshot of the array plus up to four highlighted positions.
//
//   - [BubbleSort]: emits one step per adjacent swap
//   - [MergeSort]: emits one step per head comparison and per remainder copy
//   - [QuickSort]: Lomuto partition, one step per comparison, swap and pivot placement
//   - [RadixSort]: LSD counting sort, one step per count, scatter and copy back
//   - [LinearSearch]: one step per inspected index, stops at the first match
//
// Merge and quick sort keep an explicit stack of frames, so a run can be
// suspended between any two steps without holding a goroutine.
//
// # Highlights
//
// CompareA and CompareB mark positions being read or compared. SwapA and SwapB
// mark positions written, swapped, or holding the pivot or a found target.
// Unused slots hold [None].
//
// # Example
//
//	run, _ := algo.NewQuickSort(arr, 0, len(arr)-1)
//	for step := range algo.Steps(run) {
//	    render(step)
//	}
//
// # Thread Safety
//
// A Run is NOT thread-safe and owns its array until it finishes.
package algo
