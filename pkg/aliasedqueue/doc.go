// Package aliasedqueue implements a priority queue composed of named FIFO sub-queues.
//
// Each sub-queue is identified by an alias. A key function maps aliases onto ordered
// values and sub-queues are kept sorted by those values, smallest first. Dequeue always
// takes the front item of the first non-empty sub-queue, so items from a lower-key
// sub-queue are returned before any item of a higher-key one, and items within a
// sub-queue are returned in the order they were enqueued.
//
// Basic usage:
//
//	q, err := aliasedqueue.New(
//	    []aliasedqueue.Entry[string, string]{
//	        {Alias: "urgent", Seed: aliasedqueue.One("page-oncall")},
//	        {Alias: "batch", Seed: aliasedqueue.Many("reindex", "compact")},
//	    },
//	    func(alias string) int { return priorities[alias] },
//	)
//	if err != nil {
//	    return err
//	}
//	_ = q.Enqueue("rotate-logs", "batch")
//	for {
//	    item, err := q.Dequeue()
//	    if errors.Is(err, aliasedqueue.ErrEmpty) {
//	        break
//	    }
//	    fmt.Println(item)
//	}
//
// Sub-queues with equal keys have no guaranteed relative order.
// The queue performs no locking; callers sharing one between goroutines must
// synchronise access themselves.
package aliasedqueue
