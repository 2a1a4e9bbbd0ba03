package configuration

import (
	commonconfig "github.com/G-Research/aliasedqueue/internal/common/config"
)

const (
	OrderingAscending  = "ascending"
	OrderingDescending = "descending"
)

const (
	OpEnqueue  = "enqueue"
	OpDequeue  = "dequeue"
	OpAddQueue = "addQueue"
	OpDelQueue = "delQueue"
	OpAliases  = "aliases"
	OpDrain    = "drain"
	OpShow     = "show"
)

// PlanConfig describes a queue to build and the operations to run against it.
type PlanConfig struct {
	// Either ascending (lower priority values are dequeued first) or descending.
	// Defaults to ascending.
	Ordering string `validate:"omitempty,oneof=ascending descending"`
	// Sub-queues to create the queue with. An alias may be listed more than once,
	// in which case the items are appended to the same sub-queue.
	Queues []QueueConfig `validate:"dive"`
	// Operations to apply, in order.
	Steps []StepConfig `validate:"dive"`
}

type QueueConfig struct {
	Alias    string `validate:"required"`
	Priority int
	// Either a single item or a list of items.
	Items commonconfig.ScalarOrList
}

type StepConfig struct {
	Op    string `validate:"required,oneof=enqueue dequeue addQueue delQueue aliases drain show"`
	Alias string `validate:"required_if=Op enqueue,required_if=Op addQueue,required_if=Op delQueue"`
	Item  string `validate:"required_if=Op enqueue"`
	// Priority of the sub-queue created by addQueue.
	Priority int
	// Number of items to dequeue. Zero means one.
	Count int `validate:"gte=0"`
}

// Descending reports whether higher priority values should be dequeued first.
func (c PlanConfig) Descending() bool {
	return c.Ordering == OrderingDescending
}
