package discovery

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/Lutefd/currency-conversion/internal/model"
)

// RoundRobin rotates through the instances it is given. Instances are ordered
// by id before selection so the rotation does not depend on registry order.
type RoundRobin struct {
	next atomic.Uint64
}

func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

func (b *RoundRobin) Choose(instances []model.ServiceInstance) (model.ServiceInstance, error) {
	if len(instances) == 0 {
		return model.ServiceInstance{}, fmt.Errorf("%w: no registered instances", model.ErrUpstreamUnavailable)
	}

	sorted := make([]model.ServiceInstance, len(instances))
	copy(sorted, instances)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	n := b.next.Add(1) - 1
	return sorted[n%uint64(len(sorted))], nil
}
