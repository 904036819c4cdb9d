package contract

import (
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/klaybind/klaybind/pkg/descriptor"
)

// DecodeEvents returns every occurrence of the named event emitted by c in
// receipt, decoded into T. Indexed fields of dynamic type decode to their
// topic hash, so the matching field of T must be a common.Hash.
func DecodeEvents[T any](c *Contract, receipt *types.Receipt, name string) ([]*T, error) {
	ev, err := c.filterableEvent(name)
	if err != nil {
		return nil, err
	}

	var events []*T
	for _, log := range c.matchingLogs(receipt, ev) {
		out := new(T)
		if err := c.bound.UnpackLog(out, ev.Name, *log); err != nil {
			return nil, fmt.Errorf("failed to decode %s in log %d: %w", ev.Signature, log.Index, err)
		}
		events = append(events, out)
	}
	return events, nil
}

// DecodeEventMaps is DecodeEvents keyed by ABI field name instead of a typed record.
func DecodeEventMaps(c *Contract, receipt *types.Receipt, name string) ([]map[string]any, error) {
	ev, err := c.filterableEvent(name)
	if err != nil {
		return nil, err
	}

	var events []map[string]any
	for _, log := range c.matchingLogs(receipt, ev) {
		out := make(map[string]any, len(ev.Fields))
		if err := c.bound.UnpackLogIntoMap(out, ev.Name, *log); err != nil {
			return nil, fmt.Errorf("failed to decode %s in log %d: %w", ev.Signature, log.Index, err)
		}
		events = append(events, out)
	}
	return events, nil
}

// DecodeLog identifies a log by its first topic and decodes it into a map.
// Logs of other contracts are decoded too, as long as the topic is known.
func (c *Contract) DecodeLog(log types.Log) (*descriptor.Event, map[string]any, error) {
	if len(log.Topics) == 0 {
		return nil, nil, fmt.Errorf("log %d has no topics: %w", log.Index, ErrUnsupportedOperation)
	}
	ev, ok := c.desc.EventByTopic(log.Topics[0])
	if !ok {
		return nil, nil, fmt.Errorf("%s has no event with topic %s: %w", c.desc.Name, log.Topics[0].Hex(), ErrUnknownEvent)
	}
	out := make(map[string]any, len(ev.Fields))
	if err := c.bound.UnpackLogIntoMap(out, ev.Name, log); err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s in log %d: %w", ev.Signature, log.Index, err)
	}
	return ev, out, nil
}

func (c *Contract) filterableEvent(name string) (*descriptor.Event, error) {
	ev, ok := c.desc.Event(name)
	if !ok {
		return nil, fmt.Errorf("%s has no event %q: %w", c.desc.Name, name, ErrUnknownEvent)
	}
	if ev.Anonymous {
		return nil, fmt.Errorf("%s.%s is anonymous and cannot be matched by topic: %w", c.desc.Name, ev.Name, ErrUnsupportedOperation)
	}
	return ev, nil
}

func (c *Contract) matchingLogs(receipt *types.Receipt, ev *descriptor.Event) []*types.Log {
	var logs []*types.Log
	for _, log := range receipt.Logs {
		if log.Address != c.address || len(log.Topics) == 0 || log.Topics[0] != ev.Topic {
			continue
		}
		logs = append(logs, log)
	}
	return logs
}
