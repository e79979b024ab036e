package builder

import (
	"strconv"

	"github.com/vk/nnc/internal/config"
)

// aliases is the transient naming state of one Build call.
type aliases struct {
	// reserved holds every name the descriptor mentions plus every name
	// generated so far.
	reserved map[string]struct{}
	// latest maps a declared name to the name of its most recent write.
	latest map[string]string
	// next is the per-base suffix counter.
	next map[string]int
}

func newAliases(net *config.Net) *aliases {
	a := &aliases{
		reserved: make(map[string]struct{}),
		latest:   make(map[string]string),
		next:     make(map[string]int),
	}
	for _, name := range net.Inputs {
		a.reserve(name)
	}
	for _, l := range net.Layers {
		for _, name := range l.Bottom {
			a.reserve(name)
		}
		for _, name := range l.Top {
			a.reserve(name)
		}
	}
	return a
}

func (a *aliases) reserve(name string) {
	a.reserved[name] = struct{}{}
}

// resolve returns the live name a bottom reference reads.
func (a *aliases) resolve(name string) string {
	if alias, ok := a.latest[name]; ok {
		return alias
	}
	return name
}

// rename generates the next free "<base>_<n>" and redirects base to it.
func (a *aliases) rename(base string) string {
	for {
		candidate := base + "_" + strconv.Itoa(a.next[base])
		a.next[base]++
		if _, taken := a.reserved[candidate]; taken {
			continue
		}
		a.reserve(candidate)
		a.latest[base] = candidate
		return candidate
	}
}
