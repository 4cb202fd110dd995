package crossbar

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/synapse"
)

// Kind selects how a crossbar realises each synapse.
type Kind int

// Synapse kinds.
const (
	// PairUnidirectional uses two unidirectional devices per synapse.
	PairUnidirectional Kind = iota
	// PairBidirectional uses two bidirectional devices per synapse.
	PairBidirectional
	// SingleBidirectional uses one bidirectional device per synapse.
	SingleBidirectional
)

func (k Kind) String() string {
	switch k {
	case PairUnidirectional:
		return "pair"
	case PairBidirectional:
		return "pair-bidirectional"
	case SingleBidirectional:
		return "single-bidirectional"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pair", "pair-unidirectional":
		return PairUnidirectional, nil
	case "pair-bidirectional":
		return PairBidirectional, nil
	case "single", "single-bidirectional", "bidirectional":
		return SingleBidirectional, nil
	default:
		return 0, fmt.Errorf("crossbar: unknown synapse kind %q", s)
	}
}

func (k Kind) newSynapse(
	name string,
	devBuilder device.Builder,
	rng *rand.Rand,
) synapse.Synapse {
	devBuilder = devBuilder.WithRand(rng)

	switch k {
	case PairBidirectional:
		devBuilder = devBuilder.WithBidirectional()
		fallthrough
	case PairUnidirectional:
		return synapse.NewPair(
			devBuilder.Build(name+".Positive"),
			devBuilder.Build(name+".Negative"),
		)
	case SingleBidirectional:
		return synapse.NewSingle(
			devBuilder.WithBidirectional().Build(name),
		)
	default:
		panic(fmt.Sprintf("crossbar: unknown synapse kind %d", int(k)))
	}
}
