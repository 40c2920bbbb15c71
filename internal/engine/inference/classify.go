package inference

import (
	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// Classify splits invocations into compile and link records and checks that
// every link input is the output of exactly one compile record.
func Classify(invocations []domain.Invocation, root string) (*domain.LogData, error) {
	data := &domain.LogData{Root: root}
	outputs := make(map[string]int)

	for i := range invocations {
		inv := invocations[i]
		if inv.CompileOnly {
			data.Compiles = append(data.Compiles, inv)
			outputs[inv.Output]++
			continue
		}
		data.Links = append(data.Links, inv)
	}

	for i := range data.Links {
		for _, src := range data.Links[i].Sources {
			n := outputs[src]
			if n == 0 {
				err := zerr.With(domain.ErrNoSourceForTarget, "target", data.Links[i].Output)
				return nil, zerr.With(err, "source", src)
			}
			if n > 1 {
				err := zerr.With(domain.ErrDuplicateCompileOutput, "target", data.Links[i].Output)
				return nil, zerr.With(err, "output", src)
			}
		}
	}

	return data, nil
}
