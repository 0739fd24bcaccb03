package preprocess

import (
	"fmt"
	"math"

	"gorgonia.org/tensor"
)

// smallNumber guards standardization against division by zero
const smallNumber float64 = 1e-6

// MovingStandardizeConfig describes a preprocessor that standardizes
// states using running estimates of their mean and standard
// deviation.
type MovingStandardizeConfig struct{}

// Type returns the type tag the configuration decodes from
func (m MovingStandardizeConfig) Type() Type { return MovingStandardize }

// Validate returns an error if the configuration describes an
// impossible preprocessor
func (m MovingStandardizeConfig) Validate() error { return nil }

// Create returns a new moving standardizer
func (m MovingStandardizeConfig) Create() Preprocessor {
	return &movingStandardizer{}
}

// movingStandardizer standardizes inputs with running mean and
// variance estimates, updated one sample at a time. Estimates are
// allocated on the first sample, which fixes the input shape for the
// lifetime of the statistics.
type movingStandardizer struct {
	sampleCount int
	meanEst     []float64
	stdSumEst   []float64
	shape       tensor.Shape
}

func (m *movingStandardizer) Apply(x *tensor.Dense) (*tensor.Dense,
	error) {
	data := x.Data().([]float64)

	if m.sampleCount == 0 {
		m.shape = x.Shape().Clone()
		m.meanEst = make([]float64, len(data))
		m.stdSumEst = make([]float64, len(data))
	} else if !m.shape.Eq(x.Shape()) {
		return nil, fmt.Errorf("moving standardize: input shape %v "+
			"does not match tracked shape %v", x.Shape(), m.shape)
	}

	m.sampleCount++
	if m.sampleCount == 1 {
		copy(m.meanEst, data)
	} else {
		for i, v := range data {
			update := v - m.meanEst[i]
			m.meanEst[i] += update / float64(m.sampleCount)
			m.stdSumEst[i] += update * update *
				float64(m.sampleCount-1) / float64(m.sampleCount)
		}
	}

	out := make([]float64, len(data))
	for i, v := range data {
		varEst := m.meanEst[i] * m.meanEst[i]
		if m.sampleCount > 1 {
			varEst = m.stdSumEst[i] / float64(m.sampleCount-1)
		}
		std := math.Sqrt(varEst) + smallNumber
		out[i] = (v - m.meanEst[i]) / std
	}

	return tensor.NewDense(tensor.Float64, x.Shape().Clone(),
		tensor.WithBacking(out)), nil
}

func (m *movingStandardizer) Reset() {
	m.sampleCount = 0
	m.meanEst = nil
	m.stdSumEst = nil
}
