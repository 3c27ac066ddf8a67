package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// IntSampler draws non-negative integer tick counts.
type IntSampler interface {
	// Sample returns a value >= the sampler's floor.
	Sample(rng *rand.Rand) int64
}

// ConstantSampler always returns the same value.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 { return s.value }

// UniformSampler draws uniformly from [min, max].
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}

// ExponentialSampler produces exponentially-distributed values, rounded and
// clamped below at floor.
type ExponentialSampler struct {
	mean  float64
	floor int64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	result := int64(math.Round(rng.ExpFloat64() * s.mean))
	if result < s.floor {
		return s.floor
	}
	return result
}

// DistSpec describes an integer distribution in a workload spec.
//
//	constant:    value
//	uniform:     min, max
//	exponential: mean
//	gamma:       mean, cv (default 1)
//	weibull:     mean, cv (default 1)
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params"`
}

var validDistTypes = map[string]bool{
	"constant":    true,
	"uniform":     true,
	"exponential": true,
	"gamma":       true,
	"weibull":     true,
}

func (d DistSpec) param(name string) (float64, error) {
	v, ok := d.Params[name]
	if !ok {
		return 0, fmt.Errorf("%s distribution requires param %q", d.Type, name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("param %q must be a finite number, got %f", name, v)
	}
	return v, nil
}

// NewSampler builds an IntSampler whose samples are never below floor.
func NewSampler(d DistSpec, floor int64) (IntSampler, error) {
	if !validDistTypes[d.Type] {
		return nil, fmt.Errorf("unknown distribution type %q; valid: constant, uniform, exponential, gamma, weibull", d.Type)
	}
	switch d.Type {
	case "constant":
		v, err := d.param("value")
		if err != nil {
			return nil, err
		}
		if int64(v) < floor {
			return nil, fmt.Errorf("constant value %v below minimum %d", v, floor)
		}
		return &ConstantSampler{value: int64(v)}, nil
	case "uniform":
		lo, err := d.param("min")
		if err != nil {
			return nil, err
		}
		hi, err := d.param("max")
		if err != nil {
			return nil, err
		}
		if int64(lo) < floor || hi < lo {
			return nil, fmt.Errorf("uniform range [%v, %v] invalid (minimum %d)", lo, hi, floor)
		}
		return &UniformSampler{min: int64(lo), max: int64(hi)}, nil
	case "exponential":
		mean, err := d.param("mean")
		if err != nil {
			return nil, err
		}
		if mean <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %v", mean)
		}
		return &ExponentialSampler{mean: mean, floor: floor}, nil
	case "gamma", "weibull":
		mean, cv, err := d.meanAndCV()
		if err != nil {
			return nil, err
		}
		if d.Type == "gamma" {
			return newGammaSampler(mean, cv, floor), nil
		}
		return newWeibullSampler(mean, cv, floor), nil
	default:
		panic(fmt.Sprintf("unhandled distribution type %q", d.Type))
	}
}
