package workload

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// GammaSampler draws Gamma-distributed tick counts. A coefficient of
// variation above 1 gives bursty arrivals: clusters of processes separated
// by long gaps. Uses Marsaglia-Tsang for shape >= 1, with the boost
// transformation for shape < 1.
type GammaSampler struct {
	shape float64 // 1/CV²
	scale float64 // mean·CV²
	floor int64
}

func (s *GammaSampler) Sample(rng *rand.Rand) int64 {
	return clampFloor(gammaRand(rng, s.shape, s.scale), s.floor)
}

// gammaRand samples from Gamma(shape, scale).
// For shape < 1: Gamma(shape) = Gamma(shape+1) * U^(1/shape).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// WeibullSampler draws Weibull-distributed tick counts via the inverse CDF.
type WeibullSampler struct {
	shape float64 // k
	scale float64 // λ, in ticks
	floor int64
}

func (s *WeibullSampler) Sample(rng *rand.Rand) int64 {
	u := rng.Float64()
	if u == 0 {
		u = math.SmallestNonzeroFloat64 // -ln(0) = +Inf
	}
	return clampFloor(s.scale*math.Pow(-math.Log(u), 1.0/s.shape), s.floor)
}

func clampFloor(sample float64, floor int64) int64 {
	v := int64(math.Round(sample))
	if v < floor {
		return floor
	}
	return v
}

// meanAndCV reads the mean and cv params shared by gamma and weibull.
// cv defaults to 1.
func (d DistSpec) meanAndCV() (mean, cv float64, err error) {
	if mean, err = d.param("mean"); err != nil {
		return 0, 0, err
	}
	if mean <= 0 {
		return 0, 0, fmt.Errorf("%s mean must be positive, got %v", d.Type, mean)
	}
	cv = 1.0
	if _, ok := d.Params["cv"]; ok {
		if cv, err = d.param("cv"); err != nil {
			return 0, 0, err
		}
		if cv <= 0 {
			return 0, 0, fmt.Errorf("%s cv must be positive, got %v", d.Type, cv)
		}
	}
	return mean, cv, nil
}

func newGammaSampler(mean, cv float64, floor int64) IntSampler {
	shape := 1.0 / (cv * cv)
	if shape < 0.01 {
		logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to exponential", shape, cv)
		return &ExponentialSampler{mean: mean, floor: floor}
	}
	return &GammaSampler{shape: shape, scale: mean * cv * cv, floor: floor}
}

func newWeibullSampler(mean, cv float64, floor int64) IntSampler {
	k := weibullShapeFromCV(cv)
	return &WeibullSampler{shape: k, scale: mean / math.Gamma(1.0+1.0/k), floor: floor}
}

// weibullShapeFromCV finds k such that CV² = Γ(1+2/k)/Γ(1+1/k)² - 1, by
// bisection over k ∈ [0.1, 100] to within 0.001.
func weibullShapeFromCV(targetCV float64) float64 {
	lo, hi := 0.1, 100.0
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2.0
		cv := weibullCV(mid)
		if math.Abs(cv-targetCV) < 0.001 {
			return mid
		}
		// CV is monotonically decreasing in k
		if cv > targetCV {
			lo = mid
		} else {
			hi = mid
		}
	}
	logrus.Warnf("weibullShapeFromCV: bisection did not converge for CV=%.3f after 100 iterations; using k=%.3f", targetCV, (lo+hi)/2.0)
	return (lo + hi) / 2.0
}

// weibullCV computes the coefficient of variation for Weibull(k).
func weibullCV(k float64) float64 {
	g1 := math.Gamma(1.0 + 1.0/k)
	g2 := math.Gamma(1.0 + 2.0/k)
	return math.Sqrt(g2/(g1*g1) - 1.0)
}
