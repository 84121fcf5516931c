package generators

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// ArrivalConfig parameterizes TransferArrivals.
type ArrivalConfig struct {
	ArrivalCount        int
	EarliestArrival     simtime.SimTime
	LatestArrival       simtime.SimTime
	TurnaroundTime      simtime.SimTime
	MinConnectionTime   simtime.SimTime
	MaxItemsPerTransfer int
}

type arrival struct {
	time     simtime.SimTime
	location fleet.LocationId
}

type departure struct {
	time     simtime.SimTime
	location fleet.LocationId
}

// TransferArrivals builds a random slate of TransferJobs connecting
// arriving and departing berths, the way transfer_generator.py pairs
// airport arrivals with onward departures. Each arrival and its matching
// departure share a freshly minted berth location (a uuid, standing in for
// the original's sequential berth id — this package is the one place in
// the engine that needs an opaque, collision-free location identity rather
// than a small dense range). rng is caller-supplied so scenarios are
// reproducible given a seed.
func TransferArrivals(cfg ArrivalConfig, rng *rand.Rand, nextJobID func() fleet.JobId) []JobSpec {
	arrivals := make([]arrival, cfg.ArrivalCount)
	departures := make([]departure, cfg.ArrivalCount)

	for i := range arrivals {
		berth := fleet.LocationId(uuid.NewString())
		t := randRange(rng, cfg.EarliestArrival, cfg.LatestArrival)
		arrivals[i] = arrival{time: t, location: berth}
		departures[i] = departure{time: t + cfg.TurnaroundTime, location: berth}
	}

	var jobs []JobSpec
	meanConn := float64(cfg.MinConnectionTime) * 1.5
	stdDev := 25.0 * float64(cfg.MinConnectionTime) * float64(cfg.MinConnectionTime)

	for _, a := range arrivals {
		for _, d := range departures {
			if d.time <= a.time || d.location == a.location {
				continue
			}
			connTime := d.time - a.time
			if connTime < cfg.MinConnectionTime {
				continue
			}
			p := gaussianWeight(float64(connTime), meanConn, stdDev)
			if p > 0.39 {
				p = 0.39
			}
			if rng.Float64() >= p {
				continue
			}

			quantity := 1 + int(rng.Float64()*float64(cfg.MaxItemsPerTransfer))
			jobs = append(jobs, JobSpec{
				Job: &fleet.TransferJob{
					Id:              nextJobID(),
					Quantity:        quantity,
					PickupLocation:  a.location,
					PickupAfter:     a.time,
					DropoffLocation: d.location,
					DropoffBefore:   d.time,
					State:           fleet.BeforePickup,
				},
				IntroduceAt: a.time,
			})
		}
	}

	return jobs
}

// gaussianWeight evaluates a normal density at x relative to its peak at
// mean, scaled by stdDev, matching the shape (if not the exact scipy
// parameterization) of the original's norm(loc, scale).pdf ratio test.
func gaussianWeight(x, mean, stdDev float64) float64 {
	if stdDev <= 0 {
		return 0
	}
	z := (x - mean) / stdDev
	return math.Exp(-0.5 * z * z)
}

func randRange(rng *rand.Rand, lo, hi simtime.SimTime) simtime.SimTime {
	if hi <= lo {
		return lo
	}
	return lo + simtime.SimTime(rng.Int64N(int64(hi-lo)))
}
