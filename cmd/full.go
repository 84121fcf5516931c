package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ianphil/pyRoute13/agent"
	"github.com/ianphil/pyRoute13/assign"
	"github.com/ianphil/pyRoute13/config"
	"github.com/ianphil/pyRoute13/dispatch"
	"github.com/ianphil/pyRoute13/driver"
	"github.com/ianphil/pyRoute13/estimate"
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/generators"
	"github.com/ianphil/pyRoute13/planner"
	"github.com/ianphil/pyRoute13/simtime"
	"github.com/ianphil/pyRoute13/timeline"
	"github.com/ianphil/pyRoute13/trace"
)

var configPath string

var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Run a generated fleet against a periodic planning loop (grounded on full-bb8.py)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				panic(err)
			}
			cfg = loaded
		}
		log := configureLogging()
		runFull(cfg, trace.NewLogrusSink(log))
		fmt.Println("Simulation ended.")
	},
}

func init() {
	fullCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file (optional; built-in defaults otherwise)")
	rootCmd.AddCommand(fullCmd)
}

func runFull(cfg config.Config, tr fleet.Trace) *fleet.Environment {
	tl := timeline.New()
	env := fleet.New(tr)
	estimators := estimate.GridSet(simtime.Minute, 30*simtime.Second, 10*simtime.Second)

	var nextCartID fleet.CartId
	cartIDGen := func() fleet.CartId {
		id := nextCartID
		nextCartID++
		return id
	}
	var nextJobID fleet.JobId
	jobIDGen := func() fleet.JobId {
		id := nextJobID
		nextJobID++
		return id
	}

	crews := []generators.Crew{
		{
			Shift:    generators.StandardShift(0, fleet.LocationId(0)),
			Size:     cfg.Fleet.CartCount,
			Home:     fleet.LocationId(0),
			Capacity: cfg.Fleet.Capacity,
		},
	}
	cartSpecs, breakJobs := generators.StaffingPlan(crews, cartIDGen, jobIDGen)

	for _, cs := range cartSpecs {
		env.AddCart(&fleet.Cart{ID: cs.ID, Capacity: cs.Capacity, LastKnownLocation: cs.Home})
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Arrivals.Seed), uint64(cfg.Arrivals.Seed)))
	arrivalJobs := generators.TransferArrivals(generators.ArrivalConfig{
		ArrivalCount:        int(float64(cfg.Arrivals.Horizon) * cfg.Arrivals.Rate),
		EarliestArrival:     0,
		LatestArrival:       simtime.SimTime(cfg.Arrivals.Horizon),
		TurnaroundTime:      20 * simtime.Minute,
		MinConnectionTime:   10 * simtime.Minute,
		MaxItemsPerTransfer: 8,
	}, rng, jobIDGen)

	jobAssigner := assign.NewJobAssigner(
		cfg.Planner.MaxJobsPerCart,
		planner.NewRoutePlanner(cfg.Planner.MaxJobsPerCart, estimators),
	)
	disp := dispatch.NewPlanningLoopDispatcher(
		tl, env, tr,
		simtime.SimTime(cfg.Planner.PlanningStartTime),
		simtime.SimTime(cfg.Planner.PlanningInterval),
		jobAssigner,
	)

	drv := driver.New(tl, disp, env, tr, planner.NewRoutePlanner(cfg.Planner.MaxJobsPerCart, estimators), estimators)
	for _, cs := range cartSpecs {
		cart, _ := env.Cart(cs.ID)
		if err := agent.Start(drv.Drive(cart)); err != nil {
			panic(err)
		}
	}

	if err := agent.Start(disp.PlanningLoop()); err != nil {
		panic(err)
	}

	for _, js := range append(breakJobs, arrivalJobs...) {
		if err := agent.Start(disp.IntroduceJob(js.Job, js.IntroduceAt)); err != nil {
			panic(err)
		}
	}

	if err := agent.Start(disp.ShutdownAt(simtime.SimTime(cfg.Arrivals.Horizon))); err != nil {
		panic(err)
	}

	if err := tl.Run(); err != nil {
		panic(err)
	}
	return env
}
