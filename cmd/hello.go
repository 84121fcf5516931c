package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ianphil/pyRoute13/agent"
	"github.com/ianphil/pyRoute13/dispatch"
	"github.com/ianphil/pyRoute13/driver"
	"github.com/ianphil/pyRoute13/estimate"
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/planner"
	"github.com/ianphil/pyRoute13/simtime"
	"github.com/ianphil/pyRoute13/timeline"
	"github.com/ianphil/pyRoute13/trace"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Run the fixed 3-cart, 4-job demo scenario (grounded on hello-bb8.py)",
	Run: func(cmd *cobra.Command, args []string) {
		log := configureLogging()
		runHello(trace.NewLogrusSink(log))
		fmt.Println("Simulation ended.")
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
}

func runHello(tr fleet.Trace) *fleet.Environment {
	tl := timeline.New()
	env := fleet.New(tr)
	estimators := estimate.GridSet(simtime.Minute, 30*simtime.Second, 10*simtime.Second)

	disp := dispatch.NewSimpleDispatcher(tl, env, tr)
	rp := planner.NewRoutePlanner(1, estimators)
	drv := driver.New(tl, disp, env, tr, rp, estimators)

	for i := 0; i < 3; i++ {
		cart := &fleet.Cart{ID: fleet.CartId(i), Capacity: 10, LastKnownLocation: 0}
		env.AddCart(cart)
		if err := agent.Start(drv.Drive(cart)); err != nil {
			panic(err)
		}
	}

	jobs := []fleet.Job{
		&fleet.TransferJob{Id: 1, Quantity: 5, PickupLocation: 2, PickupAfter: simtime.At(0, 3, 0), DropoffLocation: 10, DropoffBefore: simtime.At(0, 30, 0)},
		&fleet.TransferJob{Id: 2, Quantity: 6, PickupLocation: 2, PickupAfter: simtime.At(0, 3, 0), DropoffLocation: 4, DropoffBefore: simtime.At(0, 25, 0)},
		&fleet.OutOfServiceJob{Id: 3, SuspendLocation: 9, SuspendTime: simtime.At(0, 30, 0), ResumeTime: simtime.At(0, 40, 0)},
		&fleet.TransferJob{Id: 4, Quantity: 9, PickupLocation: 7, PickupAfter: simtime.At(0, 13, 0), DropoffLocation: 4, DropoffBefore: simtime.At(0, 27, 0)},
	}
	for _, j := range jobs {
		if err := agent.Start(disp.IntroduceJob(j, 0)); err != nil {
			panic(err)
		}
	}

	if err := agent.Start(disp.ShutdownAt(simtime.At(0, 59, 0))); err != nil {
		panic(err)
	}

	if err := tl.Run(); err != nil {
		panic(err)
	}
	return env
}
