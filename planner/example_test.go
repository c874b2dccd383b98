// Package planner_test provides runnable examples for the solver facade.
// Each example runs via “go test -run Example”, showing code and expected
// output.
package planner_test

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/eikonal/descent"
	"github.com/katalvlaran/eikonal/obstacle"
	"github.com/katalvlaran/eikonal/planner"
)

// ExamplePlanner_Plan plans across an empty 4×4 domain at unit spacing. The
// discrete walk descends the diagonal and closes on the exact destination.
func ExamplePlanner_Plan() {
	// 1) Configure a small free-space domain.
	p, err := planner.New(planner.Config{
		DomainWidth:   4,
		DomainHeight:  4,
		CellSpacing:   1,
		ObstacleSpeed: 0.001,
		SmoothRadius:  0,
		Mode:          descent.ModeDiscrete,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Place the endpoints on cell origins.
	p.SetStart(orb.Point{0, 0})
	p.SetEnd(orb.Point{3, 3})

	// 3) Plan: build the speed field, propagate from the end, walk from the
	//    start.
	res, err := p.Plan()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) The diagonal costs √2 per step; three steps close the path.
	fmt.Println("waypoints:", len(res.Path))
	fmt.Println("complete:", res.Complete)
	fmt.Printf("length: %.3f\n", res.Length())
	// Output:
	// waypoints: 4
	// complete: true
	// length: 4.243
}

// ExamplePlanner_Snapshot round-trips planner state through JSON.
func ExamplePlanner_Snapshot() {
	p, err := planner.New(planner.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 1) Populate some state worth keeping.
	if _, err = p.AddRectangle(obstacle.Rectangle{X: 3, Y: 2, Width: 2, Height: 1.5}); err != nil {
		fmt.Println("error:", err)
		return
	}
	p.SetStart(orb.Point{0.5, 0.5})

	// 2) Capture and serialize.
	data, err := json.Marshal(p.Snapshot())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Deserialize and restore an equivalent planner.
	var snap planner.Snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		fmt.Println("error:", err)
		return
	}
	q, err := planner.Restore(snap)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	start, _ := q.Start()
	fmt.Println("obstacles:", len(q.Obstacles()))
	fmt.Println("mode:", q.Config().Mode)
	fmt.Println("start:", start)
	// Output:
	// obstacles: 1
	// mode: discrete
	// start: [0.5 0.5]
}
