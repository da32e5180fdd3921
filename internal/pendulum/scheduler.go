package pendulum

// FrameStep is the fixed physics step in seconds. Velocities are px per
// step, so the step must match Tuning.FrameRate.
const FrameStep = float32(1.0 / 60)

// MaxStepsPerFrame bounds catch-up after a stall.
const MaxStepsPerFrame = 4

// stepSlack absorbs float32 rounding when frame deltas are exactly one step.
const stepSlack = float32(1e-6)

// Scheduler turns variable display frame deltas into fixed physics steps.
// Each charm owns its own Scheduler.
type Scheduler struct {
	Step     float32
	MaxSteps int
	acc      float32
}

func NewScheduler() *Scheduler {
	return &Scheduler{Step: FrameStep, MaxSteps: MaxStepsPerFrame}
}

// Tick runs as many whole physics steps as dt covers, then renders the
// chain once. It returns the number of steps run.
func (s *Scheduler) Tick(dt float32, c *Charm, force float32) int {
	if dt > 0 {
		s.acc += dt
	}

	steps := 0
	for s.acc+stepSlack >= s.Step && steps < s.MaxSteps {
		c.Step(force)
		s.acc -= s.Step
		steps++
	}
	if steps == s.MaxSteps && s.acc+stepSlack >= s.Step {
		// Drop the backlog rather than spiral.
		s.acc = 0
	}

	c.Render()
	return steps
}

// Reset discards any accumulated time.
func (s *Scheduler) Reset() { s.acc = 0 }
