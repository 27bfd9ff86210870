package headless

// releaser collects cleanup steps as resources are acquired and runs them
// newest first, so a partially built context unwinds in reverse order.
type releaser struct {
	steps []func()
}

func (r *releaser) push(step func()) {
	r.steps = append(r.steps, step)
}

// release runs every step once. Later calls are no-ops.
func (r *releaser) release() {
	for i := len(r.steps) - 1; i >= 0; i-- {
		r.steps[i]()
	}
	r.steps = nil
}
