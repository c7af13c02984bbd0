package harness

import "GLTutorial/logging"

type release struct {
	name string
	fn   func()
}

// releaseStack runs cleanups in reverse order of registration, each once.
type releaseStack struct {
	items []release
}

func (r *releaseStack) push(name string, fn func()) {
	r.items = append(r.items, release{name: name, fn: fn})
}

func (r *releaseStack) drain() {

	for i := len(r.items) - 1; i >= 0; i-- {

		item := r.items[i]

		logging.Logger().Debug("releasing", "resource", item.name)
		item.fn()

	}

	r.items = nil

}
