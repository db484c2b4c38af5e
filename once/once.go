package once

import (
	"github.com/hashicorp/go-secure-stdlib/biaction"
	"sync"
)

func FromAction[A, B any](f biaction.Action[A, B]) biaction.Action[A, B] {
	var once sync.Once
	return func(a A, b B) {
		once.Do(func() {
			f(a, b)
		})
	}
}

func FromErrorableAction[A, B any](f biaction.ErrorableAction[A, B]) biaction.ErrorableAction[A, B] {
	var once sync.Once
	var err error
	return func(a A, b B) error {
		once.Do(func() {
			err = f(a, b)
		})
		return err
	}
}
