package assert

import "github.com/oomph-ac/betterrecords/oerror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// Unimplemented aborts the caller. what names the missing behaviour.
func Unimplemented(what string) {
	panic(&oerror.NotImplemented{What: what})
}
