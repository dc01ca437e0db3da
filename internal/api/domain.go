package api

import (
	"github.com/JaimeStill/advocates/internal/advocates"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Advocates advocates.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	store := advocates.NewStore(
		runtime.Database.Connection(),
		advocates.NewMetrics(runtime.Registry),
	)

	return &Domain{
		Advocates: advocates.New(store, runtime.Logger, runtime.Pagination),
	}
}
