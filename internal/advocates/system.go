package advocates

import (
	"context"

	"github.com/JaimeStill/advocates/pkg/pagination"
)

// System defines the public contract for advocate domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
	) (*pagination.PageResult[Advocate], error)
}
