package contact

import (
	"context"
	"launchpad/pkg/domain"
)

//go:generate mockgen -package mockcontact -source=interface.go -destination=mock/mockcontact.go *
type Service interface {
	Submit(ctx context.Context, inquiry domain.Inquiry) error
}
