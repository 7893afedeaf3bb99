package auditlog

import "context"

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	AmendWithFeedback(ctx context.Context, id int64, feedback string) error
	GetByID(ctx context.Context, id int64) (*Entry, error)
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}
