package service

import "github.com/vedran77/quill/internal/domain"

// Notifier is told about committed writes so it can push them to live
// clients. Implementations must not block.
type Notifier interface {
	NotifyNewPost(post *domain.Post)
	NotifyRatingChanged(summary *domain.RatingSummary)
}

type noopNotifier struct{}

func (noopNotifier) NotifyNewPost(*domain.Post)                {}
func (noopNotifier) NotifyRatingChanged(*domain.RatingSummary) {}

func notifierOrNoop(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
