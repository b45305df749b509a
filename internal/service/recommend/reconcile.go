package recommend

import (
	"github.com/Taichi-iskw/cheta/internal/errors"
	"github.com/Taichi-iskw/cheta/internal/model"
)

// FallbackReason explains a recommendation that replaced an ungrounded model pick
const FallbackReason = "Recommended video was not in the fetched videos list, so returning the most recent video."

// ErrNoCandidates is returned when no channel produced any video
var ErrNoCandidates = errors.New(errors.CodeNoCandidates, "no videos fetched from any channel")

// Reconcile grounds the model's answer in the candidate list. The returned
// URL is always one of the candidates' URLs: a matching answer passes
// through verbatim, anything else is replaced by the first candidate.
// grounded reports whether the answer matched.
func Reconcile(candidates []*model.Video, answer *model.Recommendation) (rec *model.Recommendation, grounded bool, err error) {
	if len(candidates) == 0 {
		return nil, false, ErrNoCandidates
	}

	if answer != nil && containsURL(candidates, answer.URL) {
		return &model.Recommendation{
			Title:  answer.Title,
			URL:    answer.URL,
			Reason: answer.Reason,
		}, true, nil
	}

	first := candidates[0]
	return &model.Recommendation{
		Title:  first.Title,
		URL:    first.URL,
		Reason: FallbackReason,
	}, false, nil
}

// containsURL is a linear scan; candidate lists are a few dozen entries at most
func containsURL(candidates []*model.Video, url string) bool {
	for _, v := range candidates {
		if v.URL == url {
			return true
		}
	}
	return false
}
