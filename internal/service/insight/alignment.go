package insight

import "github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"

// AlignmentScore is the mean strategic fit over scored applications that are
// not marked "Bad Fit". No qualifying application gives 0.
func AlignmentScore(apps []domain.Application) float64 {
	var scores []float64
	for _, a := range apps {
		if a.StrategicFitScore == nil || a.Status == domain.ApplicationStatusBadFit {
			continue
		}
		scores = append(scores, *a.StrategicFitScore)
	}
	return mean(scores)
}

// mean returns 0 for an empty slice.
func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
