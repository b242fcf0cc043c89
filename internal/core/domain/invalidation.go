package domain

import "time"

// InvalidateAllPath is the wildcard path that covers every object of a distribution.
const InvalidateAllPath = "/*"

// InvalidationRequest asks the CDN to purge cached copies of Paths.
// CallerReference lets the CDN collapse repeated deliveries of the same request.
type InvalidationRequest struct {
	DistributionID  DistributionID
	Paths           []string
	CallerReference string
}

// NewInvalidateAll builds the request that purges the whole distribution for a job.
func NewInvalidateAll(dist DistributionID, job JobID) InvalidationRequest {
	return InvalidationRequest{
		DistributionID:  dist,
		Paths:           []string{InvalidateAllPath},
		CallerReference: string(job),
	}
}

// InvalidationReceipt is the CDN's acknowledgement of an accepted invalidation.
type InvalidationReceipt struct {
	ID        string    `json:"id,omitzero"`
	Status    string    `json:"status,omitzero"`
	Location  string    `json:"location,omitzero"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
