package models

const (
	StageLead    = "lead"
	StageContact = "contact"
	StageOffer   = "offer"
	StageWon     = "won"
	StageLost    = "lost"
)

// PipelineStages lists the funnel columns in board order.
func PipelineStages() []string {
	return []string{StageLead, StageContact, StageOffer, StageWon, StageLost}
}

type Opportunity struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	ClientID       string  `json:"clientId"`
	OwnerID        string  `json:"ownerId"`
	Stage          string  `json:"stage"`
	Probability    int     `json:"probability"`
	ExpectedVolume float64 `json:"expectedVolume"`
	CloseDate      string  `json:"closeDate"`
}
