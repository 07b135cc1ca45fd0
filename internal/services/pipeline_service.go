package services

import "github.com/praxislabs/praxis/internal/models"

type PipelineOpportunityReader interface {
	Opportunities() []models.Opportunity
}

// PipelineService derives funnel totals from opportunities.
type PipelineService struct {
	opportunities PipelineOpportunityReader
}

func NewPipelineService(opportunities PipelineOpportunityReader) *PipelineService {
	return &PipelineService{opportunities: opportunities}
}

// VolumeByStage sums expected volume per stage. Stages with no
// opportunities are simply absent from the map.
func VolumeByStage(opportunities []models.Opportunity) map[string]float64 {
	volumes := map[string]float64{}
	for _, opportunity := range opportunities {
		volumes[opportunity.Stage] += opportunity.ExpectedVolume
	}
	return volumes
}

func CountByStage(opportunities []models.Opportunity) map[string]int {
	counts := map[string]int{}
	for _, opportunity := range opportunities {
		counts[opportunity.Stage]++
	}
	return counts
}

// TotalVolume is the expected volume across the whole funnel, won and lost
// included.
func TotalVolume(opportunities []models.Opportunity) float64 {
	total := 0.0
	for _, opportunity := range opportunities {
		total += opportunity.ExpectedVolume
	}
	return total
}

type StageSummary struct {
	Stage  string  `json:"stage"`
	Count  int     `json:"count"`
	Volume float64 `json:"volume"`
}

// StageSummaries reports every stage in board order, zero-filled where the
// stage is empty.
func (service *PipelineService) StageSummaries() []StageSummary {
	opportunities := service.opportunities.Opportunities()
	volumes := VolumeByStage(opportunities)
	counts := CountByStage(opportunities)

	stages := models.PipelineStages()
	result := make([]StageSummary, 0, len(stages))
	for _, stage := range stages {
		result = append(result, StageSummary{
			Stage:  stage,
			Count:  counts[stage],
			Volume: volumes[stage],
		})
	}
	return result
}
