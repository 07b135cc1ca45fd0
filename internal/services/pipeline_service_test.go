package services

import (
	"testing"

	"github.com/praxislabs/praxis/internal/models"
)

type stubOpportunityReader struct {
	opportunities []models.Opportunity
}

func (stub *stubOpportunityReader) Opportunities() []models.Opportunity {
	result := make([]models.Opportunity, len(stub.opportunities))
	copy(result, stub.opportunities)
	return result
}

func funnelFixture() []models.Opportunity {
	return []models.Opportunity{
		{ID: "opp1", Stage: models.StageOffer, ExpectedVolume: 25000},
		{ID: "opp2", Stage: models.StageLead, ExpectedVolume: 5000},
		{ID: "opp3", Stage: models.StageWon, ExpectedVolume: 12000},
		{ID: "opp4", Stage: models.StageLead, ExpectedVolume: 3000},
	}
}

func TestVolumeByStage(t *testing.T) {
	volumes := VolumeByStage(funnelFixture())

	tests := []struct {
		stage string
		want  float64
	}{
		{stage: models.StageLead, want: 8000},
		{stage: models.StageOffer, want: 25000},
		{stage: models.StageWon, want: 12000},
		{stage: models.StageLost, want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.stage, func(t *testing.T) {
			if got := volumes[testCase.stage]; got != testCase.want {
				t.Fatalf("expected volume %v for %s, got %v", testCase.want, testCase.stage, got)
			}
		})
	}
}

func TestStageMoveConservesTotalVolume(t *testing.T) {
	opportunities := funnelFixture()
	totalBefore := TotalVolume(opportunities)

	// move opp2 (5000) from lead to offer
	for index := range opportunities {
		if opportunities[index].ID == "opp2" {
			opportunities[index].Stage = models.StageOffer
		}
	}

	volumes := VolumeByStage(opportunities)
	if volumes[models.StageLead] != 3000 {
		t.Fatalf("expected lead volume 3000 after move, got %v", volumes[models.StageLead])
	}
	if volumes[models.StageOffer] != 30000 {
		t.Fatalf("expected offer volume 30000 after move, got %v", volumes[models.StageOffer])
	}
	if total := TotalVolume(opportunities); total != totalBefore {
		t.Fatalf("expected total volume conserved at %v, got %v", totalBefore, total)
	}
}

func TestStageSummariesBoardOrderZeroFilled(t *testing.T) {
	service := NewPipelineService(&stubOpportunityReader{opportunities: funnelFixture()})

	summaries := service.StageSummaries()
	stages := models.PipelineStages()
	if len(summaries) != len(stages) {
		t.Fatalf("expected %d columns, got %d", len(stages), len(summaries))
	}
	for index, summary := range summaries {
		if summary.Stage != stages[index] {
			t.Fatalf("expected column %d to be %s, got %s", index, stages[index], summary.Stage)
		}
	}

	lost := summaries[len(summaries)-1]
	if lost.Count != 0 || lost.Volume != 0 {
		t.Fatalf("expected empty lost column, got %+v", lost)
	}
	lead := summaries[0]
	if lead.Count != 2 || lead.Volume != 8000 {
		t.Fatalf("expected lead column count 2 volume 8000, got %+v", lead)
	}
}

func TestTotalVolumeEmptyFunnel(t *testing.T) {
	if got := TotalVolume(nil); got != 0 {
		t.Fatalf("expected zero volume, got %v", got)
	}
}
