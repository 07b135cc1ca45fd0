package services

import "github.com/praxislabs/praxis/internal/models"

type ResourceAllocationReader interface {
	Allocations() []models.Allocation
}

type ResourceUserReader interface {
	Users() []models.User
}

// ResourceService derives per-user capacity loads from allocations.
type ResourceService struct {
	allocations ResourceAllocationReader
	users       ResourceUserReader
}

func NewResourceService(allocations ResourceAllocationReader, users ResourceUserReader) *ResourceService {
	return &ResourceService{allocations: allocations, users: users}
}

// UserLoad sums the user's allocation percentages unconditionally. The sum
// ignores whether allocation date ranges overlap the displayed period, so
// two 100% allocations in different months still report 200.
func UserLoad(allocations []models.Allocation, userID string) float64 {
	total := 0.0
	for _, allocation := range allocations {
		if allocation.UserID == userID {
			total += allocation.Percentage
		}
	}
	return total
}

// AllocationsForUser filters preserving insertion order.
func AllocationsForUser(allocations []models.Allocation, userID string) []models.Allocation {
	result := []models.Allocation{}
	for _, allocation := range allocations {
		if allocation.UserID == userID {
			result = append(result, allocation)
		}
	}
	return result
}

type UserLoadSummary struct {
	UserID      string              `json:"userId"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	TotalLoad   float64             `json:"totalLoad"`
	Overbooked  bool                `json:"overbooked"`
	Allocations []models.Allocation `json:"allocations"`
}

// LoadSummaries reports one row per user in user order, including users
// with no allocations at zero load.
func (service *ResourceService) LoadSummaries() []UserLoadSummary {
	allocations := service.allocations.Allocations()
	users := service.users.Users()

	result := make([]UserLoadSummary, 0, len(users))
	for _, user := range users {
		load := UserLoad(allocations, user.ID)
		result = append(result, UserLoadSummary{
			UserID:      user.ID,
			Name:        user.Name,
			Role:        user.Role,
			TotalLoad:   load,
			Overbooked:  load > 100,
			Allocations: AllocationsForUser(allocations, user.ID),
		})
	}
	return result
}
