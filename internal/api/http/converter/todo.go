package converter

import "github.com/checkroom/backend/internal/domain"

type TodoResponse struct {
	TodoID     int64  `json:"todo_id"`
	Name       string `json:"name"`
	IsApproved bool   `json:"is_approved"`
}

func TodoToApi(t *domain.Todo) *TodoResponse {
	return &TodoResponse{
		TodoID:     t.ID,
		Name:       t.Name,
		IsApproved: t.IsApproved,
	}
}

func TodosToApi(todos []*domain.Todo) []*TodoResponse {
	result := make([]*TodoResponse, 0, len(todos))
	for _, t := range todos {
		result = append(result, TodoToApi(t))
	}
	return result
}
