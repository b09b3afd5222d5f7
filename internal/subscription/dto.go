// AngelaMos | 2026
// dto.go

package subscription

type PlanResponse struct {
	ID           int64   `json:"id"`
	Code         string  `json:"code"`
	Language     string  `json:"language"`
	Name         string  `json:"name"`
	Price        int64   `json:"price"`
	DurationDays int     `json:"duration_days"`
	Description  *string `json:"description,omitempty"`
}

type ResolveResponse struct {
	Input     string `json:"input"`
	Code      string `json:"code"`
	Canonical bool   `json:"canonical"`
}

type PlanCountResponse struct {
	Code   string `json:"code"`
	Active int64  `json:"active"`
}

func ToPlanResponse(p *Plan) PlanResponse {
	return PlanResponse{
		ID:           p.ID,
		Code:         p.Code,
		Language:     p.Language,
		Name:         p.Name,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		Description:  p.Description,
	}
}

func ToPlanResponseList(plans []Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, ToPlanResponse(&plans[i]))
	}
	return out
}

func ToPlanCountResponseList(counts []PlanCount) []PlanCountResponse {
	out := make([]PlanCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, PlanCountResponse(c))
	}
	return out
}
