package dto

type CreateSeasonRequest struct {
	SeasonName string `json:"season_name" validate:"required,min=1,max=50"`
}

type SeasonResponse struct {
	ID         string `json:"id"`
	SeasonName string `json:"season_name"`
	CreatedAt  string `json:"created_at"`
}
