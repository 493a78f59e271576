package link

import "time"

type CreateLinkRequest struct {
	Title   string `json:"title" binding:"required"`
	AdminID string `json:"adminId" binding:"required,uuid"`
}

type CreateLinkResponse struct {
	Link string `json:"link"`
}

type LinkResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type AnnotatedLinkResponse struct {
	LinkResponse
	IsLatest bool `json:"isLatest"`
}
