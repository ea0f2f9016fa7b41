package handler

type NewsResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Articles int    `json:"articles"`
}
