package n8n

// webhookResponse тело ответа n8n при успешном приёме заявки.
// Все поля опциональны - workflow может ничего не вернуть.
type webhookResponse struct {
	Data struct {
		PermitNumber *string `json:"permit_number,omitempty"`
		Address      *string `json:"address,omitempty"`
		NotionTaskID *string `json:"notion_task_id,omitempty"`
	} `json:"data"`
}
